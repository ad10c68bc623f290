// Command corvidctl is the UCI engine binary: it wires stdin/stdout to a
// uci.Engine and loads internal/config's optional TOML config file.
package main

import (
	"flag"
	"os"

	"github.com/augurchess/corvid/internal/config"
	"github.com/augurchess/corvid/uci"
)

func main() {
	configPath := flag.String("config", "corvid.toml", "path to an optional TOML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		panic(err)
	}

	engine := uci.New(os.Stdout, cfg)
	engine.Run(os.Stdin)
}
