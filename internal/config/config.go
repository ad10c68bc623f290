/*
Package config loads engine tuning knobs from an optional TOML file via
BurntSushi/toml. Absence of the file is not an error -- Default is returned
unchanged.
*/
package config

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/BurntSushi/toml"
)

// Config holds every tunable the uci adapter and cmd binaries read at
// startup.
type Config struct {
	// Threads bounds how many root-move goroutines RootSearch's errgroup may
	// run concurrently, via errgroup.Group.SetLimit. Zero or negative leaves
	// the group unbounded (one goroutine per root move).
	Threads int `toml:"threads"`

	// MoveOverheadMillis is subtracted from any time-control budget before
	// it is handed to the sleeper goroutine, to leave headroom for the
	// adapter's own command round-trip.
	MoveOverheadMillis int `toml:"move_overhead_millis"`

	// LogLevel names an op/go-logging level: "debug", "info", "warning",
	// "error", or "critical".
	LogLevel string `toml:"log_level"`

	// DefaultDepth caps the iterative-deepening loop of a go that carries a
	// time control (movetime, or wtime/btime).
	DefaultDepth int `toml:"default_depth"`

	// MaxInfiniteDepth caps the iterative-deepening loop started by
	// go infinite, or by a go with no time control at all (treated the same
	// way), which otherwise has no natural stopping point short of an
	// explicit stop command.
	MaxInfiniteDepth int `toml:"max_infinite_depth"`
}

// Default returns the configuration used when no config file is present.
func Default() Config {
	return Config{
		Threads:            runtime.NumCPU(),
		MoveOverheadMillis: 30,
		LogLevel:           "warning",
		DefaultDepth:       6,
		MaxInfiniteDepth:   32,
	}
}

// Load reads path as TOML over Default's values. A missing file is not an
// error: Default is returned as-is.
func Load(path string) (Config, error) {
	cfg := Default()
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: decoding %s: %w", path, err)
	}
	return cfg, nil
}
