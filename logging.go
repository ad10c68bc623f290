/*
logging.go wires up the package logger using op/go-logging rather than a
bespoke wrapper around the standard library's log package.
*/
package corvid

import (
	"os"

	logging "github.com/op/go-logging"
)

var log = logging.MustGetLogger("corvid")

func init() {
	backend := logging.NewLogBackend(os.Stderr, "", 0)
	formatter := logging.MustStringFormatter(
		`%{time:15:04:05.000} %{level:.4s} %{shortfunc}: %{message}`,
	)
	leveled := logging.AddModuleLevel(logging.NewBackendFormatter(backend, formatter))
	leveled.SetLevel(logging.WARNING, "")
	logging.SetBackend(leveled)
}

// SetLogLevel adjusts the default verbosity of every go-logging logger,
// corvid's included. Used by uci.New to apply the log level from
// internal/config.
func SetLogLevel(level logging.Level) {
	logging.SetLevel(level, "")
}
