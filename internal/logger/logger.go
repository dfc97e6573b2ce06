// Package logger holds the process-wide zerolog logger. It stays at warn
// level unless verbose output is requested, so swallowed VCS failures (failed
// probes, missing tags) only show up when asked for.
package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

var log zerolog.Logger

func init() {
	consoleWriter := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}

	log = zerolog.New(consoleWriter).
		Level(zerolog.WarnLevel).
		With().
		Timestamp().
		Logger()
}

// Get returns the shared logger.
func Get() *zerolog.Logger {
	return &log
}

// SetVerbose lowers the level to debug.
func SetVerbose() {
	log = log.Level(zerolog.DebugLevel)
}
