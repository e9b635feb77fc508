package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Log is the process-wide structured logger. It discards output until Init
// is called so packages can log safely from tests.
var Log = zerolog.New(io.Discard)

// Init sets up JSON output on stdout at the given level ("debug", "info",
// "warn", "error"). Unknown levels fall back to info.
func Init(level, service string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	zerolog.TimeFieldFormat = time.RFC3339Nano
	zerolog.DurationFieldUnit = time.Millisecond
	zerolog.DurationFieldInteger = true

	Log = zerolog.New(os.Stdout).With().
		Timestamp().
		Str("service", service).
		Logger()
}
