package observability

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

func init() {
	zerolog.TimeFieldFormat = time.RFC3339Nano
}

// NewLogger creates a structured JSON logger writing to stdout, tagged
// with the originating component. The level defaults to info and can be
// overridden with the LIQ_LOG_LEVEL env var (debug, info, warn, error).
func NewLogger(component string) zerolog.Logger {
	return NewLoggerWithLevel(component, parseLogLevel(os.Getenv("LIQ_LOG_LEVEL")))
}

// NewLoggerWithLevel creates a component logger with an explicit level,
// bypassing the environment. Used by tests and the migration tool.
func NewLoggerWithLevel(component string, level zerolog.Level) zerolog.Logger {
	return zerolog.New(os.Stdout).
		Level(level).
		With().
		Timestamp().
		Str("component", component).
		Logger()
}

func parseLogLevel(s string) zerolog.Level {
	if lvl, err := zerolog.ParseLevel(strings.ToLower(s)); err == nil && s != "" {
		return lvl
	}
	return zerolog.InfoLevel
}
