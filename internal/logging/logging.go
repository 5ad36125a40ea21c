// Package logging builds the zerolog loggers used by the command-line tools.
package logging

import (
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// Configure sets the process-wide zerolog field formats: Unix timestamps
// and integer durations. Call it once at program start.
func Configure() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.DurationFieldInteger = true
}

// New returns a logger writing human-readable lines to w at the given level.
// Every event carries a timestamp and the component name.
func New(w io.Writer, level zerolog.Level, component string) zerolog.Logger {
	out := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: "15:04:05",
		NoColor:    true,
	}
	return zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		Str("component", component).
		Logger()
}

// NewJSON is like New but emits one JSON object per event.
func NewJSON(w io.Writer, level zerolog.Level, component string) zerolog.Logger {
	return zerolog.New(w).
		Level(level).
		With().
		Timestamp().
		Str("component", component).
		Logger()
}

// ParseLevel maps a level name such as "debug" or "warn" to a zerolog level.
// The empty string means info.
func ParseLevel(name string) (zerolog.Level, error) {
	name = strings.TrimSpace(strings.ToLower(name))
	if name == "" {
		return zerolog.InfoLevel, nil
	}
	level, err := zerolog.ParseLevel(name)
	if err != nil {
		return zerolog.NoLevel, errors.Wrapf(err, "invalid log level %q", name)
	}
	return level, nil
}
