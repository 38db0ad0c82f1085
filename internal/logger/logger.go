package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Flyrell/burnbite/internal/config"
	"github.com/rs/zerolog"
)

// New creates a timestamped logger writing to w at the given level.
func New(w io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(w).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// ParseLevel maps a config level name to a zerolog level.
func ParseLevel(s string) (zerolog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zerolog.DebugLevel, nil
	case "info":
		return zerolog.InfoLevel, nil
	case "", "warn", "warning":
		return zerolog.WarnLevel, nil
	case "error":
		return zerolog.ErrorLevel, nil
	}
	return zerolog.NoLevel, fmt.Errorf("unknown log level %q", s)
}

// Open builds the application logger from the config. Logs go to cfg.LogFile
// when set, otherwise to stderr. verbose forces debug level.
// The returned close func releases the log file, if any.
func Open(cfg *config.Config, stderr io.Writer, verbose bool) (zerolog.Logger, func() error, error) {
	level, err := ParseLevel(cfg.LogLevel)
	if err != nil {
		return zerolog.Nop(), nil, err
	}
	if verbose {
		level = zerolog.DebugLevel
	}

	if cfg.LogFile == "" {
		w := zerolog.ConsoleWriter{Out: stderr, TimeFormat: "15:04:05"}
		return New(w, level), func() error { return nil }, nil
	}

	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("opening log file: %w", err)
	}
	return New(f, level), f.Close, nil
}
