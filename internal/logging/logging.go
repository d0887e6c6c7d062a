// Package logging wraps zerolog behind a small constructor. The dashboard
// owns the terminal, so logs go to a file instead of stderr; an empty path
// yields a no-op logger.
package logging

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
)

// Config holds logger configuration.
type Config struct {
	// Path is the log file. Empty disables logging.
	Path string

	// Level is the minimum level (debug, info, warn, error).
	Level string
}

// New builds a logger per the config. The returned closer releases the log
// file and is safe to call when logging is disabled.
func New(cfg Config) (zerolog.Logger, func() error, error) {
	noop := func() error { return nil }
	if cfg.Path == "" {
		return zerolog.Nop(), noop, nil
	}

	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		return zerolog.Nop(), noop, fmt.Errorf("parse log level %q: %w", cfg.Level, err)
	}

	file, err := os.OpenFile(cfg.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop(), noop, fmt.Errorf("open log file: %w", err)
	}

	logger := zerolog.New(file).Level(level).With().Timestamp().Str("service", "boardroom").Logger()
	return logger, file.Close, nil
}
