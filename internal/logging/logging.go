// Package logging builds the zap loggers used by daylily commands.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/user/daylily/internal/config"
)

// Options controls how a logger is built.
type Options struct {
	Config  config.LoggingConfig
	Verbose bool // force debug level
	// Interactive is set for the terminal gallery, which owns the screen:
	// logs go to the configured file or nowhere.
	Interactive bool
}

// New builds a production zap logger from opts.
func New(opts Options) (*zap.Logger, error) {
	if opts.Interactive && opts.Config.File == "" {
		return zap.NewNop(), nil
	}

	cfg := zap.NewProductionConfig()

	level := zapcore.InfoLevel
	if opts.Config.Level != "" {
		parsed, err := zapcore.ParseLevel(opts.Config.Level)
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", opts.Config.Level, err)
		}
		level = parsed
	}
	if opts.Verbose {
		level = zapcore.DebugLevel
	}
	cfg.Level = zap.NewAtomicLevelAt(level)

	if opts.Config.File != "" {
		if err := os.MkdirAll(filepath.Dir(opts.Config.File), 0755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		cfg.OutputPaths = []string{opts.Config.File}
		cfg.ErrorOutputPaths = []string{opts.Config.File}
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

// OrNop returns logger, or a no-op logger when it is nil.
func OrNop(logger *zap.Logger) *zap.Logger {
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}
