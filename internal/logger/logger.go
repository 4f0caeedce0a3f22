// Package logger wraps zap and exposes a small initialization surface
// shared by the console binary and the shell middleware.
package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger carries the underlying zap logger.
type Logger struct {
	// Log is the structured logger instance.
	Log *zap.Logger
}

// New returns a Logger with a no-op zap instance. Call Init to
// replace it with a real one.
func New() *Logger {
	return &Logger{Log: zap.NewNop()}
}

// Init builds a production zap logger at the given level
// ("Debug", "Info", "Warn", "Error", case-insensitive).
func (l *Logger) Init(level string) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("parse log level: %w", err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	logger, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}

	l.Log = logger
	return nil
}
