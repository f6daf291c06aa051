// Package logging provides structured logging for OrarioDoc.
// It uses the standard library slog with text output by default and JSON
// output in debug mode.
package logging

import (
	"io"
	"log/slog"
	"os"
	"sync"
)

var (
	defaultLogger *slog.Logger
	loggerMu      sync.RWMutex
)

func init() {
	defaultLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
}

// Config holds logger configuration.
type Config struct {
	Level  slog.Level // Minimum log level
	JSON   bool       // Use JSON output format
	Output io.Writer  // Output destination (default: stderr)
}

// DefaultConfig returns the default logger configuration.
func DefaultConfig() Config {
	return Config{
		Level:  slog.LevelInfo,
		JSON:   false,
		Output: os.Stderr,
	}
}

// DebugConfig returns a configuration suitable for debug mode.
func DebugConfig() Config {
	return Config{
		Level:  slog.LevelDebug,
		JSON:   true,
		Output: os.Stderr,
	}
}

// Init initializes the global logger with the given configuration.
func Init(cfg Config) {
	loggerMu.Lock()
	defer loggerMu.Unlock()

	output := cfg.Output
	if output == nil {
		output = os.Stderr
	}

	opts := &slog.HandlerOptions{Level: cfg.Level}

	var handler slog.Handler
	if cfg.JSON {
		handler = slog.NewJSONHandler(output, opts)
	} else {
		handler = slog.NewTextHandler(output, opts)
	}

	defaultLogger = slog.New(handler)
}

// Logger returns the current logger instance.
func Logger() *slog.Logger {
	loggerMu.RLock()
	defer loggerMu.RUnlock()
	return defaultLogger
}

// With returns a logger with additional attributes.
func With(args ...any) *slog.Logger {
	return Logger().With(args...)
}

// Info logs at INFO level.
func Info(msg string, args ...any) {
	Logger().Info(msg, args...)
}

// Debug logs at DEBUG level.
func Debug(msg string, args ...any) {
	Logger().Debug(msg, args...)
}

// Warn logs at WARN level.
func Warn(msg string, args ...any) {
	Logger().Warn(msg, args...)
}

// Error logs at ERROR level.
func Error(msg string, args ...any) {
	Logger().Error(msg, args...)
}
