package main

import (
	"fmt"
	"io"
	"log/slog"
	"time"
)

// Logger wraps slog.Logger with f16acc-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewTextLogger creates a Logger that outputs human-readable text logs to w.
func NewTextLogger(w io.Writer, level slog.Level) *Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs to w.
func NewJSONLogger(w io.Writer, level slog.Level) *Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// NewLogger builds a Logger for the --log-format and --verbose flags.
func NewLogger(w io.Writer, format string, verbose bool) (*Logger, error) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	switch format {
	case "text":
		return NewTextLogger(w, level), nil
	case "json":
		return NewJSONLogger(w, level), nil
	default:
		return nil, fmt.Errorf("unknown log format %q (want text or json)", format)
	}
}

// WithKernel adds a kernel field to the logger.
func (l *Logger) WithKernel(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("kernel", name),
	}
}

// LogSweep logs a completed sweep.
func (l *Logger) LogSweep(samples int, elapsed time.Duration, err error) {
	if err != nil {
		l.Error("sweep failed",
			"samples", samples,
			"error", err,
		)
		return
	}
	l.Debug("sweep completed",
		"samples", samples,
		"elapsed", elapsed,
	)
}
