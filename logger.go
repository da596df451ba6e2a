package bloomgo

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with bloomgo-specific helpers.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// LogCreate logs filter construction with the planned parameters.
func (l *Logger) LogCreate(p Params) {
	l.Info("filter created",
		"bits", p.BitLength,
		"hashRounds", p.HashRounds,
		"expectedItems", p.ExpectedItems,
		"targetFPRate", p.FPRate,
	)
}

// LogInsert logs an insert operation.
func (l *Logger) LogInsert(size int, wasAbsent bool) {
	l.Debug("insert completed",
		"bytes", size,
		"wasAbsent", wasAbsent,
	)
}

// LogQuery logs a membership query.
func (l *Logger) LogQuery(size int, found bool) {
	l.Debug("query completed",
		"bytes", size,
		"found", found,
	)
}
