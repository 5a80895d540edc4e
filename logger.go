package lkv

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with lkv-specific helpers.
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

// NewJSONLogger creates a Logger that outputs JSON-formatted logs to stderr.
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that outputs human-readable text logs to stderr.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	}))
}

// With returns a Logger that adds the given attributes to every record.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{
		Logger: l.Logger.With(args...),
	}
}

// LogMerge logs a merge of entries keys into a collection, of which added
// were new keys.
func (l *Logger) LogMerge(ctx context.Context, entries, added int) {
	l.DebugContext(ctx, "merge completed",
		"entries", entries,
		"keys_added", added,
		"keys_extended", entries-added,
	)
}

// LogDrain logs a drain of entries keys out of a collection.
func (l *Logger) LogDrain(ctx context.Context, entries int) {
	l.DebugContext(ctx, "drain started",
		"entries", entries,
	)
}
