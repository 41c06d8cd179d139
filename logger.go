package docstore

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with docstore-specific context.
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
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithRoot adds the store root directory to the logger.
func (l *Logger) WithRoot(root string) *Logger {
	return &Logger{
		Logger: l.Logger.With("root", root),
	}
}

// WithKey adds a storage key field to the logger.
func (l *Logger) WithKey(key string) *Logger {
	return &Logger{
		Logger: l.Logger.With("key", key),
	}
}

// LogSet logs a write operation.
func (l *Logger) LogSet(ctx context.Context, key string, size int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "set failed",
			"key", key,
			"size", size,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "set completed",
			"key", key,
			"size", size,
		)
	}
}

// LogGetText logs a text extraction operation.
func (l *Logger) LogGetText(ctx context.Context, key string, remote bool, textLen int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "getText failed",
			"key", key,
			"remote", remote,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "getText completed",
			"key", key,
			"remote", remote,
			"text_len", textLen,
		)
	}
}

// LogFind logs the completion of an enumeration.
func (l *Logger) LogFind(ctx context.Context, loaded, filtered, total int) {
	l.DebugContext(ctx, "find completed",
		"loaded", loaded,
		"filtered", filtered,
		"total", total,
	)
}

// LogClear logs a clear operation.
func (l *Logger) LogClear(ctx context.Context, root string, err error) {
	if err != nil {
		l.ErrorContext(ctx, "clear failed",
			"root", root,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "storage cleared",
			"root", root,
		)
	}
}
