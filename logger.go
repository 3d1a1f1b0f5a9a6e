package nanocurve

import (
	"context"
	"log/slog"
	"os"

	"github.com/hupe1980/nanocurve/curve"
	"github.com/hupe1980/nanocurve/store"
)

// Logger wraps slog.Logger with design-specific helpers.
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

// LogInstantiate logs a curve instantiation.
func (l *Logger) LogInstantiate(ctx context.Context, id store.ID, kind curve.Kind, err error) {
	if err != nil {
		l.ErrorContext(ctx, "curve instantiation failed",
			"id", id,
			"kind", kind,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "curve instantiated",
			"id", id,
			"kind", kind,
		)
	}
}

// LogSave logs a design save operation.
func (l *Logger) LogSave(ctx context.Context, filename string, bytes int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "design save failed",
			"filename", filename,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "design saved",
			"filename", filename,
			"bytes", bytes,
		)
	}
}

// LogLoad logs a design load operation.
func (l *Logger) LogLoad(ctx context.Context, filename string, helices, planes int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "design load failed",
			"filename", filename,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "design loaded",
			"filename", filename,
			"helices", helices,
			"planes", planes,
		)
	}
}
