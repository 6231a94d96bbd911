// Package logging builds the service's structured slog logger and carries
// request-scoped loggers through context.
//
//	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)
//	ctx = logging.WithLogger(ctx, logger.With(slog.String("request_id", id)))
//
// Application services log failures with the operation name, the entry id
// when there is one, and the full error chain:
//
//	logger.ErrorContext(ctx, "failed to update todo entry",
//	    slog.String("operation", "UpdateTodo"),
//	    slog.Int64("todo_id", id),
//	    slog.Any("error", err),
//	)
package logging

import (
	"context"
	"io"
	"log/slog"
	"strings"
)

type contextKey struct{}

// New creates a configured *slog.Logger writing to w.
//
// level is one of "debug", "info", "warn" or "error" (case-insensitive);
// anything else means info. format "text" selects slog.NewTextHandler, any
// other value selects JSON. Debug loggers include the source location.
// Every handler redacts credentials before they reach w.
func New(level, format string, w io.Writer) *slog.Logger {
	lvl := ParseLevel(level)

	opts := &slog.HandlerOptions{
		Level:       lvl,
		AddSource:   lvl == slog.LevelDebug,
		ReplaceAttr: newRedactAttr(),
	}

	var handler slog.Handler
	if format == "text" {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}

	return slog.New(handler)
}

// WithLogger returns a copy of ctx carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// FromContext returns the logger stored by WithLogger, or slog.Default().
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(contextKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// FromContextOr returns the logger stored by WithLogger, or fallback.
func FromContextOr(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(contextKey{}).(*slog.Logger); ok {
		return logger
	}
	return fallback
}

// ParseLevel converts a level name to slog.Level, defaulting to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
