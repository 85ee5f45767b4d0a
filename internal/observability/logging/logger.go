// Package logging provides structured logging utilities using the standard library's log/slog package.
// It offers helper functions for creating loggers with consistent configuration and context propagation.
package logging

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"
)

// Output formats accepted by New.
const (
	FormatJSON = "json"
	FormatText = "text"
)

// New creates a logger writing to w at the given level.
// Any format other than "text" produces JSON.
func New(w io.Writer, level slog.Level, format string) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: level,
		// Add source code location for error and warn levels
		AddSource: level <= slog.LevelWarn,
	}
	if strings.EqualFold(format, FormatText) {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// ParseLevel maps debug, info, warn and error to slog levels.
// Unknown values fall back to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewOperationID returns a context carrying a fresh operation ID.
// Every log line written through WithOperationID for that context shares it,
// which ties together the entries of one CLI run or one seed load.
func NewOperationID(ctx context.Context) context.Context {
	return context.WithValue(ctx, operationIDContextKey, uuid.New().String())
}

// OperationIDFromContext returns the operation ID stored in ctx, or "".
func OperationIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(operationIDContextKey).(string); ok {
		return id
	}
	return ""
}

// WithOperationID returns a new logger that includes the operation ID from the context.
func WithOperationID(ctx context.Context, logger *slog.Logger) *slog.Logger {
	id := OperationIDFromContext(ctx)
	if id == "" {
		return logger
	}
	return logger.With("operation_id", id)
}

// FromContext retrieves the logger from the context, or returns the default logger if not found.
// This enables passing loggers through the application via context.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerContextKey).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// WithLogger adds a logger to the context.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerContextKey, logger)
}

type contextKey string

const (
	loggerContextKey      contextKey = "logger"
	operationIDContextKey contextKey = "operation_id"
)
