package logger

import (
	"context"
	"log/slog"
)

// contextKey is an unexported type so logger context values cannot collide
// with keys from other packages.
type contextKey struct{}

// WithLogger returns a new context carrying the given logger. Middleware uses
// this to attach a request-scoped logger (e.g. with a trace ID) so downstream
// code logs with request correlation fields.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// FromContext retrieves the logger stored in the context, or nil when none
// has been attached.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(contextKey{}).(*slog.Logger); ok {
		return logger
	}
	return nil
}

// FromContextOrDefault returns the context's logger when present, otherwise
// the provided fallback. When both are absent it falls back to slog.Default,
// so callers always get a usable logger.
func FromContextOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := FromContext(ctx); logger != nil {
		return logger
	}
	if fallback != nil {
		return fallback
	}
	return slog.Default()
}
