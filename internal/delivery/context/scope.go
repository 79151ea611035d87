// Package context carries request-scoped values (request id, caller, logger)
// from the delivery layer down to use cases and repositories.
package context

import (
	"context"
	"log/slog"
)

type scopeKey int

const (
	keyRequestID scopeKey = iota
	keyUsername
	keyLogger
)

// HeaderXRequestID is the header used to propagate the request id.
const HeaderXRequestID = "X-Request-Id"

// WithRequestID stores the request id on ctx.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, keyRequestID, requestID)
}

// RequestID returns the request id stored on ctx, or "".
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(keyRequestID).(string)

	return id
}

// WithLogger stores a request-scoped logger on ctx.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, keyLogger, logger)
}

// LoggerOr returns the request-scoped logger, falling back to fallback when
// the request did not go through the delivery middleware (CLI, startup hooks).
func LoggerOr(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(keyLogger).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return fallback
}

// WithPrincipal records the authenticated caller. A logger already on ctx is
// re-bound so that every later log line names the caller.
func WithPrincipal(ctx context.Context, username string) context.Context {
	ctx = context.WithValue(ctx, keyUsername, username)
	if logger, ok := ctx.Value(keyLogger).(*slog.Logger); ok && logger != nil {
		ctx = WithLogger(ctx, logger.With(slog.String("username", username)))
	}

	return ctx
}

// Principal returns the authenticated caller stored on ctx.
func Principal(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(keyUsername).(string)

	return username, ok && username != ""
}
