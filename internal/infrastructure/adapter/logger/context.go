package logger

import (
	"context"

	"github.com/amirhossein-jamali/money-flow-tracker/internal/domain/port/core"
)

type contextKey string

const (
	requestIDKey contextKey = "request_id"
	loggerKey    contextKey = "logger"
)

// ContextWithRequestID returns a copy of ctx carrying the request ID
func ContextWithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// RequestIDFromContext returns the request ID stored in ctx, or "" when there is none
func RequestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// ContextWithLogger returns a copy of ctx carrying a request-scoped logger
func ContextWithLogger(ctx context.Context, l core.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// FromContext returns the request-scoped logger in ctx, or fallback when there is none
func FromContext(ctx context.Context, fallback core.Logger) core.Logger {
	if ctx == nil {
		return fallback
	}
	if l, ok := ctx.Value(loggerKey).(core.Logger); ok && l != nil {
		return l
	}
	return fallback
}
