package infrastructure

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

// contextKey is a type for context keys.
type contextKey string

// TraceIDContextKey is the key under which the per-run trace ID is stored.
const TraceIDContextKey contextKey = "trace_id"

// GenerateTraceID creates a new unique trace ID using UUID v4.
func GenerateTraceID() string {
	return uuid.New().String()
}

// ContextWithTraceID creates a new context carrying a freshly generated trace
// ID. Each pipeline run gets one so its log lines can be correlated.
func ContextWithTraceID(ctx context.Context) context.Context {
	return WithTraceID(ctx, GenerateTraceID())
}

// WithTraceID adds a trace ID to the context.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, TraceIDContextKey, traceID)
}

// GetTraceID retrieves the trace ID from context, or "" if absent.
func GetTraceID(ctx context.Context) string {
	if traceID, ok := ctx.Value(TraceIDContextKey).(string); ok {
		return traceID
	}
	return ""
}

// LoggerFromContext returns the global logger, bound to the context's trace
// ID when present.
func LoggerFromContext(ctx context.Context) *slog.Logger {
	logger := GetLogger()
	if traceID := GetTraceID(ctx); traceID != "" {
		return logger.With("trace_id", traceID)
	}
	return logger
}
