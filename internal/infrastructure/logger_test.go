package infrastructure

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"WARN", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"unknown", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, parseLogLevel(tt.in), "level %q", tt.in)
	}
}

func TestTraceIDRoundTrip(t *testing.T) {
	ctx := WithTraceID(context.Background(), "abc-123")
	assert.Equal(t, "abc-123", GetTraceID(ctx))
	assert.Equal(t, "", GetTraceID(context.Background()))
}

func TestContextWithTraceID(t *testing.T) {
	ctx := ContextWithTraceID(context.Background())
	first := GetTraceID(ctx)
	assert.NotEmpty(t, first)

	second := GetTraceID(ContextWithTraceID(context.Background()))
	assert.NotEqual(t, first, second, "each run gets a fresh trace ID")
}
