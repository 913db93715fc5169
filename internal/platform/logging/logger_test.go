package logging

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func observed(level Level) (*Logger, *observer.ObservedLogs) {
	core, logs := observer.New(level)
	return FromZap(zap.New(core)), logs
}

func TestLogger_FieldsAndLevels(t *testing.T) {
	logger, logs := observed(LevelInfo)

	logger.Debug("hidden")
	logger.Info("standings computed", "championship_id", int64(3), "rows", 6)
	logger.Error("save failed", "error", errors.New("boom"), "dangling")

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "standings computed", entries[0].Message)
	assert.Equal(t, int64(3), entries[0].ContextMap()["championship_id"])
	assert.Equal(t, "boom", entries[1].ContextMap()["error"])
	assert.Contains(t, entries[1].ContextMap(), "dangling")
}

func TestLogger_ContextAddsTraceIDs(t *testing.T) {
	logger, logs := observed(LevelDebug)

	traceID, _ := trace.TraceIDFromHex("0102030405060708090a0b0c0d0e0f10")
	spanID, _ := trace.SpanIDFromHex("0102030405060708")
	ctx := trace.ContextWithSpanContext(context.Background(), trace.NewSpanContext(trace.SpanContextConfig{
		TraceID: traceID,
		SpanID:  spanID,
	}))

	logger.InfoContext(ctx, "with trace")
	logger.InfoContext(context.Background(), "without trace")

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, traceID.String(), entries[0].ContextMap()["trace_id"])
	assert.Equal(t, spanID.String(), entries[0].ContextMap()["span_id"])
	assert.NotContains(t, entries[1].ContextMap(), "trace_id")
}

func TestLogger_MirrorReceivesEnabledEntries(t *testing.T) {
	logger, _ := observed(LevelInfo)

	var (
		mu   sync.Mutex
		msgs []string
		args [][]any
	)
	SetMirror(func(_ context.Context, _ Level, msg string, a ...any) {
		mu.Lock()
		defer mu.Unlock()
		msgs = append(msgs, msg)
		args = append(args, a)
	})
	t.Cleanup(func() { SetMirror(nil) })

	scoped := logger.With("component", "cache")
	scoped.Debug("skipped")
	scoped.Warn("evicted", "key", "team:1")

	mu.Lock()
	defer mu.Unlock()
	require.Equal(t, []string{"evicted"}, msgs)
	assert.Equal(t, []any{"component", "cache", "key", "team:1"}, args[0])
}

func TestLogger_NilSafe(t *testing.T) {
	var logger *Logger
	assert.NotPanics(t, func() {
		logger.Info("nil receiver falls back to default")
		_ = logger.Sync()
	})
	assert.NotNil(t, logger.With("k", "v"))
}

func TestSetDefault(t *testing.T) {
	previous := Default()
	t.Cleanup(func() { SetDefault(previous) })

	logger := NewNop()
	SetDefault(logger)
	assert.Same(t, logger, Default())

	SetDefault(nil)
	assert.NotNil(t, Default())
}
