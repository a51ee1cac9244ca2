package logging

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newObserved(t *testing.T) (Logger, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	return NewZapLogger(zap.New(core)), logs
}

func TestZapLogger_Levels(t *testing.T) {
	log, logs := newObserved(t)
	ctx := context.Background()

	log.Debug(ctx, "d")
	log.Info(ctx, "i")
	log.Warn(ctx, "w")
	log.Error(ctx, "e")

	entries := logs.All()
	require.Len(t, entries, 4)
	assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
	assert.Equal(t, zapcore.InfoLevel, entries[1].Level)
	assert.Equal(t, zapcore.WarnLevel, entries[2].Level)
	assert.Equal(t, zapcore.ErrorLevel, entries[3].Level)
}

func TestZapLogger_KeyValuePairs(t *testing.T) {
	log, logs := newObserved(t)

	log.Info(context.Background(), "fetching memos", "endpoint", "https://memo.example.com")

	entries := logs.All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "https://memo.example.com", fields["endpoint"])
}

func TestZapLogger_With(t *testing.T) {
	log, logs := newObserved(t)

	child := log.With("component", "gateway")
	child.Info(context.Background(), "ready")

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "gateway", entries[0].ContextMap()["component"])
}
