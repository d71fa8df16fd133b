package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/amirhossein-jamali/money-flow-tracker/internal/domain/port/core"
)

func TestZapLogger_Levels(t *testing.T) {
	obsCore, logs := observer.New(zapcore.DebugLevel)
	log := NewZapLoggerWithCore(obsCore)

	t.Run("Defaults to info", func(t *testing.T) {
		assert.Equal(t, core.LogLevelInfo, log.GetLevel())

		log.Debug("hidden", nil)
		log.Info("shown", map[string]any{"id": 1})

		require.Equal(t, 1, logs.Len())
		entry := logs.TakeAll()[0]
		assert.Equal(t, "shown", entry.Message)
		assert.Equal(t, int64(1), entry.ContextMap()["id"])
	})

	t.Run("SetLevel changes filtering", func(t *testing.T) {
		log.SetLevel(core.LogLevelDebug)
		log.Debug("now visible", nil)
		assert.Equal(t, 1, logs.FilterMessage("now visible").Len())

		log.SetLevel(core.LogLevelError)
		log.Warn("dropped", nil)
		log.Error("kept", nil)
		assert.Equal(t, 0, logs.FilterMessage("dropped").Len())
		assert.Equal(t, 1, logs.FilterMessage("kept").Len())
		assert.Equal(t, core.LogLevelError, log.GetLevel())
	})
}

func TestZapLogger_With(t *testing.T) {
	obsCore, logs := observer.New(zapcore.DebugLevel)
	parent := NewZapLoggerWithCore(obsCore)

	child := parent.With(map[string]any{"request_id": "abc"})
	child.Info("handled", map[string]any{"status": 200})

	entry := logs.TakeAll()[0]
	assert.Equal(t, "abc", entry.ContextMap()["request_id"])
	assert.Equal(t, int64(200), entry.ContextMap()["status"])

	// the child follows its parent's level
	parent.SetLevel(core.LogLevelWarn)
	child.Info("suppressed", nil)
	assert.Equal(t, 0, logs.Len())
}

func TestNoopLogger(t *testing.T) {
	log := NewNoopLogger()
	log.SetLevel(core.LogLevelDebug)

	assert.Equal(t, core.LogLevelDebug, log.GetLevel())
	assert.Same(t, log, log.With(map[string]any{"a": 1}))
	assert.NoError(t, log.Flush())
}

func TestContextHelpers(t *testing.T) {
	ctx := context.Background()
	fallback := NewNoopLogger()

	assert.Equal(t, "", RequestIDFromContext(ctx))
	assert.Same(t, fallback, FromContext(ctx, fallback))

	scoped := NewNoopLogger()
	ctx = ContextWithRequestID(ctx, "req-1")
	ctx = ContextWithLogger(ctx, scoped)

	assert.Equal(t, "req-1", RequestIDFromContext(ctx))
	assert.Same(t, scoped, FromContext(ctx, fallback))
}
