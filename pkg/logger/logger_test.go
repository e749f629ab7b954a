package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	appctx "protoparts/internal/core/context"
)

func TestWithContext_AddsTraceAndUser(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := NewWithCore(core)

	ctx := appctx.WithTrace(context.Background(), &appctx.TraceContext{TraceID: "t1", RequestID: "r1"})
	ctx = appctx.WithUser(ctx, &appctx.UserContext{UserID: 7, Username: "jdoe"})

	log.WithContext(ctx).Infow("hello", "k", "v")

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "t1", fields["trace_id"])
	assert.Equal(t, "r1", fields["request_id"])
	assert.Equal(t, int64(7), fields["user_id"])
	assert.Equal(t, "jdoe", fields["username"])
	assert.Equal(t, "v", fields["k"])
}

func TestFromContext_UsesStoredLogger(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	ctx := WithLogger(context.Background(), NewWithCore(core).WithComponent("ppmctl"))

	Info(ctx, "started")
	Debug(ctx, "dropped")

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "started", logs.All()[0].Message)
	assert.Equal(t, "ppmctl", logs.All()[0].ContextMap()["component"])
}

func TestNew_FallsBackToInfoOnBadLevel(t *testing.T) {
	log, err := New(Config{Level: "loud", Format: "json", Output: "stderr"})
	require.NoError(t, err)

	assert.True(t, log.Desugar().Core().Enabled(zapcore.InfoLevel))
	assert.False(t, log.Desugar().Core().Enabled(zapcore.DebugLevel))
}
