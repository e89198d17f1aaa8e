package logging

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"schoolhub/pkg/ctxdata"
)

func TestLoggerAddsContextFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := New(zap.New(core))

	userID := uuid.New()
	ctx := ctxdata.WithTraceID(context.Background(), "trace-42")
	ctx = ctxdata.WithActor(ctx, ctxdata.Actor{UserID: userID, Role: "Admin"})

	logger.Info(ctx, "hello", zap.String("k", "v"))

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "v", fields["k"])
	assert.Equal(t, "trace-42", fields[requestID])
	assert.Equal(t, userID.String(), fields[actorID])
}

func TestContextWithLogger(t *testing.T) {
	_, ok := GetFromContext(context.Background())
	assert.False(t, ok)

	logger := New(zap.NewNop())
	got, ok := GetFromContext(ContextWithLogger(context.Background(), logger))
	assert.True(t, ok)
	assert.Same(t, logger, got)
}
