package logger_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/0xHoneyJar/loa-freeside-sub007/internal/logger"
)

func observe(t *testing.T) *observer.ObservedLogs {
	core, logs := observer.New(zapcore.DebugLevel)
	t.Cleanup(logger.Replace(zap.New(core)))
	return logs
}

func TestWithFields(t *testing.T) {
	logs := observe(t)

	ctx := logger.WithFields(context.Background(), zap.String("caller", "apikey:3f2a9c1e"))
	ctx = logger.WithFields(ctx, zap.String("accountID", "acc-1"))
	logger.InfoCtx(ctx, "Credited account", zap.Int64("amountMicro", 5_000_000))

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "apikey:3f2a9c1e", fields["caller"])
	assert.Equal(t, "acc-1", fields["accountID"])
	assert.Equal(t, int64(5_000_000), fields["amountMicro"])
}

func TestWithFields_DoesNotLeakIntoParent(t *testing.T) {
	logs := observe(t)

	parent := logger.WithFields(context.Background(), zap.String("caller", "jwt:svc-inference"))
	_ = logger.WithFields(parent, zap.String("reservationID", "res-1"))
	logger.WarnCtx(parent, "Reservation expired")

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "jwt:svc-inference", fields["caller"])
	assert.NotContains(t, fields, "reservationID")
}

func TestErrorCtx(t *testing.T) {
	logs := observe(t)

	logger.ErrorCtx(context.Background(), errors.New("failed to queue credit"))
	logger.ErrorCtx(context.Background(), nil)

	require.Equal(t, 2, logs.Len())
	assert.Equal(t, "failed to queue credit", logs.All()[0].Message)
	assert.Equal(t, zapcore.ErrorLevel, logs.All()[0].Level)
	assert.Equal(t, "error occurred", logs.All()[1].Message)
}
