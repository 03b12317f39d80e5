package middleware

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var info = &grpc.UnaryServerInfo{FullMethod: "/storefront.v1.StorefrontService/GetCart"}

func TestUnaryLogging_Levels(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	interceptor := UnaryLogging(zap.New(core))

	_, err := interceptor(context.Background(), nil, info, func(ctx context.Context, req any) (any, error) {
		return "ok", nil
	})
	require.NoError(t, err)

	_, err = interceptor(context.Background(), nil, info, func(ctx context.Context, req any) (any, error) {
		return nil, status.Error(codes.Internal, "boom")
	})
	require.Error(t, err)

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, "OK", entries[0].ContextMap()["code"])
	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
	assert.Equal(t, info.FullMethod, entries[1].ContextMap()["method"])
}

func TestUnaryRecovery(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	interceptor := UnaryRecovery(zap.New(core))

	_, err := interceptor(context.Background(), nil, info, func(ctx context.Context, req any) (any, error) {
		panic("nil map")
	})

	assert.Equal(t, codes.Internal, status.Code(err))
	assert.Equal(t, 1, logs.FilterMessage("rpc panic").Len())
}
