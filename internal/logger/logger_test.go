package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequestIDRoundTrip(t *testing.T) {
	ctx := WithRequestID(context.Background(), "req-123")

	assert.Equal(t, "req-123", RequestIDFrom(ctx))
	assert.Empty(t, RequestIDFrom(context.Background()))
}

func TestFromCtx(t *testing.T) {
	Init("test")

	assert.NotNil(t, FromCtx(context.Background()))
	assert.NotNil(t, FromCtx(WithRequestID(context.Background(), "req-1")))
}
