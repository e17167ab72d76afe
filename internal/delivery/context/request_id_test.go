package context

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestWithRequestAndUserLogger(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	base := slog.New(slog.NewTextHandler(buf, nil))
	userID := uuid.New()

	ctx := WithRequest(context.Background(), base, "req-42")
	ctx = WithUserLogger(ctx, base, userID)
	GetLoggerOrDefault(ctx, base).Info("sample ingested")

	assert.Equal(t, "req-42", GetRequestIDFromContext(ctx))
	assert.Contains(t, buf.String(), "request_id=req-42")
	assert.Contains(t, buf.String(), "user_id="+userID.String())
}

func TestGetLoggerOrDefault_Fallback(t *testing.T) {
	t.Parallel()

	fallback := slog.Default()
	assert.Same(t, fallback, GetLoggerOrDefault(context.Background(), fallback))
	assert.Empty(t, GetRequestIDFromContext(context.Background()))
}
