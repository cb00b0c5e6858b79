package ctxlog

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromContext(t *testing.T) {
	t.Run("returns embedded logger", func(t *testing.T) {
		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		ctx := WithLogger(context.Background(), logger)

		assert.Same(t, logger, FromContext(ctx))
		FromContext(ctx).Info("hello", "net", "A")
		assert.Contains(t, buf.String(), "net=A")
	})

	t.Run("falls back to default logger", func(t *testing.T) {
		assert.Same(t, slog.Default(), FromContext(context.Background()))
	})
}

func TestDiscard(t *testing.T) {
	ctx := Discard(context.Background())
	logger := FromContext(ctx)
	assert.NotSame(t, slog.Default(), logger)
	assert.False(t, logger.Enabled(ctx, slog.LevelDebug))
}
