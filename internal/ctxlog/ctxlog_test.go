package ctxlog

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromContext_ReturnsEmbeddedLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	ctx := WithLogger(context.Background(), logger)

	require.Same(t, logger, FromContext(ctx))
}

func TestWith_AddsAttributes(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	ctx := WithLogger(context.Background(), slog.New(slog.NewTextHandler(&buf, nil)))
	ctx = With(ctx, "registry_id", "r-1")

	FromContext(ctx).Info("hello")
	require.Contains(t, buf.String(), "registry_id=r-1")
}

func TestFromContext_PanicsWithoutLogger(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() { FromContext(context.Background()) })
}
