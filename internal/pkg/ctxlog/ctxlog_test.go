package ctxlog

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromContext_Default(t *testing.T) {
	assert.Equal(t, slog.Default(), FromContext(context.Background()))
}

func TestWith(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	ctx := WithLogger(context.Background(), logger)

	ctx = With(ctx, "case_id", "42")
	FromContext(ctx).Info("case viewed")

	assert.Contains(t, buf.String(), "case_id=42")
	assert.Contains(t, buf.String(), "msg=\"case viewed\"")
}
