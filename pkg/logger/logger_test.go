package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(NewContextHandler(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
}

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func Test_ContextHandler_AddsActionID(t *testing.T) {
	// given
	var buf bytes.Buffer
	log := newTestLogger(&buf)
	ctx := NewAction(context.Background())
	id, ok := ActionID(ctx)
	require.True(t, ok)
	// when
	log.InfoContext(ctx, "Product sold", "quantity", 3)
	// then
	entry := decode(t, &buf)
	assert.Equal(t, id, entry["action_id"])
	assert.Equal(t, float64(3), entry["quantity"])
	_, err := uuid.Parse(id)
	assert.NoError(t, err)
}

func Test_ContextHandler_NoActionID(t *testing.T) {
	var buf bytes.Buffer
	log := newTestLogger(&buf)

	log.InfoContext(context.Background(), "Started")

	entry := decode(t, &buf)
	assert.NotContains(t, entry, "action_id")
}

func Test_ContextHandler_WithAttrsAndGroup(t *testing.T) {
	var buf bytes.Buffer
	log := newTestLogger(&buf).With("component", "console").WithGroup("product")
	ctx := WithActionID(context.Background(), "abc")

	log.InfoContext(ctx, "Product added", "name", "Widget")

	entry := decode(t, &buf)
	assert.Equal(t, "console", entry["component"])
	group, ok := entry["product"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Widget", group["name"])
	assert.Equal(t, "abc", group["action_id"])
}

func Test_ActionID_Empty(t *testing.T) {
	_, ok := ActionID(WithActionID(context.Background(), ""))
	assert.False(t, ok)
}
