package clog

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddAttributes_MergesNestedMaps(t *testing.T) {
	ctx := ContextWithSlog(context.Background())
	AddAttributes(ctx, map[string]any{"req": map[string]any{"method": "GET"}})
	AddAttributes(ctx, map[string]any{"req": map[string]any{"path": "/api/tasks"}})

	attrs := GetAttributes(ctx)
	assert.Equal(t, map[string]any{"method": "GET", "path": "/api/tasks"}, attrs["req"])
}

func TestAddAttribute_WithoutSlogContextIsNoop(t *testing.T) {
	ctx := context.Background()
	AddAttribute(ctx, "k", "v")
	assert.Nil(t, GetAttributes(ctx))
	assert.Nil(t, GetError(ctx))
}

func TestWithTaskID(t *testing.T) {
	ctx := WithTaskID(context.Background(), "01abc")
	assert.Equal(t, "01abc", GetAttribute[string](ctx, TaskIDAttributeKey))

	reqCtx := ContextWithSlog(context.Background())
	same := WithTaskID(reqCtx, "01def")
	assert.Equal(t, "01def", GetAttribute[string](reqCtx, TaskIDAttributeKey))
	assert.Equal(t, reqCtx, same)
}

func TestAttributesHandler_AddsContextAttributes(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewAttributesHandler(slog.NewJSONHandler(&buf, nil)))

	ctx := WithTaskID(context.Background(), "01xyz")
	AddError(ctx, errors.New("boom"))
	logger.InfoContext(ctx, "stage finished")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "stage finished", rec["msg"])
	assert.Equal(t, "01xyz", rec[TaskIDAttributeKey])
	assert.Equal(t, "boom", rec[ErrorAttributeKey])
}

func TestHTTPStatusToLevel(t *testing.T) {
	assert.Equal(t, LevelInfo, HTTPStatusToLevel(201))
	assert.Equal(t, LevelInfo, HTTPStatusToLevel(499))
	assert.Equal(t, LevelWarn, HTTPStatusToLevel(412))
	assert.Equal(t, LevelError, HTTPStatusToLevel(503))
	assert.Equal(t, slog.LevelWarn, LevelWarn.SlogLevel())
}

func TestAttributesHandler_TaskIDFirstAndNilDropped(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewAttributesHandler(slog.NewTextHandler(&buf, &slog.HandlerOptions{
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	})))

	ctx := ContextWithSlog(context.Background())
	AddAttributes(ctx, map[string]any{"b": 2, "a": 1, "gone": nil})
	WithTaskID(ctx, "01t")
	logger.InfoContext(ctx, "hi")

	assert.Equal(t, "level=INFO msg=hi task_id=01t a=1 b=2\n", buf.String())
}

func TestConnectCodeToLevel(t *testing.T) {
	assert.Equal(t, LevelInfo, ConnectCodeToLevel(connect.CodeFailedPrecondition))
	assert.Equal(t, LevelInfo, ConnectCodeToLevel(connect.CodeNotFound))
	assert.Equal(t, LevelError, ConnectCodeToLevel(connect.CodeInternal))
	assert.Equal(t, LevelError, ConnectCodeToLevel(connect.Code(99)))
}
