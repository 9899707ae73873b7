package cerr

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kazz187/aisa/pkg/storage"
)

func TestWrapStorageErrors(t *testing.T) {
	missing := fmt.Errorf("tasks/01a/task.json: %w", storage.ErrNotFound)

	tests := []struct {
		name string
		err  error
		want Code
	}{
		{name: "read missing", err: WrapStorageReadError("task", missing), want: NotFound},
		{name: "delete missing", err: WrapStorageDeleteError("task", missing), want: NotFound},
		{name: "write missing parent", err: WrapStorageWriteError("task", missing), want: Internal},
		{name: "canceled", err: WrapStorageReadError("task", context.Canceled), want: Canceled},
		{name: "deadline", err: WrapStorageWriteError("script", context.DeadlineExceeded), want: DeadlineExceeded},
		{name: "other", err: WrapStorageReadError("script", errors.New("disk on fire")), want: Internal},
		{name: "already classified", err: WrapStorageReadError("task", NewError(PermissionDenied, "no", nil)), want: PermissionDenied},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, IsCode(tt.err, tt.want), tt.err.Error())
		})
	}
}

func TestWrapStorageReadError_KeepsCause(t *testing.T) {
	err := WrapStorageReadError("blueprint", storage.ErrNotFound)
	assert.ErrorIs(t, err, storage.ErrNotFound)
	assert.Contains(t, err.Error(), "blueprint not found")
}
