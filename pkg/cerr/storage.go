package cerr

import (
	"context"
	"errors"
	"fmt"

	"github.com/kazz187/aisa/pkg/storage"
)

type storageOp string

const (
	opRead   storageOp = "read"
	opWrite  storageOp = "write"
	opDelete storageOp = "delete"
)

// wrapStorage classifies a storage failure on target. A missing object is
// NotFound except on writes, and an aborted context keeps its own code so
// that a client hang-up is not logged as a server error.
func wrapStorage(op storageOp, target string, err error) error {
	var existing *Error
	if errors.As(err, &existing) {
		return err
	}
	switch {
	case op != opWrite && errors.Is(err, storage.ErrNotFound):
		return NewError(NotFound, fmt.Sprintf("%s not found", target), err)
	case errors.Is(err, context.Canceled):
		return NewError(Canceled, "request canceled", err)
	case errors.Is(err, context.DeadlineExceeded):
		return NewError(DeadlineExceeded, fmt.Sprintf("timed out accessing %s", target), err)
	}
	return NewError(Internal, "server error", fmt.Errorf("failed to %s %s: %w", op, target, err))
}

func WrapStorageReadError(target string, err error) error {
	return wrapStorage(opRead, target, err)
}

func WrapStorageWriteError(target string, err error) error {
	return wrapStorage(opWrite, target, err)
}

func WrapStorageDeleteError(target string, err error) error {
	return wrapStorage(opDelete, target, err)
}
