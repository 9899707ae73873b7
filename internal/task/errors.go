package task

import (
	"fmt"

	"github.com/kazz187/aisa/pkg/cerr"
)

func NotFoundError(id string) error {
	return cerr.NewError(cerr.NotFound, "task not found", fmt.Errorf("%w: %s", ErrNotFound, id))
}

func AlreadyExistsError(id string) error {
	return cerr.NewError(cerr.AlreadyExists, "task already exists", fmt.Errorf("%w: %s", ErrAlreadyExists, id))
}

// InvalidStateError reports that op is not allowed while the task is in current.
func InvalidStateError(id string, current Status, op string) error {
	return cerr.NewError(
		cerr.FailedPrecondition,
		fmt.Sprintf("cannot %s task in status %s", op, current),
		fmt.Errorf("%w: task %s is %s", ErrInvalidState, id, current),
	)
}
