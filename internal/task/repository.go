package task

import (
	"context"
	"errors"
)

var (
	ErrNotFound      = errors.New("task not found")
	ErrAlreadyExists = errors.New("task already exists")
	ErrInvalidState  = errors.New("invalid task state")
)

// Repository is the only writer of task records.
type Repository interface {
	Create(ctx context.Context, t *Task) error
	Get(ctx context.Context, id string) (*Task, error)
	// Update merges p into the stored record and persists it atomically.
	Update(ctx context.Context, id string, p Patch) (*Task, error)
	List(ctx context.Context, limit, offset int) ([]*Task, int, error)
}
