package repositoryimpl

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"sync"

	"github.com/kazz187/aisa/internal/task"
	"github.com/kazz187/aisa/pkg/cerr"
	"github.com/kazz187/aisa/pkg/clog"
	"github.com/kazz187/aisa/pkg/storage"
)

var idPattern = regexp.MustCompile(`^[0-9A-Za-z_-]+$`)

// JSONRepository keeps one status.json per task directory in Storage.
type JSONRepository struct {
	storage storage.Storage
	locks   sync.Map // task id -> *sync.Mutex
}

func NewJSONRepository(s storage.Storage) *JSONRepository {
	return &JSONRepository{storage: s}
}

func path(id string) string {
	return task.Dir(id) + "/status.json"
}

func (r *JSONRepository) lock(id string) func() {
	v, _ := r.locks.LoadOrStore(id, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

func (r *JSONRepository) Create(ctx context.Context, t *task.Task) error {
	if !idPattern.MatchString(t.ID) {
		return cerr.NewError(cerr.InvalidArgument, "invalid task id", nil)
	}
	defer r.lock(t.ID)()

	exists, err := r.storage.Exists(ctx, path(t.ID))
	if err != nil {
		return cerr.WrapStorageWriteError("task", err)
	}
	if exists {
		return task.AlreadyExistsError(t.ID)
	}
	return r.write(ctx, t)
}

func (r *JSONRepository) Get(ctx context.Context, id string) (*task.Task, error) {
	if !idPattern.MatchString(id) {
		return nil, task.NotFoundError(id)
	}
	return r.read(ctx, id)
}

func (r *JSONRepository) Update(ctx context.Context, id string, p task.Patch) (*task.Task, error) {
	if !idPattern.MatchString(id) {
		return nil, task.NotFoundError(id)
	}
	defer r.lock(id)()

	t, err := r.read(ctx, id)
	if err != nil {
		return nil, err
	}
	t.Apply(p)
	if err := r.write(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (r *JSONRepository) List(ctx context.Context, limit, offset int) ([]*task.Task, int, error) {
	ids, err := r.storage.ListDirs(ctx, task.StoragePrefix)
	if err != nil {
		return nil, 0, cerr.WrapStorageReadError("tasks", err)
	}

	var all []*task.Task
	for _, id := range ids {
		t, err := r.read(ctx, id)
		if err != nil {
			slog.WarnContext(ctx, "skipping unreadable task record", clog.TaskIDAttributeKey, id, clog.ErrorAttributeKey, err)
			continue
		}
		all = append(all, t)
	}
	return paginate(all, limit, offset)
}

func (r *JSONRepository) read(ctx context.Context, id string) (*task.Task, error) {
	data, err := r.storage.Read(ctx, path(id))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, task.NotFoundError(id)
		}
		return nil, cerr.WrapStorageReadError("task", err)
	}
	var t task.Task
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, cerr.NewError(cerr.Internal, "server error", fmt.Errorf("failed to unmarshal task %s: %w", id, err))
	}
	if t.Artifacts == nil {
		t.Artifacts = map[string]string{}
	}
	return &t, nil
}

func (r *JSONRepository) write(ctx context.Context, t *task.Task) error {
	data, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return cerr.NewError(cerr.Internal, "server error", fmt.Errorf("failed to marshal task: %w", err))
	}
	if err := r.storage.Write(ctx, path(t.ID), data); err != nil {
		return cerr.WrapStorageWriteError("task", err)
	}
	return nil
}

func paginate(all []*task.Task, limit, offset int) ([]*task.Task, int, error) {
	total := len(all)
	if offset >= total {
		return nil, total, nil
	}
	all = all[offset:]
	if limit > 0 && len(all) > limit {
		all = all[:limit]
	}
	return all, total, nil
}
