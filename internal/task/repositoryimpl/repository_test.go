package repositoryimpl

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kazz187/aisa/internal/task"
	"github.com/kazz187/aisa/pkg/cerr"
	"github.com/kazz187/aisa/pkg/clog"
	"github.com/kazz187/aisa/pkg/storage"
)

// repoFactory returns a constructor that reopens the same backing store, so
// durability can be checked across instances.
type repoFactory func(t *testing.T) func() task.Repository

func jsonFactory(t *testing.T) func() task.Repository {
	dir := t.TempDir()
	return func() task.Repository {
		s, err := storage.NewLocalStorage(dir)
		require.NoError(t, err)
		return NewJSONRepository(s)
	}
}

func sqliteFactory(t *testing.T) func() task.Repository {
	path := filepath.Join(t.TempDir(), "db", "tasks.db")
	return func() task.Repository {
		r, err := NewSQLiteRepository(path)
		require.NoError(t, err)
		t.Cleanup(func() { _ = r.Close() })
		return r
	}
}

func forEachRepo(t *testing.T, fn func(t *testing.T, open func() task.Repository)) {
	for name, factory := range map[string]repoFactory{"json": jsonFactory, "sqlite": sqliteFactory} {
		t.Run(name, func(t *testing.T) {
			fn(t, factory(t))
		})
	}
}

func TestRepository_CreateGet(t *testing.T) {
	forEachRepo(t, func(t *testing.T, open func() task.Repository) {
		ctx := context.Background()
		repo := open()

		tk := task.New(task.NewID(), task.PlatformWeb, "register a new account")
		require.NoError(t, repo.Create(ctx, tk))

		got, err := repo.Get(ctx, tk.ID)
		require.NoError(t, err)
		assert.Equal(t, task.StatusCreated, got.Status)
		assert.Equal(t, task.PlatformWeb, got.Platform)
		assert.Equal(t, "register a new account", got.Instructions)
		assert.Empty(t, got.Artifacts)
		assert.True(t, tk.CreatedAt.Equal(got.CreatedAt))
	})
}

func TestRepository_CreateTwiceFails(t *testing.T) {
	forEachRepo(t, func(t *testing.T, open func() task.Repository) {
		ctx := context.Background()
		repo := open()

		tk := task.New("dup", task.PlatformMobile, "x")
		require.NoError(t, repo.Create(ctx, tk))

		err := repo.Create(ctx, task.New("dup", task.PlatformWeb, "y"))
		assert.ErrorIs(t, err, task.ErrAlreadyExists)
		assert.True(t, cerr.IsCode(err, cerr.AlreadyExists))

		got, err := repo.Get(ctx, "dup")
		require.NoError(t, err)
		assert.Equal(t, task.PlatformMobile, got.Platform)
	})
}

func TestRepository_NotFound(t *testing.T) {
	forEachRepo(t, func(t *testing.T, open func() task.Repository) {
		ctx := context.Background()
		repo := open()

		_, err := repo.Get(ctx, "missing")
		assert.ErrorIs(t, err, task.ErrNotFound)
		assert.True(t, cerr.IsCode(err, cerr.NotFound))

		_, err = repo.Update(ctx, "missing", task.StatusPatch(task.StatusReady))
		assert.ErrorIs(t, err, task.ErrNotFound)
	})
}

func TestRepository_UpdateIsShallowMerge(t *testing.T) {
	forEachRepo(t, func(t *testing.T, open func() task.Repository) {
		ctx := context.Background()
		repo := open()

		tk := task.New("merge", task.PlatformWeb, "x")
		require.NoError(t, repo.Create(ctx, tk))

		_, err := repo.Update(ctx, "merge", task.Patch{Artifacts: map[string]string{task.ArtifactDocument: "doc"}})
		require.NoError(t, err)
		got, err := repo.Update(ctx, "merge", task.StatusPatch(task.StatusProcessing))
		require.NoError(t, err)
		assert.Equal(t, map[string]string{task.ArtifactDocument: "doc"}, got.Artifacts)
		assert.Equal(t, task.StatusProcessing, got.Status)

		got, err = repo.Update(ctx, "merge", task.Patch{Artifacts: map[string]string{task.ArtifactBlueprint: "bp"}})
		require.NoError(t, err)
		assert.Equal(t, map[string]string{task.ArtifactBlueprint: "bp"}, got.Artifacts)
		assert.Equal(t, "x", got.Instructions)
	})
}

func TestRepository_UpdateIdempotent(t *testing.T) {
	forEachRepo(t, func(t *testing.T, open func() task.Repository) {
		ctx := context.Background()
		repo := open()

		require.NoError(t, repo.Create(ctx, task.New("idem", task.PlatformWeb, "x")))

		once, err := repo.Update(ctx, "idem", task.StatusPatch(task.StatusReady))
		require.NoError(t, err)
		twice, err := repo.Update(ctx, "idem", task.StatusPatch(task.StatusReady))
		require.NoError(t, err)

		assert.Equal(t, once.Status, twice.Status)
		assert.Equal(t, once.Artifacts, twice.Artifacts)
		assert.Equal(t, once.Platform, twice.Platform)
		assert.Equal(t, once.Instructions, twice.Instructions)
	})
}

func TestRepository_DurableAcrossInstances(t *testing.T) {
	forEachRepo(t, func(t *testing.T, open func() task.Repository) {
		ctx := context.Background()

		first := open()
		require.NoError(t, first.Create(ctx, task.New("durable", task.PlatformMobile, "x")))
		_, err := first.Update(ctx, "durable", task.Patch{
			Status:    ptr(task.StatusRunning),
			Artifacts: map[string]string{task.ArtifactScript: "s.py"},
		})
		require.NoError(t, err)

		second := open()
		got, err := second.Get(ctx, "durable")
		require.NoError(t, err)
		assert.Equal(t, task.StatusRunning, got.Status)
		assert.Equal(t, "s.py", got.Artifacts[task.ArtifactScript])
	})
}

func TestRepository_ConcurrentUpdatesLoseNothing(t *testing.T) {
	forEachRepo(t, func(t *testing.T, open func() task.Repository) {
		ctx := context.Background()
		repo := open()
		require.NoError(t, repo.Create(ctx, task.New("conc", task.PlatformWeb, "x")))

		var wg sync.WaitGroup
		for i := 0; i < 10; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := repo.Update(ctx, "conc", task.StatusPatch(task.StatusProcessing))
				assert.NoError(t, err)
			}()
		}
		wg.Wait()

		got, err := repo.Get(ctx, "conc")
		require.NoError(t, err)
		assert.Equal(t, task.StatusProcessing, got.Status)
	})
}

func TestRepository_List(t *testing.T) {
	forEachRepo(t, func(t *testing.T, open func() task.Repository) {
		ctx := context.Background()
		repo := open()
		for i := 0; i < 5; i++ {
			require.NoError(t, repo.Create(ctx, task.New(fmt.Sprintf("t%d", i), task.PlatformWeb, "x")))
		}

		page, total, err := repo.List(ctx, 2, 1)
		require.NoError(t, err)
		assert.Equal(t, 5, total)
		require.Len(t, page, 2)
		assert.Equal(t, "t1", page[0].ID)
		assert.Equal(t, "t2", page[1].ID)

		page, total, err = repo.List(ctx, 0, 10)
		require.NoError(t, err)
		assert.Equal(t, 5, total)
		assert.Empty(t, page)
	})
}

func TestJSONRepository_ListSkipsCorruptRecords(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })

	ctx := context.Background()
	s, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	repo := NewJSONRepository(s)
	require.NoError(t, repo.Create(ctx, task.New("good", task.PlatformWeb, "x")))
	require.NoError(t, s.Write(ctx, task.Dir("broken")+"/status.json", []byte("{not json")))

	page, total, err := repo.List(ctx, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, page, 1)
	assert.Equal(t, "good", page[0].ID)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "WARN", line["level"])
	assert.Equal(t, "skipping unreadable task record", line["msg"])
	assert.Equal(t, "broken", line[clog.TaskIDAttributeKey])
	assert.Contains(t, line[clog.ErrorAttributeKey], "failed to unmarshal task broken")
}

func TestJSONRepository_RejectsPathLikeIDs(t *testing.T) {
	s, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	repo := NewJSONRepository(s)
	ctx := context.Background()

	err = repo.Create(ctx, task.New("../escape", task.PlatformWeb, "x"))
	assert.True(t, cerr.IsCode(err, cerr.InvalidArgument))

	_, err = repo.Get(ctx, "../escape")
	assert.True(t, errors.Is(err, task.ErrNotFound))
}

func ptr[T any](v T) *T {
	return &v
}
