// Package orchestrator sequences the blueprint, code generation and
// execution stages of a task. The task status in the repository gates every
// step; stages never write task records themselves.
package orchestrator

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/kazz187/aisa/internal/blueprint"
	"github.com/kazz187/aisa/internal/codegen"
	"github.com/kazz187/aisa/internal/eventbus"
	"github.com/kazz187/aisa/internal/execution"
	"github.com/kazz187/aisa/internal/task"
	"github.com/kazz187/aisa/pkg/cerr"
	"github.com/kazz187/aisa/pkg/clog"
	"github.com/kazz187/aisa/pkg/storage"
)

// DocumentPath is the storage location of the PDF uploaded with a task.
func DocumentPath(taskID string) string {
	return task.Dir(taskID) + "/input.pdf"
}

type CreateTaskInput struct {
	Instructions string
	Platform     task.Platform
	// Document is the source PDF. A nil Document creates a task from the
	// instructions alone.
	Document io.Reader
}

type Orchestrator struct {
	taskRepo   task.Repository
	storage    storage.Storage
	blueprints *blueprint.Stage
	codegen    *codegen.Stage
	execution  *execution.Stage
	eventBus   *eventbus.Bus

	watcher *execution.Watcher
	locks   sync.Map // task id -> *sync.Mutex
}

func New(
	taskRepo task.Repository,
	s storage.Storage,
	blueprints *blueprint.Stage,
	codegenStage *codegen.Stage,
	executionStage *execution.Stage,
	eventBus *eventbus.Bus,
) *Orchestrator {
	return &Orchestrator{
		taskRepo:   taskRepo,
		storage:    s,
		blueprints: blueprints,
		codegen:    codegenStage,
		execution:  executionStage,
		eventBus:   eventBus,
	}
}

// SetWatcher makes RunTask register every launched execution with w.
func (o *Orchestrator) SetWatcher(w *execution.Watcher) {
	o.watcher = w
}

func (o *Orchestrator) lock(id string) func() {
	v, _ := o.locks.LoadOrStore(id, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

// CreateTask runs the synchronous part of the pipeline and returns the task
// in status ready. A stage error aborts creation; the task keeps the last
// status it reached.
func (o *Orchestrator) CreateTask(ctx context.Context, in CreateTaskInput) (*task.Task, error) {
	in.Instructions = strings.TrimSpace(in.Instructions)
	if in.Instructions == "" {
		return nil, cerr.NewError(cerr.InvalidArgument, "instructions are required", nil)
	}
	if !in.Platform.Valid() {
		return nil, cerr.NewError(cerr.InvalidArgument, fmt.Sprintf("unsupported platform %q", in.Platform), nil)
	}

	t := task.New(task.NewID(), in.Platform, in.Instructions)
	ctx = clog.WithTaskID(ctx, t.ID)
	if err := o.taskRepo.Create(ctx, t); err != nil {
		return nil, err
	}
	o.publish(eventbus.TypeTaskCreated, t)
	slog.InfoContext(ctx, "task created", "platform", t.Platform)

	artifacts := map[string]string{}
	if in.Document != nil {
		data, err := io.ReadAll(in.Document)
		if err != nil {
			return nil, cerr.NewError(cerr.InvalidArgument, "failed to read document", err)
		}
		if err := o.storage.Write(ctx, DocumentPath(t.ID), data); err != nil {
			return nil, cerr.WrapStorageWriteError("document", err)
		}
		artifacts[task.ArtifactDocument] = DocumentPath(t.ID)
	}

	t, err := o.transition(ctx, t, task.StatusProcessing, artifacts)
	if err != nil {
		return nil, err
	}

	bpRes, err := o.blueprints.Generate(ctx, blueprint.Input{
		TaskID:       t.ID,
		Platform:     t.Platform,
		Instructions: t.Instructions,
		DocumentPath: t.Artifacts[task.ArtifactDocument],
	})
	if err != nil {
		slog.ErrorContext(ctx, "blueprint stage failed", "error", err)
		return nil, err
	}
	t, err = o.transition(ctx, t, task.StatusBlueprintCreated, map[string]string{
		task.ArtifactBlueprint: bpRes.Path,
	})
	if err != nil {
		return nil, err
	}

	// Code generation consumes the persisted blueprint, not the in-memory one.
	bp, err := o.blueprints.Load(ctx, bpRes.Path)
	if err != nil {
		return nil, err
	}
	cgRes, err := o.codegen.Generate(ctx, t.ID, bp)
	if err != nil {
		slog.ErrorContext(ctx, "code generation stage failed", "error", err)
		return nil, err
	}

	for _, p := range []string{bpRes.Path, cgRes.ScriptPath} {
		ok, err := o.storage.Exists(ctx, p)
		if err != nil {
			return nil, cerr.WrapStorageReadError("artifact", err)
		}
		if !ok {
			return nil, cerr.NewError(cerr.Internal, "server error", fmt.Errorf("artifact %s missing after generation", p))
		}
	}

	return o.transition(ctx, t, task.StatusReady, map[string]string{
		task.ArtifactScript:       cgRes.ScriptPath,
		task.ArtifactRequirements: cgRes.RequirementsPath,
	})
}

// RunTask launches the generated script of a ready task and returns the task
// in status running. The outcome is picked up later from the result marker.
func (o *Orchestrator) RunTask(ctx context.Context, id string) (*task.Task, error) {
	ctx = clog.WithTaskID(ctx, id)
	defer o.lock(id)()

	t, err := o.taskRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if t.Status != task.StatusReady {
		return nil, task.InvalidStateError(id, t.Status, "run")
	}

	launch, err := o.execution.Launch(ctx, execution.LaunchInput{
		TaskID:           t.ID,
		Platform:         t.Platform,
		ScriptPath:       t.Artifacts[task.ArtifactScript],
		RequirementsPath: t.Artifacts[task.ArtifactRequirements],
	})
	if err != nil {
		return nil, err
	}
	if o.watcher != nil {
		if err := o.watcher.Watch(t.ID, launch.Dir); err != nil {
			slog.WarnContext(ctx, "failed to watch execution dir, status resolves on poll only", "error", err)
		}
	}

	t, err = o.transition(ctx, t, task.StatusRunning, nil)
	if err != nil {
		return nil, err
	}
	slog.InfoContext(ctx, "task running", "runner_pid", launch.RunnerPID, "dir", launch.Dir)
	return t, nil
}

// GetTaskStatus returns the task. A running task whose runner has written
// its result marker is moved to the reported status first.
func (o *Orchestrator) GetTaskStatus(ctx context.Context, id string) (*task.Task, error) {
	ctx = clog.WithTaskID(ctx, id)
	t, err := o.taskRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if t.Status != task.StatusRunning {
		return t, nil
	}
	return o.resolve(ctx, id)
}

// ResolveMarker is the callback for execution.Watcher.
func (o *Orchestrator) ResolveMarker(ctx context.Context, id string) {
	ctx = clog.WithTaskID(ctx, id)
	if _, err := o.resolve(ctx, id); err != nil {
		slog.ErrorContext(ctx, "failed to resolve result marker", "error", err)
	}
}

func (o *Orchestrator) resolve(ctx context.Context, id string) (*task.Task, error) {
	defer o.lock(id)()

	t, err := o.taskRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if t.Status != task.StatusRunning {
		return t, nil
	}
	status, found, err := o.execution.ReadMarker(id)
	if err != nil {
		slog.WarnContext(ctx, "ignoring result marker", "error", err)
		return t, nil
	}
	if !found {
		return t, nil
	}
	slog.InfoContext(ctx, "execution finished", "status", status)
	return o.transition(ctx, t, status, nil)
}

// ListTasks returns one page of tasks ordered by id, plus the total count.
func (o *Orchestrator) ListTasks(ctx context.Context, limit, offset int) ([]*task.Task, int, error) {
	if limit < 0 || offset < 0 {
		return nil, 0, cerr.NewError(cerr.InvalidArgument, "limit and offset must not be negative", nil)
	}
	return o.taskRepo.List(ctx, limit, offset)
}

func (o *Orchestrator) GetBlueprint(ctx context.Context, id string) (*blueprint.Blueprint, error) {
	t, err := o.taskRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	p, ok := t.Artifacts[task.ArtifactBlueprint]
	if !ok {
		return nil, cerr.NewError(cerr.NotFound, "blueprint not found", fmt.Errorf("task %s has no blueprint (status %s)", id, t.Status))
	}
	return o.blueprints.Load(ctx, p)
}

// ReadArtifact returns the stored bytes of one named artifact of a task.
func (o *Orchestrator) ReadArtifact(ctx context.Context, id, name string) ([]byte, error) {
	t, err := o.taskRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	p, ok := t.Artifacts[name]
	if !ok {
		return nil, cerr.NewError(cerr.NotFound, "artifact not found", fmt.Errorf("task %s has no artifact %q", id, name))
	}
	data, err := o.storage.Read(ctx, p)
	if err != nil {
		return nil, cerr.WrapStorageReadError("artifact", err)
	}
	return data, nil
}

// ResumeWatches re-registers running tasks with the watcher after a restart
// and resolves those that finished while nobody was watching.
func (o *Orchestrator) ResumeWatches(ctx context.Context) error {
	if o.watcher == nil {
		return nil
	}
	tasks, _, err := o.taskRepo.List(ctx, 0, 0)
	if err != nil {
		return err
	}
	for _, t := range tasks {
		if t.Status != task.StatusRunning {
			continue
		}
		tctx := clog.WithTaskID(ctx, t.ID)
		if err := o.watcher.Watch(t.ID, o.execution.Dir(t.ID)); err != nil {
			slog.WarnContext(tctx, "failed to resume watch", "error", err)
		}
		if _, err := o.resolve(tctx, t.ID); err != nil {
			slog.WarnContext(tctx, "failed to resolve running task", "error", err)
		}
	}
	return nil
}

// transition moves t to status and merges artifacts into its artifact map.
func (o *Orchestrator) transition(ctx context.Context, t *task.Task, status task.Status, artifacts map[string]string) (*task.Task, error) {
	if err := task.ValidateTransition(t.Status, status); err != nil {
		return nil, cerr.NewError(cerr.Internal, "server error", err)
	}
	p := task.StatusPatch(status)
	if len(artifacts) > 0 {
		p.Artifacts = t.ArtifactsWith(artifacts)
	}
	updated, err := o.taskRepo.Update(ctx, t.ID, p)
	if err != nil {
		return nil, err
	}
	if updated.Status != t.Status {
		o.publish(eventbus.TypeTaskStatusChanged, updated)
	}
	slog.DebugContext(ctx, "task status updated", "from", t.Status, "to", updated.Status)
	return updated, nil
}

func (o *Orchestrator) publish(eventType eventbus.Type, t *task.Task) {
	if o.eventBus != nil {
		o.eventBus.PublishTask(eventType, t)
	}
}

