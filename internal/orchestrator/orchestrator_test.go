package orchestrator

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kazz187/aisa/internal/blueprint"
	"github.com/kazz187/aisa/internal/codegen"
	"github.com/kazz187/aisa/internal/eventbus"
	"github.com/kazz187/aisa/internal/execution"
	"github.com/kazz187/aisa/internal/task"
	"github.com/kazz187/aisa/internal/task/repositoryimpl"
	"github.com/kazz187/aisa/pkg/cerr"
	"github.com/kazz187/aisa/pkg/storage"
)

const blueprintAnswer = `Here is the blueprint:
{
  "summary": {"goal": "Sign up", "target_application": "example.com", "platform": "web"},
  "steps": [
    {"step_id": 1, "screen_name": "Home", "description": "Open the sign up page", "action": "click", "target_element_description": "Sign up link"},
    {"step_id": 2, "screen_name": "Form", "description": "Enter the email", "action": "type_text", "target_element_description": "Email field", "value_to_enter": "user@example.com"}
  ]
}`

const scriptAnswer = "```python\nfrom playwright.sync_api import sync_playwright\n\ndef run(playwright):\n    page = playwright.chromium.launch().new_page()\n    page.goto('https://example.com')\n```"

// scriptedGenerator answers each Generate call with the next queued reply.
type scriptedGenerator struct {
	mu      sync.Mutex
	replies []string
	calls   int
}

func (g *scriptedGenerator) Generate(context.Context, string, string) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.calls >= len(g.replies) {
		return "", errors.New("no reply queued")
	}
	r := g.replies[g.calls]
	g.calls++
	return r, nil
}

type recordingLauncher struct {
	mu    sync.Mutex
	specs []execution.ProcessSpec
}

func (l *recordingLauncher) Start(_ context.Context, spec execution.ProcessSpec) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.specs = append(l.specs, spec)
	return 4000 + len(l.specs), nil
}

func (l *recordingLauncher) Stop(context.Context, int) error {
	return nil
}

type fixture struct {
	orch     *Orchestrator
	repo     task.Repository
	storage  storage.Storage
	gen      *scriptedGenerator
	launcher *recordingLauncher
	exec     *execution.Stage
	events   <-chan *eventbus.Event
}

func newFixture(t *testing.T, replies ...string) *fixture {
	t.Helper()
	s, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	repo := repositoryimpl.NewJSONRepository(s)
	gen := &scriptedGenerator{replies: replies}
	l := &recordingLauncher{}
	exec := execution.NewStage(s, l, execution.Config{
		RuntimeDir:     t.TempDir(),
		PythonBin:      "python3",
		SupportCommand: "appium",
		SupportGrace:   10 * time.Second,
		RunnerArgv:     []string{"/usr/local/bin/aisa", "exec-plan"},
		GOOS:           "linux",
	})
	bus := eventbus.New()
	_, events := bus.Subscribe(64)
	o := New(repo, s, blueprint.NewStage(gen, s), codegen.NewStage(gen, s), exec, bus)
	return &fixture{orch: o, repo: repo, storage: s, gen: gen, launcher: l, exec: exec, events: events}
}

func (f *fixture) statuses() []task.Status {
	var out []task.Status
	for {
		select {
		case ev := <-f.events:
			out = append(out, ev.Status)
		default:
			return out
		}
	}
}

func TestCreateTask_ReachesReady(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, blueprintAnswer, scriptAnswer)

	tk, err := f.orch.CreateTask(ctx, CreateTaskInput{
		Instructions: "Create an account",
		Platform:     task.PlatformWeb,
		Document:     strings.NewReader("this is not a pdf"),
	})
	require.NoError(t, err)
	assert.Equal(t, task.StatusReady, tk.Status)

	for _, name := range []string{task.ArtifactDocument, task.ArtifactBlueprint, task.ArtifactScript, task.ArtifactRequirements} {
		p, ok := tk.Artifacts[name]
		require.True(t, ok, name)
		exists, err := f.storage.Exists(ctx, p)
		require.NoError(t, err)
		assert.True(t, exists, name)
	}

	stored, err := f.repo.Get(ctx, tk.ID)
	require.NoError(t, err)
	assert.Equal(t, tk.Artifacts, stored.Artifacts)
	assert.Equal(t, task.StatusReady, stored.Status)

	assert.Equal(t, []task.Status{
		task.StatusCreated,
		task.StatusProcessing,
		task.StatusBlueprintCreated,
		task.StatusReady,
	}, f.statuses())

	bp, err := f.orch.GetBlueprint(ctx, tk.ID)
	require.NoError(t, err)
	require.Len(t, bp.Steps, 2)
	assert.Equal(t, blueprint.StepID("1"), bp.Steps[0].StepID)

	script, err := f.orch.ReadArtifact(ctx, tk.ID, task.ArtifactScript)
	require.NoError(t, err)
	assert.Contains(t, string(script), "def run(playwright")

	_, err = f.orch.ReadArtifact(ctx, tk.ID, "unknown")
	assert.True(t, cerr.IsCode(err, cerr.NotFound))
}

func TestCreateTask_Validation(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.orch.CreateTask(ctx, CreateTaskInput{Instructions: "  ", Platform: task.PlatformWeb})
	assert.True(t, cerr.IsCode(err, cerr.InvalidArgument))

	_, err = f.orch.CreateTask(ctx, CreateTaskInput{Instructions: "do it", Platform: "desktop"})
	assert.True(t, cerr.IsCode(err, cerr.InvalidArgument))

	tasks, total, err := f.orch.ListTasks(ctx, 0, 0)
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, tasks)
}

func TestCreateTask_CodegenFailureKeepsBlueprintCreated(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, blueprintAnswer, "I cannot write that script.")

	_, err := f.orch.CreateTask(ctx, CreateTaskInput{Instructions: "Create an account", Platform: task.PlatformWeb})
	require.Error(t, err)
	assert.ErrorIs(t, err, codegen.ErrGenerationFailed)

	tasks, total, err := f.orch.ListTasks(ctx, 10, 0)
	require.NoError(t, err)
	require.Equal(t, 1, total)
	assert.Equal(t, task.StatusBlueprintCreated, tasks[0].Status)
	_, hasScript := tasks[0].Artifacts[task.ArtifactScript]
	assert.False(t, hasScript)

	_, err = f.orch.RunTask(ctx, tasks[0].ID)
	assert.ErrorIs(t, err, task.ErrInvalidState)
}

func TestCreateTask_BlueprintFailureKeepsProcessing(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, "no json here")

	_, err := f.orch.CreateTask(ctx, CreateTaskInput{Instructions: "Create an account", Platform: task.PlatformMobile})
	assert.ErrorIs(t, err, blueprint.ErrGenerationFailed)

	tasks, _, err := f.orch.ListTasks(ctx, 0, 0)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, task.StatusProcessing, tasks[0].Status)
}

func TestRunTask_RequiresReady(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	for _, status := range []task.Status{task.StatusCreated, task.StatusProcessing, task.StatusBlueprintCreated} {
		tk := task.New(task.NewID(), task.PlatformWeb, "sign up")
		require.NoError(t, f.repo.Create(ctx, tk))
		if status != task.StatusCreated {
			_, err := f.repo.Update(ctx, tk.ID, task.StatusPatch(status))
			require.NoError(t, err)
		}

		_, err := f.orch.RunTask(ctx, tk.ID)
		require.Error(t, err, status)
		assert.ErrorIs(t, err, task.ErrInvalidState)
		assert.True(t, cerr.IsCode(err, cerr.FailedPrecondition))
		assert.Contains(t, err.Error(), string(status))

		got, err := f.repo.Get(ctx, tk.ID)
		require.NoError(t, err)
		assert.Equal(t, status, got.Status)
	}
	assert.Empty(t, f.launcher.specs)

	_, err := f.orch.RunTask(ctx, "missing")
	assert.ErrorIs(t, err, task.ErrNotFound)
}

func TestRunTask_MarkerResolvesStatus(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, blueprintAnswer, scriptAnswer)

	tk, err := f.orch.CreateTask(ctx, CreateTaskInput{Instructions: "Create an account", Platform: task.PlatformWeb})
	require.NoError(t, err)

	tk, err = f.orch.RunTask(ctx, tk.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusRunning, tk.Status)
	require.Len(t, f.launcher.specs, 1)
	assert.Equal(t, "runner", f.launcher.specs[0].Name)

	got, err := f.orch.GetTaskStatus(ctx, tk.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusRunning, got.Status)

	_, err = f.orch.RunTask(ctx, tk.ID)
	assert.ErrorIs(t, err, task.ErrInvalidState)

	marker := filepath.Join(f.exec.Dir(tk.ID), execution.ResultFile)
	require.NoError(t, execution.WriteMarker(marker, task.StatusSucceeded))

	got, err = f.orch.GetTaskStatus(ctx, tk.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusSucceeded, got.Status)

	stored, err := f.repo.Get(ctx, tk.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusSucceeded, stored.Status)
}

func TestGetTaskStatus_IgnoresUnknownMarker(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, blueprintAnswer, scriptAnswer)

	tk, err := f.orch.CreateTask(ctx, CreateTaskInput{Instructions: "Create an account", Platform: task.PlatformWeb})
	require.NoError(t, err)
	_, err = f.orch.RunTask(ctx, tk.ID)
	require.NoError(t, err)

	s, err := storage.NewLocalStorage(f.exec.Dir(tk.ID))
	require.NoError(t, err)
	require.NoError(t, s.Write(ctx, execution.ResultFile, []byte("maybe\n")))

	got, err := f.orch.GetTaskStatus(ctx, tk.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusRunning, got.Status)
}

func TestWatcher_ResolvesMarker(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	f := newFixture(t, blueprintAnswer, scriptAnswer)

	w, err := execution.NewWatcher(f.orch.ResolveMarker)
	require.NoError(t, err)
	defer w.Close()
	f.orch.SetWatcher(w)
	go w.Run(ctx)

	tk, err := f.orch.CreateTask(ctx, CreateTaskInput{Instructions: "Create an account", Platform: task.PlatformWeb})
	require.NoError(t, err)
	_, err = f.orch.RunTask(ctx, tk.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, w.Watching())

	marker := filepath.Join(f.exec.Dir(tk.ID), execution.ResultFile)
	require.NoError(t, execution.WriteMarker(marker, task.StatusFailed))

	require.Eventually(t, func() bool {
		got, err := f.repo.Get(ctx, tk.ID)
		return err == nil && got.Status == task.StatusFailed
	}, 5*time.Second, 20*time.Millisecond)
}

func TestResumeWatches_ResolvesFinishedTasks(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	f := newFixture(t, blueprintAnswer, scriptAnswer)

	tk, err := f.orch.CreateTask(ctx, CreateTaskInput{Instructions: "Create an account", Platform: task.PlatformWeb})
	require.NoError(t, err)
	_, err = f.orch.RunTask(ctx, tk.ID)
	require.NoError(t, err)
	require.NoError(t, execution.WriteMarker(filepath.Join(f.exec.Dir(tk.ID), execution.ResultFile), task.StatusSucceeded))

	w, err := execution.NewWatcher(f.orch.ResolveMarker)
	require.NoError(t, err)
	defer w.Close()
	f.orch.SetWatcher(w)
	require.NoError(t, f.orch.ResumeWatches(ctx))

	got, err := f.repo.Get(ctx, tk.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusSucceeded, got.Status)
}
