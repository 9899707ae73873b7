package execution

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kazz187/aisa/internal/task"
	"github.com/kazz187/aisa/pkg/cerr"
	"github.com/kazz187/aisa/pkg/storage"
)

// TestHelperProcess is not a real test. Plan steps re-execute the test binary
// with it selected to act as a child process.
func TestHelperProcess(t *testing.T) {
	if os.Getenv("AISA_WANT_HELPER_PROCESS") != "1" {
		return
	}
	args := os.Args
	for len(args) > 0 && args[0] != "--" {
		args = args[1:]
	}
	if len(args) < 2 {
		os.Exit(2)
	}
	switch args[1] {
	case "echo":
		fmt.Println(strings.Join(args[2:], " "))
		os.Exit(0)
	case "fail":
		fmt.Fprintln(os.Stderr, "boom")
		os.Exit(3)
	case "sleep":
		time.Sleep(time.Minute)
		os.Exit(0)
	}
	os.Exit(2)
}

func helperStep(name string, args ...string) Step {
	return Step{Name: name, Argv: append([]string{os.Args[0], "-test.run=TestHelperProcess", "--"}, args...)}
}

func helperPlan(t *testing.T, steps ...Step) *Plan {
	dir := t.TempDir()
	return &Plan{
		TaskID:     "t1",
		Platform:   task.PlatformWeb,
		Dir:        dir,
		Env:        []string{"AISA_WANT_HELPER_PROCESS=1"},
		Steps:      steps,
		ResultPath: filepath.Join(dir, ResultFile),
	}
}

func TestBuildPlan(t *testing.T) {
	t.Run("web", func(t *testing.T) {
		p := BuildPlan(PlanInput{TaskID: "abc", Platform: task.PlatformWeb, Dir: "/run/abc", PythonBin: "python3", GOOS: "linux"})
		py := filepath.Join("/run/abc", "env", "bin", "python")

		names := make([]string, 0, len(p.Steps))
		for _, s := range p.Steps {
			names = append(names, s.Name)
		}
		assert.Equal(t, []string{"create virtual environment", "upgrade pip", "install requirements", "install browsers", "run script"}, names)
		assert.Equal(t, []string{"python3", "-m", "venv", "env"}, p.Steps[0].Argv)
		assert.Equal(t, []string{py, "-m", "pip", "install", "-r", RequirementsFile}, p.Steps[2].Argv)
		assert.Equal(t, []string{py, "-m", "playwright", "install"}, p.Steps[3].Argv)
		assert.Equal(t, []string{py, ScriptFile}, p.Steps[4].Argv)
		assert.Equal(t, filepath.Join("/run/abc", ResultFile), p.ResultPath)
	})

	t.Run("mobile waits for the support service", func(t *testing.T) {
		p := BuildPlan(PlanInput{TaskID: "abc", Platform: task.PlatformMobile, Dir: "/run/abc", PythonBin: "python", SupportGrace: 10 * time.Second, GOOS: "windows"})
		require.Len(t, p.Steps, 5)
		assert.Empty(t, p.Steps[3].Argv)
		assert.Equal(t, 10*time.Second, p.Steps[3].Wait())
		assert.Equal(t, filepath.Join("/run/abc", "env", "Scripts", "python.exe"), p.Steps[4].Argv[0])
	})
}

func TestPlan_WriteLoad(t *testing.T) {
	dir := t.TempDir()
	p := BuildPlan(PlanInput{TaskID: "abc", Platform: task.PlatformMobile, Dir: dir, PythonBin: "python3", SupportGrace: time.Second, GOOS: "linux"})
	path := filepath.Join(dir, PlanFile)
	require.NoError(t, p.Write(path))

	loaded, err := LoadPlan(path)
	require.NoError(t, err)
	assert.Equal(t, p, loaded)

	require.NoError(t, os.WriteFile(path, []byte(`{"task_id":"abc"}`), 0o644))
	_, err = LoadPlan(path)
	assert.Error(t, err)
}

func TestPlan_Replay(t *testing.T) {
	p := BuildPlan(PlanInput{TaskID: "abc", Platform: task.PlatformMobile, Dir: "/tmp/run dir", PythonBin: "python3", SupportGrace: 1500 * time.Millisecond, GOOS: "linux"})
	script, err := p.Replay()
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(script, "#!/usr/bin/env bash\n"))
	assert.Contains(t, script, "cd '/tmp/run dir'\n")
	assert.Contains(t, script, "# wait for support service\nsleep 1.5\n")
	assert.Contains(t, script, "python3 -m venv env\n")
}

func TestRunPlan(t *testing.T) {
	ctx := context.Background()

	t.Run("all steps succeed", func(t *testing.T) {
		p := helperPlan(t, helperStep("first", "echo", "hello"), Step{Name: "pause", WaitMS: 10}, helperStep("second", "echo", "world"))
		var out bytes.Buffer

		status := RunPlan(ctx, p, &out)
		assert.Equal(t, task.StatusSucceeded, status)
		assert.Contains(t, out.String(), "hello\n")
		assert.Contains(t, out.String(), "world\n")

		got, found, err := ReadMarkerFile(p.ResultPath)
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, task.StatusSucceeded, got)
	})

	t.Run("stops at first failure", func(t *testing.T) {
		p := helperPlan(t, helperStep("install", "fail"), helperStep("run", "echo", "never"))
		var out bytes.Buffer

		status := RunPlan(ctx, p, &out)
		assert.Equal(t, task.StatusFailed, status)
		assert.Contains(t, out.String(), "boom")
		assert.NotContains(t, out.String(), "never")

		got, found, err := ReadMarkerFile(p.ResultPath)
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, task.StatusFailed, got)
	})

	t.Run("missing binary fails", func(t *testing.T) {
		p := helperPlan(t, Step{Name: "run", Argv: []string{filepath.Join(t.TempDir(), "no-such-binary")}})
		assert.Equal(t, task.StatusFailed, RunPlan(ctx, p, &bytes.Buffer{}))
	})
}

func TestReadMarkerFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ResultFile)

	_, found, err := ReadMarkerFile(path)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, os.WriteFile(path, []byte("failed\n"), 0o644))
	s, found, err := ReadMarkerFile(path)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, task.StatusFailed, s)

	require.NoError(t, os.WriteFile(path, []byte("maybe"), 0o644))
	_, found, err = ReadMarkerFile(path)
	assert.Error(t, err)
	assert.True(t, found)
}

type recordingLauncher struct {
	mu      sync.Mutex
	specs   []ProcessSpec
	stopped []int
	// failOn makes the n-th Start (1-based) fail.
	failOn int
}

func (l *recordingLauncher) Start(_ context.Context, spec ProcessSpec) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.specs = append(l.specs, spec)
	if len(l.specs) == l.failOn {
		return 0, fmt.Errorf("exec: %q: executable file not found in $PATH", spec.Argv[0])
	}
	return 1000 + len(l.specs), nil
}

func (l *recordingLauncher) Stop(_ context.Context, pid int) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.stopped = append(l.stopped, pid)
	return nil
}

func newStage(t *testing.T) (*Stage, storage.Storage, *recordingLauncher) {
	s, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	l := &recordingLauncher{}
	stage := NewStage(s, l, Config{
		RuntimeDir:     t.TempDir(),
		PythonBin:      "python3",
		SupportCommand: "appium --port 4723",
		SupportGrace:   10 * time.Second,
		RunnerArgv:     []string{"/usr/local/bin/aisa", "exec-plan"},
		GOOS:           "linux",
	})
	return stage, s, l
}

func TestStage_Launch(t *testing.T) {
	ctx := context.Background()

	t.Run("web starts only the runner", func(t *testing.T) {
		stage, s, l := newStage(t)
		require.NoError(t, s.Write(ctx, "tasks/a/codegen/automation_script.py", []byte("print('hi')\n")))
		require.NoError(t, s.Write(ctx, "tasks/a/codegen/requirements.txt", []byte("playwright==1.45.0\n")))

		launch, err := stage.Launch(ctx, LaunchInput{
			TaskID:           "a",
			Platform:         task.PlatformWeb,
			ScriptPath:       "tasks/a/codegen/automation_script.py",
			RequirementsPath: "tasks/a/codegen/requirements.txt",
		})
		require.NoError(t, err)
		require.Len(t, l.specs, 1)
		assert.Equal(t, []string{"/usr/local/bin/aisa", "exec-plan", "--plan", launch.PlanPath}, l.specs[0].Argv)
		assert.Equal(t, filepath.Join(launch.Dir, RunnerLogFile), l.specs[0].LogPath)
		assert.Equal(t, 0, launch.SupportPID)

		script, err := os.ReadFile(filepath.Join(launch.Dir, ScriptFile))
		require.NoError(t, err)
		assert.Equal(t, "print('hi')\n", string(script))
		assert.FileExists(t, filepath.Join(launch.Dir, ReplayFile))

		plan, err := LoadPlan(launch.PlanPath)
		require.NoError(t, err)
		assert.Equal(t, "a", plan.TaskID)
		assert.Equal(t, launch.Dir, plan.Dir)

		_, found, err := stage.ReadMarker("a")
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("mobile starts the support service first", func(t *testing.T) {
		stage, s, l := newStage(t)
		require.NoError(t, s.Write(ctx, "tasks/m/codegen/automation_script.py", []byte("print('hi')\n")))
		require.NoError(t, s.Write(ctx, "tasks/m/codegen/requirements.txt", []byte("selenium==4.22.0\n")))

		launch, err := stage.Launch(ctx, LaunchInput{
			TaskID:           "m",
			Platform:         task.PlatformMobile,
			ScriptPath:       "tasks/m/codegen/automation_script.py",
			RequirementsPath: "tasks/m/codegen/requirements.txt",
		})
		require.NoError(t, err)
		require.Len(t, l.specs, 2)
		assert.Equal(t, []string{"appium", "--port", "4723"}, l.specs[0].Argv)
		assert.Equal(t, filepath.Join(launch.Dir, SupportLogFile), l.specs[0].LogPath)
		assert.Equal(t, "runner", l.specs[1].Name)
		assert.NotZero(t, launch.SupportPID)
	})

	t.Run("runner start failure stops the support service", func(t *testing.T) {
		stage, s, l := newStage(t)
		l.failOn = 2
		require.NoError(t, s.Write(ctx, "tasks/m/codegen/automation_script.py", []byte("print('hi')\n")))
		require.NoError(t, s.Write(ctx, "tasks/m/codegen/requirements.txt", []byte("selenium==4.22.0\n")))

		_, err := stage.Launch(ctx, LaunchInput{
			TaskID:           "m",
			Platform:         task.PlatformMobile,
			ScriptPath:       "tasks/m/codegen/automation_script.py",
			RequirementsPath: "tasks/m/codegen/requirements.txt",
		})
		require.Error(t, err)
		assert.True(t, cerr.IsCode(err, cerr.Internal))
		require.Len(t, l.specs, 2)
		assert.Equal(t, []int{1001}, l.stopped)
	})

	t.Run("web runner start failure stops nothing", func(t *testing.T) {
		stage, s, l := newStage(t)
		l.failOn = 1
		require.NoError(t, s.Write(ctx, "tasks/a/codegen/automation_script.py", []byte("print('hi')\n")))
		require.NoError(t, s.Write(ctx, "tasks/a/codegen/requirements.txt", []byte("playwright==1.45.0\n")))

		_, err := stage.Launch(ctx, LaunchInput{
			TaskID:           "a",
			Platform:         task.PlatformWeb,
			ScriptPath:       "tasks/a/codegen/automation_script.py",
			RequirementsPath: "tasks/a/codegen/requirements.txt",
		})
		require.Error(t, err)
		assert.Empty(t, l.stopped)
	})

	t.Run("missing script", func(t *testing.T) {
		stage, _, l := newStage(t)
		_, err := stage.Launch(ctx, LaunchInput{TaskID: "x", Platform: task.PlatformWeb, ScriptPath: "tasks/x/codegen/automation_script.py"})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrScriptNotFound)
		assert.True(t, cerr.IsCode(err, cerr.NotFound))
		assert.Empty(t, l.specs)
	})
}

func TestExecLauncher_Start(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "out.log")

	pid, err := ExecLauncher{}.Start(context.Background(), ProcessSpec{
		Name:    "helper",
		Argv:    []string{os.Args[0], "-test.run=TestHelperProcess", "--", "echo", "detached"},
		Dir:     dir,
		Env:     []string{"AISA_WANT_HELPER_PROCESS=1"},
		LogPath: logPath,
	})
	require.NoError(t, err)
	assert.NotZero(t, pid)

	assert.Eventually(t, func() bool {
		data, err := os.ReadFile(logPath)
		return err == nil && strings.Contains(string(data), "detached")
	}, 10*time.Second, 20*time.Millisecond)
}

func TestWatcher(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	seen := make(chan string, 1)
	w, err := NewWatcher(func(_ context.Context, taskID string) { seen <- taskID })
	require.NoError(t, err)
	defer w.Close()
	go w.Run(ctx)

	dir := t.TempDir()
	require.NoError(t, w.Watch("t-1", dir))
	assert.Equal(t, 1, w.Watching())

	require.NoError(t, os.WriteFile(filepath.Join(dir, "runner.log"), []byte("noise"), 0o644))
	require.NoError(t, WriteMarker(filepath.Join(dir, ResultFile), task.StatusSucceeded))

	select {
	case id := <-seen:
		assert.Equal(t, "t-1", id)
	case <-time.After(5 * time.Second):
		t.Fatal("marker was not detected")
	}
	assert.Eventually(t, func() bool { return w.Watching() == 0 }, time.Second, 10*time.Millisecond)
}
