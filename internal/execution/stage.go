// Package execution provisions a Python environment for a generated script
// and runs it in a detached process. Completion is reported only through the
// result marker the runner writes.
package execution

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"mvdan.cc/sh/v3/shell"

	"github.com/kazz187/aisa/internal/task"
	"github.com/kazz187/aisa/pkg/cerr"
	"github.com/kazz187/aisa/pkg/storage"
)

var ErrScriptNotFound = errors.New("script not found")

func ScriptNotFoundError(taskID string, err error) error {
	return cerr.NewError(cerr.NotFound, "generated script not found", fmt.Errorf("%w: task %s: %w", ErrScriptNotFound, taskID, err))
}

type Config struct {
	RuntimeDir string
	PythonBin  string
	// SupportCommand is split into words the way a shell would. It is
	// started for mobile tasks only.
	SupportCommand string
	SupportGrace   time.Duration
	// RunnerArgv is the command that executes a plan; "--plan <path>" is appended.
	RunnerArgv []string
	GOOS       string
	Env        []string
}

type LaunchInput struct {
	TaskID           string
	Platform         task.Platform
	ScriptPath       string
	RequirementsPath string
}

type Launch struct {
	Dir        string
	PlanPath   string
	RunnerPID  int
	SupportPID int
}

type Stage struct {
	storage  storage.Storage
	launcher Launcher
	cfg      Config
}

func NewStage(s storage.Storage, l Launcher, cfg Config) *Stage {
	if cfg.GOOS == "" {
		cfg.GOOS = runtime.GOOS
	}
	return &Stage{storage: s, launcher: l, cfg: cfg}
}

// Dir is the local execution directory of a task.
func (s *Stage) Dir(taskID string) string {
	return filepath.Join(s.cfg.RuntimeDir, taskID, "execution")
}

func (s *Stage) Launch(ctx context.Context, in LaunchInput) (*Launch, error) {
	script, err := s.storage.Read(ctx, in.ScriptPath)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ScriptNotFoundError(in.TaskID, err)
		}
		return nil, cerr.WrapStorageReadError("script", err)
	}
	requirements, err := s.storage.Read(ctx, in.RequirementsPath)
	if err != nil {
		return nil, cerr.WrapStorageReadError("requirements", err)
	}

	dir, err := filepath.Abs(s.Dir(in.TaskID))
	if err != nil {
		return nil, internalError(err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, internalError(err)
	}
	if err := os.Remove(filepath.Join(dir, ResultFile)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, internalError(err)
	}
	if err := os.WriteFile(filepath.Join(dir, ScriptFile), script, 0o755); err != nil {
		return nil, internalError(err)
	}
	if err := os.WriteFile(filepath.Join(dir, RequirementsFile), requirements, 0o644); err != nil {
		return nil, internalError(err)
	}

	plan := BuildPlan(PlanInput{
		TaskID:       in.TaskID,
		Platform:     in.Platform,
		Dir:          dir,
		PythonBin:    s.cfg.PythonBin,
		SupportGrace: s.cfg.SupportGrace,
		GOOS:         s.cfg.GOOS,
		Env:          s.cfg.Env,
	})
	planPath := filepath.Join(dir, PlanFile)
	if err := plan.Write(planPath); err != nil {
		return nil, internalError(err)
	}
	if replay, err := plan.Replay(); err != nil {
		slog.WarnContext(ctx, "failed to render replay script", "error", err)
	} else if err := os.WriteFile(filepath.Join(dir, ReplayFile), []byte(replay), 0o755); err != nil {
		slog.WarnContext(ctx, "failed to write replay script", "error", err)
	}

	l := &Launch{Dir: dir, PlanPath: planPath}
	if in.Platform == task.PlatformMobile {
		argv, err := shell.Fields(s.cfg.SupportCommand, nil)
		if err != nil || len(argv) == 0 {
			return nil, cerr.NewError(cerr.Internal, "server error", fmt.Errorf("invalid support service command %q: %v", s.cfg.SupportCommand, err))
		}
		l.SupportPID, err = s.launcher.Start(ctx, ProcessSpec{
			Name:    "support service",
			Argv:    argv,
			Dir:     dir,
			Env:     s.cfg.Env,
			LogPath: filepath.Join(dir, SupportLogFile),
		})
		if err != nil {
			return nil, internalError(err)
		}
	}

	runnerArgv := append(append([]string(nil), s.cfg.RunnerArgv...), "--plan", planPath)
	l.RunnerPID, err = s.launcher.Start(ctx, ProcessSpec{
		Name:    "runner",
		Argv:    runnerArgv,
		Dir:     dir,
		Env:     s.cfg.Env,
		LogPath: filepath.Join(dir, RunnerLogFile),
	})
	if err != nil {
		if l.SupportPID != 0 {
			if stopErr := s.launcher.Stop(ctx, l.SupportPID); stopErr != nil {
				slog.WarnContext(ctx, "failed to stop support service", "pid", l.SupportPID, "error", stopErr)
			}
		}
		return nil, internalError(err)
	}
	slog.InfoContext(ctx, "execution launched", "dir", dir, "steps", len(plan.Steps))
	return l, nil
}

// ReadMarker reports the outcome written by the runner of a task.
func (s *Stage) ReadMarker(taskID string) (task.Status, bool, error) {
	return ReadMarkerFile(filepath.Join(s.Dir(taskID), ResultFile))
}

func internalError(err error) error {
	return cerr.NewError(cerr.Internal, "failed to launch execution", err)
}
