package execution

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
)

// ProcessSpec describes a detached process. Output goes to LogPath.
type ProcessSpec struct {
	Name    string
	Argv    []string
	Dir     string
	Env     []string
	LogPath string
}

// Launcher starts a process that outlives the caller. Implementations never
// go through a shell.
type Launcher interface {
	Start(ctx context.Context, spec ProcessSpec) (pid int, err error)
	// Stop terminates a process started by Start, together with its children.
	Stop(ctx context.Context, pid int) error
}

// ExecLauncher starts processes with os/exec in their own session (Unix) or
// process group (Windows).
type ExecLauncher struct{}

func (ExecLauncher) Start(ctx context.Context, spec ProcessSpec) (int, error) {
	if len(spec.Argv) == 0 {
		return 0, errors.New("empty argv")
	}
	logFile, err := os.OpenFile(spec.LogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return 0, fmt.Errorf("open log %s: %w", spec.LogPath, err)
	}

	cmd := exec.Command(spec.Argv[0], spec.Argv[1:]...)
	cmd.Dir = spec.Dir
	cmd.Env = append(os.Environ(), spec.Env...)
	cmd.Stdout = logFile
	cmd.Stderr = logFile
	detach(cmd)

	if err := cmd.Start(); err != nil {
		_ = logFile.Close()
		return 0, fmt.Errorf("start %s: %w", spec.Name, err)
	}
	pid := cmd.Process.Pid
	slog.InfoContext(ctx, "process started", "name", spec.Name, "pid", pid)

	// Reap the child so it does not linger as a zombie.
	go func() {
		err := cmd.Wait()
		_ = logFile.Close()
		slog.Debug("process exited", "name", spec.Name, "pid", pid, "error", err)
	}()
	return pid, nil
}

func (ExecLauncher) Stop(ctx context.Context, pid int) error {
	if pid <= 0 {
		return fmt.Errorf("invalid pid %d", pid)
	}
	if err := terminate(pid); err != nil {
		return fmt.Errorf("stop pid %d: %w", pid, err)
	}
	slog.InfoContext(ctx, "process stopped", "pid", pid)
	return nil
}
