package execution

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/kazz187/aisa/internal/task"
	"github.com/kazz187/aisa/pkg/storage"
)

// RunPlan executes the steps of p in order, writing their output to out, and
// stops at the first failing step. The result marker is written in every
// case, so a failed dependency install ends as "failed" instead of leaving
// the task running forever.
func RunPlan(ctx context.Context, p *Plan, out io.Writer) task.Status {
	status := task.StatusSucceeded
	for i, step := range p.Steps {
		fmt.Fprintf(out, "==> [%d/%d] %s\n", i+1, len(p.Steps), step.Name)
		start := time.Now()
		if err := runStep(ctx, p, step, out); err != nil {
			fmt.Fprintf(out, "==> step %q failed after %s: %v\n", step.Name, time.Since(start).Round(time.Millisecond), err)
			status = task.StatusFailed
			break
		}
	}

	if err := WriteMarker(p.ResultPath, status); err != nil {
		fmt.Fprintf(out, "==> failed to write result marker: %v\n", err)
	}
	fmt.Fprintf(out, "==> %s\n", status)
	return status
}

func runStep(ctx context.Context, p *Plan, step Step, out io.Writer) error {
	if len(step.Argv) == 0 {
		select {
		case <-time.After(step.Wait()):
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	cmd := exec.CommandContext(ctx, step.Argv[0], step.Argv[1:]...)
	cmd.Dir = p.Dir
	cmd.Env = append(os.Environ(), p.Env...)
	cmd.Stdout = out
	cmd.Stderr = out
	return cmd.Run()
}

// WriteMarker atomically writes the single-word result marker.
func WriteMarker(path string, status task.Status) error {
	s, err := storage.NewLocalStorage(filepath.Dir(path))
	if err != nil {
		return err
	}
	return s.Write(context.Background(), filepath.Base(path), []byte(string(status)+"\n"))
}
