package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/kazz187/aisa/internal/execution"
	"github.com/kazz187/aisa/internal/task"
)

// runExecPlan is the entry point of the detached runner process. Its stdout
// is the runner log; the exit code mirrors the result marker.
func runExecPlan(planPath string) int {
	p, err := execution.LoadPlan(planPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		// The server only learns about the outcome through the marker.
		if err := execution.WriteMarker(filepath.Join(filepath.Dir(planPath), execution.ResultFile), task.StatusFailed); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return 2
	}
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if execution.RunPlan(ctx, p, os.Stdout) != task.StatusSucceeded {
		return 1
	}
	return 0
}
