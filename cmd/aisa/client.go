package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/kazz187/aisa/internal/client"
	"github.com/kazz187/aisa/internal/task"
	"github.com/kazz187/aisa/pkg/color"
)

func runClientCommand(ctx context.Context, command string) error {
	c := client.NewTaskClient(*serverURL, *apiKey)

	switch command {
	case createCmd.FullCommand():
		t, err := c.CreateTask(ctx, *createInstructions, task.Platform(*createPlatform), *createPDF)
		if err != nil {
			return err
		}
		printTask(t)
	case runCmd.FullCommand():
		t, err := c.RunTask(ctx, *runID)
		if err != nil {
			return err
		}
		printTask(t)
	case statusCmd.FullCommand():
		t, err := c.GetTask(ctx, *statusID)
		if err != nil {
			return err
		}
		printTask(t)
		if *statusBP {
			bp, err := c.GetBlueprint(ctx, *statusID)
			if err != nil {
				return err
			}
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(bp)
		}
	case listCmd.FullCommand():
		resp, err := c.ListTasks(ctx, *listLimit, *listOffset)
		if err != nil {
			return err
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tPLATFORM\tSTATUS\tUPDATED")
		for _, t := range resp.Tasks {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", t.ID, t.Platform, color.Status(string(t.Status)), t.UpdatedAt.Local().Format("2006-01-02 15:04:05"))
		}
		if err := w.Flush(); err != nil {
			return err
		}
		fmt.Printf("%d of %d tasks\n", len(resp.Tasks), resp.Total)
	default:
		return fmt.Errorf("unknown command %q", command)
	}
	return nil
}

func printTask(t *task.Task) {
	fmt.Printf("Task:     %s\n", t.ID)
	fmt.Printf("Status:   %s\n", color.Status(string(t.Status)))
	fmt.Printf("Platform: %s\n", t.Platform)
	if len(t.Artifacts) == 0 {
		return
	}
	names := make([]string, 0, len(t.Artifacts))
	for name := range t.Artifacts {
		names = append(names, name)
	}
	sort.Strings(names)
	fmt.Println("Artifacts:")
	for _, name := range names {
		fmt.Printf("  %-13s %s\n", name, t.Artifacts[name])
	}
}
