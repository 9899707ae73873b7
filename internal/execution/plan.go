package execution

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/kazz187/aisa/internal/task"
	"github.com/kazz187/aisa/pkg/shellquote"
)

// File names inside a task's execution directory.
const (
	ScriptFile       = "automation_script.py"
	RequirementsFile = "requirements.txt"
	PlanFile         = "plan.json"
	ReplayFile       = "replay.sh"
	RunnerLogFile    = "runner.log"
	SupportLogFile   = "support.log"
	ResultFile       = "result.txt"
	envDir           = "env"
)

// Step is one entry of a Plan: either a process to run to completion or a
// fixed wait.
type Step struct {
	Name string   `json:"name"`
	Argv []string `json:"argv,omitempty"`
	// WaitMS is a fixed sleep in milliseconds. Only used when Argv is empty.
	WaitMS int64 `json:"wait_ms,omitempty"`
}

func (s Step) Wait() time.Duration {
	return time.Duration(s.WaitMS) * time.Millisecond
}

// Plan is the data the runner executes. Every step is run from Dir with
// Env appended to the inherited environment.
type Plan struct {
	TaskID     string        `json:"task_id"`
	Platform   task.Platform `json:"platform"`
	Dir        string        `json:"dir"`
	Env        []string      `json:"env,omitempty"`
	Steps      []Step        `json:"steps"`
	ResultPath string        `json:"result_path"`
}

type PlanInput struct {
	TaskID       string
	Platform     task.Platform
	Dir          string
	PythonBin    string
	SupportGrace time.Duration
	// GOOS selects the virtual environment layout.
	GOOS string
	Env  []string
}

func venvPython(dir, goos string) string {
	if goos == "windows" {
		return filepath.Join(dir, envDir, "Scripts", "python.exe")
	}
	return filepath.Join(dir, envDir, "bin", "python")
}

// BuildPlan lays out the bootstrap and run steps for a platform.
func BuildPlan(in PlanInput) *Plan {
	py := venvPython(in.Dir, in.GOOS)
	steps := []Step{
		{Name: "create virtual environment", Argv: []string{in.PythonBin, "-m", "venv", envDir}},
		{Name: "upgrade pip", Argv: []string{py, "-m", "pip", "install", "--upgrade", "pip"}},
		{Name: "install requirements", Argv: []string{py, "-m", "pip", "install", "-r", RequirementsFile}},
	}
	switch in.Platform {
	case task.PlatformMobile:
		steps = append(steps, Step{Name: "wait for support service", WaitMS: in.SupportGrace.Milliseconds()})
	default:
		steps = append(steps, Step{Name: "install browsers", Argv: []string{py, "-m", "playwright", "install"}})
	}
	steps = append(steps, Step{Name: "run script", Argv: []string{py, ScriptFile}})

	return &Plan{
		TaskID:     in.TaskID,
		Platform:   in.Platform,
		Dir:        in.Dir,
		Env:        in.Env,
		Steps:      steps,
		ResultPath: filepath.Join(in.Dir, ResultFile),
	}
}

func (p *Plan) Write(path string) error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("encode plan: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write plan: %w", err)
	}
	return nil
}

func LoadPlan(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read plan: %w", err)
	}
	var p Plan
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("decode plan: %w", err)
	}
	if p.Dir == "" || p.ResultPath == "" || len(p.Steps) == 0 {
		return nil, fmt.Errorf("plan %s is incomplete", path)
	}
	return &p, nil
}

// Replay renders the plan as a bash script an operator can re-run by hand.
func (p *Plan) Replay() (string, error) {
	lines := []shellquote.Line{{Comment: fmt.Sprintf("task %s (%s)", p.TaskID, p.Platform)}}
	for _, env := range p.Env {
		lines = append(lines, shellquote.Line{Argv: []string{"export", env}})
	}
	for _, s := range p.Steps {
		lines = append(lines, shellquote.Line{Comment: s.Name})
		if len(s.Argv) == 0 {
			lines = append(lines, shellquote.Line{Argv: []string{"sleep", strconv.FormatFloat(s.Wait().Seconds(), 'f', -1, 64)}})
			continue
		}
		lines = append(lines, shellquote.Line{Argv: s.Argv})
	}
	return shellquote.Script(p.Dir, lines)
}
