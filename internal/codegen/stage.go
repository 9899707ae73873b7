// Package codegen writes the automation script and its pip manifest from a
// blueprint.
package codegen

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/kazz187/aisa/internal/blueprint"
	"github.com/kazz187/aisa/internal/llm"
	"github.com/kazz187/aisa/internal/task"
	"github.com/kazz187/aisa/pkg/cerr"
	"github.com/kazz187/aisa/pkg/storage"
)

var ErrGenerationFailed = errors.New("code generation failed")

func generationError(err error) error {
	return cerr.NewError(cerr.Internal, "code generation failed", fmt.Errorf("%w: %w", ErrGenerationFailed, err))
}

func ScriptPath(taskID string) string {
	return task.Dir(taskID) + "/codegen/automation_script.py"
}

func RequirementsPath(taskID string) string {
	return task.Dir(taskID) + "/codegen/requirements.txt"
}

type Mode string

const (
	ModeDirect Mode = "direct"
	ModeTools  Mode = "tools"
)

type Result struct {
	ScriptPath       string
	RequirementsPath string
	Script           string
	Requirements     string
}

type Stage struct {
	generator llm.Generator
	storage   storage.Storage
	mode      Mode

	toolCaller    llm.ToolCaller
	toolbox       llm.Toolbox
	maxIterations int
}

func NewStage(g llm.Generator, s storage.Storage) *Stage {
	return &Stage{generator: g, storage: s, mode: ModeDirect}
}

// WithTools switches the stage to tool-augmented generation.
func (s *Stage) WithTools(tc llm.ToolCaller, tb llm.Toolbox, maxIterations int) *Stage {
	s.mode = ModeTools
	s.toolCaller = tc
	s.toolbox = tb
	s.maxIterations = maxIterations
	return s
}

func (s *Stage) Mode() Mode {
	return s.mode
}

func (s *Stage) Generate(ctx context.Context, taskID string, bp *blueprint.Blueprint) (*Result, error) {
	prof := profileFor(bp.Platform())
	bpJSON, err := json.MarshalIndent(bp, "", "  ")
	if err != nil {
		return nil, generationError(fmt.Errorf("encode blueprint: %w", err))
	}

	var script, requirements string
	switch s.mode {
	case ModeTools:
		script, requirements, err = s.generateWithTools(ctx, prof, string(bpJSON))
	default:
		script, requirements, err = s.generateDirect(ctx, prof, string(bpJSON))
	}
	if err != nil {
		return nil, err
	}

	res := &Result{
		ScriptPath:       ScriptPath(taskID),
		RequirementsPath: RequirementsPath(taskID),
		Script:           script,
		Requirements:     requirements,
	}
	if err := s.storage.Write(ctx, res.ScriptPath, []byte(script)); err != nil {
		return nil, cerr.WrapStorageWriteError("script", err)
	}
	if err := s.storage.Write(ctx, res.RequirementsPath, []byte(requirements)); err != nil {
		return nil, cerr.WrapStorageWriteError("requirements", err)
	}
	slog.InfoContext(ctx, "script generated", "mode", s.mode, "framework", prof.framework, "path", res.ScriptPath)
	return res, nil
}

func (s *Stage) generateDirect(ctx context.Context, prof platformProfile, bpJSON string) (string, string, error) {
	text, err := s.generator.Generate(ctx, systemPrompt(prof), userPrompt(bpJSON, prof))
	if err != nil {
		return "", "", err
	}
	code, err := ExtractCode(text)
	if err != nil {
		slog.WarnContext(ctx, "generated text has no usable code block", "error", err)
		return "", "", generationError(err)
	}
	script := ensureSetup(code, prof)
	return script, buildManifest(prof.manifest, InferPackages(script)), nil
}

const toolAnswerSchema = `{
  "type": "object",
  "required": ["script", "requirements"],
  "additionalProperties": false,
  "properties": {
    "script": {"type": "string", "minLength": 1},
    "requirements": {"type": "string"}
  }
}`

var toolAnswerLoader = gojsonschema.NewStringLoader(toolAnswerSchema)

type toolAnswer struct {
	Script       string `json:"script"`
	Requirements string `json:"requirements"`
}

func (s *Stage) generateWithTools(ctx context.Context, prof platformProfile, bpJSON string) (string, string, error) {
	if s.toolCaller == nil || s.toolbox == nil {
		return "", "", generationError(errors.New("tool mode is not configured"))
	}
	text, err := s.toolCaller.GenerateWithTools(ctx, toolSystemPrompt(prof), userPrompt(bpJSON, prof), s.toolbox, s.maxIterations)
	if err != nil {
		return "", "", err
	}
	answer, err := parseToolAnswer(text)
	if err != nil {
		slog.WarnContext(ctx, "tool-augmented answer is unusable", "error", err)
		return "", "", generationError(err)
	}

	script := answer.Script
	if code, err := ExtractCode(script); err == nil {
		script = code
	}
	script = ensureSetup(script, prof)
	extra := append(strings.Split(answer.Requirements, "\n"), InferPackages(script)...)
	return script, buildManifest(prof.manifest, extra), nil
}

func parseToolAnswer(text string) (*toolAnswer, error) {
	raw, err := blueprint.ExtractJSON(text)
	if err != nil {
		return nil, err
	}
	res, err := gojsonschema.Validate(toolAnswerLoader, gojsonschema.NewStringLoader(raw))
	if err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	if !res.Valid() {
		msgs := make([]string, 0, len(res.Errors()))
		for _, e := range res.Errors() {
			msgs = append(msgs, e.String())
		}
		return nil, fmt.Errorf("answer does not match schema: %s", strings.Join(msgs, "; "))
	}
	var a toolAnswer
	if err := json.Unmarshal([]byte(raw), &a); err != nil {
		return nil, fmt.Errorf("decode answer: %w", err)
	}
	return &a, nil
}
