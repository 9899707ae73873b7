package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	claudeagent "github.com/kazz187/claude-agent-sdk-go"
)

type ClaudeCodeConfig struct {
	Name string
	// WorkDir is the working directory of the claude CLI. Empty keeps the
	// server's own.
	WorkDir string
}

// queryFunc runs one prompt and returns the final result text.
type queryFunc func(ctx context.Context, prompt string, opts *claudeagent.ClaudeAgentOptions) (text string, isError bool, err error)

// ClaudeCodeProvider generates through a locally installed claude CLI, so it
// needs no API key of its own.
type ClaudeCodeProvider struct {
	name    string
	workDir string
	query   queryFunc
}

var _ Provider = (*ClaudeCodeProvider)(nil)

func NewClaudeCodeProvider(cfg ClaudeCodeConfig) *ClaudeCodeProvider {
	return &ClaudeCodeProvider{
		name:    cfg.Name,
		workDir: cfg.WorkDir,
		query:   runQuerySync,
	}
}

func runQuerySync(ctx context.Context, prompt string, opts *claudeagent.ClaudeAgentOptions) (string, bool, error) {
	result, err := claudeagent.RunQuerySync(ctx, prompt, opts)
	if err != nil {
		return "", false, err
	}
	if result.Result == nil {
		return "", false, errors.New("claude returned no result")
	}
	return result.Result.Result, result.Result.IsError, nil
}

func (p *ClaudeCodeProvider) Name() string {
	return p.name
}

func (p *ClaudeCodeProvider) Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	// Generation is a single answer; tool use stays disabled by the turn limit.
	maxTurns := 1
	opts := &claudeagent.ClaudeAgentOptions{
		SystemPrompt: systemPrompt,
		Cwd:          p.workDir,
		MaxTurns:     &maxTurns,
		StderrCallback: func(line string) {
			slog.DebugContext(ctx, "claude stderr", "provider", p.name, "line", line)
		},
	}

	text, isError, err := p.query(ctx, userPrompt, opts)
	if err != nil {
		return "", fmt.Errorf("claude query: %w", err)
	}
	if isError {
		return "", fmt.Errorf("claude returned an error: %s", strings.TrimSpace(text))
	}
	return strings.TrimSpace(text), nil
}
