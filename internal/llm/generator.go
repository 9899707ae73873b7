// Package llm talks to text generation providers. Every provider exposes the
// same Generate(system, user) contract and providers are tried in a fixed
// priority order by Chain.
package llm

import (
	"context"
	"errors"
	"fmt"
)

var ErrAllProvidersUnavailable = errors.New("all generation providers unavailable")

type Generator interface {
	Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

type Provider interface {
	Generator
	Name() string
}

// ToolDefinition describes a callable tool with a JSON-schema parameter object.
type ToolDefinition struct {
	Name        string
	Description string
	Parameters  map[string]any
}

// Toolbox is the set of tools a ToolCaller may invoke. Arguments are the
// raw JSON object produced by the model.
type Toolbox interface {
	Definitions() []ToolDefinition
	Call(ctx context.Context, name, arguments string) (string, error)
}

// ToolCaller is implemented by providers that support function calling.
// The returned text is the model's final answer after all tool rounds.
type ToolCaller interface {
	GenerateWithTools(ctx context.Context, systemPrompt, userPrompt string, tb Toolbox, maxIterations int) (string, error)
}

type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

var errEmptyResponse = errors.New("empty response")
