// Package tools holds the functions the code generator may call while it
// writes a script.
package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"github.com/kazz187/aisa/internal/llm"
)

// Handler executes a tool with its decoded arguments.
type Handler func(ctx context.Context, args map[string]any) (string, error)

type entry struct {
	def     llm.ToolDefinition
	handler Handler
}

// Registry implements llm.Toolbox.
type Registry struct {
	mu    sync.RWMutex
	tools map[string]entry
}

var _ llm.Toolbox = (*Registry)(nil)

func NewRegistry() *Registry {
	return &Registry{tools: map[string]entry{}}
}

func (r *Registry) Register(def llm.ToolDefinition, handler Handler) error {
	if def.Name == "" || handler == nil {
		return fmt.Errorf("invalid tool")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tools[def.Name]; ok {
		return fmt.Errorf("tool %s already registered", def.Name)
	}
	r.tools[def.Name] = entry{def: def, handler: handler}
	return nil
}

// Definitions returns the registered tools sorted by name.
func (r *Registry) Definitions() []llm.ToolDefinition {
	r.mu.RLock()
	defer r.mu.RUnlock()
	defs := make([]llm.ToolDefinition, 0, len(r.tools))
	for _, e := range r.tools {
		defs = append(defs, e.def)
	}
	sort.Slice(defs, func(i, j int) bool { return defs[i].Name < defs[j].Name })
	return defs
}

func (r *Registry) Call(ctx context.Context, name, arguments string) (string, error) {
	r.mu.RLock()
	e, ok := r.tools[name]
	r.mu.RUnlock()
	if !ok {
		return "", fmt.Errorf("tool %s not found", name)
	}
	args := map[string]any{}
	if arguments != "" {
		if err := json.Unmarshal([]byte(arguments), &args); err != nil {
			return "", fmt.Errorf("decode arguments for %s: %w", name, err)
		}
	}
	return e.handler(ctx, args)
}

func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.tools[name]
	return ok
}

func stringArg(args map[string]any, key string) (string, error) {
	v, ok := args[key].(string)
	if !ok || v == "" {
		return "", fmt.Errorf("argument %q must be a non-empty string", key)
	}
	return v, nil
}

func stringParam(name, description string) map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			name: map[string]any{"type": "string", "description": description},
		},
		"required": []string{name},
	}
}
