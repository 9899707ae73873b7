package llm

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/kazz187/aisa/pkg/cerr"
)

// Entry is one provider of a Chain together with its own call timeout.
type Entry struct {
	Provider Provider
	Timeout  time.Duration
}

// Chain tries its providers in order and returns the first usable answer.
type Chain struct {
	entries []Entry
}

func NewChain(entries ...Entry) *Chain {
	return &Chain{entries: entries}
}

// Entries attaches the same timeout to every provider.
func Entries(timeout time.Duration, providers ...Provider) []Entry {
	out := make([]Entry, 0, len(providers))
	for _, p := range providers {
		out = append(out, Entry{Provider: p, Timeout: timeout})
	}
	return out
}

// Providers returns the provider names in priority order.
func (c *Chain) Providers() []string {
	names := make([]string, 0, len(c.entries))
	for _, e := range c.entries {
		names = append(names, e.Provider.Name())
	}
	return names
}

func (c *Chain) Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	var errs []error
	for _, e := range c.entries {
		out, err := call(ctx, e, func(ctx context.Context) (string, error) {
			return e.Provider.Generate(ctx, systemPrompt, userPrompt)
		})
		if err == nil {
			return out, nil
		}
		errs = append(errs, err)
		if ctx.Err() != nil {
			break
		}
		slog.WarnContext(ctx, "generation provider failed", "provider", e.Provider.Name(), "error", err)
	}
	return "", unavailable(errs)
}

// GenerateWithTools runs a tool-augmented generation on the first provider
// that supports function calling and answers successfully.
func (c *Chain) GenerateWithTools(ctx context.Context, systemPrompt, userPrompt string, tb Toolbox, maxIterations int) (string, error) {
	var errs []error
	for _, e := range c.entries {
		tc, ok := e.Provider.(ToolCaller)
		if !ok {
			slog.DebugContext(ctx, "provider does not support tools, skipping", "provider", e.Provider.Name())
			continue
		}
		out, err := call(ctx, e, func(ctx context.Context) (string, error) {
			return tc.GenerateWithTools(ctx, systemPrompt, userPrompt, tb, maxIterations)
		})
		if err == nil {
			return out, nil
		}
		errs = append(errs, err)
		if ctx.Err() != nil {
			break
		}
		slog.WarnContext(ctx, "tool-augmented generation failed", "provider", e.Provider.Name(), "error", err)
	}
	return "", unavailable(errs)
}

func call(ctx context.Context, e Entry, fn func(context.Context) (string, error)) (string, error) {
	if e.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.Timeout)
		defer cancel()
	}
	start := time.Now()
	out, err := fn(ctx)
	if err == nil && out == "" {
		err = errEmptyResponse
	}
	if err != nil {
		return "", &ProviderError{Provider: e.Provider.Name(), Err: err}
	}
	slog.DebugContext(ctx, "generation finished", "provider", e.Provider.Name(), "duration", time.Since(start))
	return out, nil
}

func unavailable(errs []error) error {
	return cerr.NewError(
		cerr.Unavailable,
		"all generation providers unavailable",
		errors.Join(append([]error{ErrAllProvidersUnavailable}, errs...)...),
	)
}
