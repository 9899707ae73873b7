package llm

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kazz187/aisa/pkg/cerr"
)

type fakeProvider struct {
	name  string
	out   string
	err   error
	delay time.Duration
	calls int
}

func (f *fakeProvider) Name() string { return f.name }

func (f *fakeProvider) Generate(ctx context.Context, _, _ string) (string, error) {
	f.calls++
	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	return f.out, f.err
}

type fakeToolProvider struct {
	fakeProvider
	toolCalls int
}

func (f *fakeToolProvider) GenerateWithTools(ctx context.Context, sys, user string, _ Toolbox, _ int) (string, error) {
	f.toolCalls++
	return f.Generate(ctx, sys, user)
}

type emptyToolbox struct{}

func (emptyToolbox) Definitions() []ToolDefinition { return nil }
func (emptyToolbox) Call(context.Context, string, string) (string, error) {
	return "", errors.New("no tools")
}

func TestChain_Generate(t *testing.T) {
	t.Run("first provider answers", func(t *testing.T) {
		a := &fakeProvider{name: "a", out: "from a"}
		b := &fakeProvider{name: "b", out: "from b"}
		c := NewChain(Entries(time.Second, a, b)...)

		out, err := c.Generate(context.Background(), "sys", "user")
		require.NoError(t, err)
		assert.Equal(t, "from a", out)
		assert.Equal(t, 0, b.calls)
	})

	t.Run("falls back on error", func(t *testing.T) {
		a := &fakeProvider{name: "a", err: errors.New("rate limited")}
		b := &fakeProvider{name: "b", out: "from b"}
		c := NewChain(Entries(time.Second, a, b)...)

		out, err := c.Generate(context.Background(), "sys", "user")
		require.NoError(t, err)
		assert.Equal(t, "from b", out)
		assert.Equal(t, 1, a.calls)
	})

	t.Run("empty output counts as failure", func(t *testing.T) {
		a := &fakeProvider{name: "a", out: ""}
		b := &fakeProvider{name: "b", out: "from b"}
		c := NewChain(Entries(time.Second, a, b)...)

		out, err := c.Generate(context.Background(), "sys", "user")
		require.NoError(t, err)
		assert.Equal(t, "from b", out)
	})

	t.Run("timeout moves to next provider", func(t *testing.T) {
		a := &fakeProvider{name: "a", out: "late", delay: time.Second}
		b := &fakeProvider{name: "b", out: "from b"}
		c := NewChain(Entry{Provider: a, Timeout: 20 * time.Millisecond}, Entry{Provider: b})

		out, err := c.Generate(context.Background(), "sys", "user")
		require.NoError(t, err)
		assert.Equal(t, "from b", out)
	})

	t.Run("all fail", func(t *testing.T) {
		a := &fakeProvider{name: "a", err: errors.New("boom")}
		b := &fakeProvider{name: "b", err: errors.New("bang")}
		c := NewChain(Entries(time.Second, a, b)...)

		_, err := c.Generate(context.Background(), "sys", "user")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrAllProvidersUnavailable)
		assert.True(t, cerr.IsCode(err, cerr.Unavailable))

		var pe *ProviderError
		require.ErrorAs(t, err, &pe)
		assert.Equal(t, "a", pe.Provider)
	})

	t.Run("no providers", func(t *testing.T) {
		_, err := NewChain().Generate(context.Background(), "sys", "user")
		assert.ErrorIs(t, err, ErrAllProvidersUnavailable)
	})
}

func TestChain_GenerateWithTools(t *testing.T) {
	plain := &fakeProvider{name: "plain", out: "plain answer"}
	tools := &fakeToolProvider{fakeProvider: fakeProvider{name: "tools", out: "tool answer"}}
	c := NewChain(Entries(time.Second, plain, tools)...)

	out, err := c.GenerateWithTools(context.Background(), "sys", "user", emptyToolbox{}, 3)
	require.NoError(t, err)
	assert.Equal(t, "tool answer", out)
	assert.Equal(t, 0, plain.calls)
	assert.Equal(t, 1, tools.toolCalls)

	_, err = NewChain(Entries(time.Second, plain)...).GenerateWithTools(context.Background(), "sys", "user", emptyToolbox{}, 3)
	assert.ErrorIs(t, err, ErrAllProvidersUnavailable)
}

func TestChain_Providers(t *testing.T) {
	c := NewChain(Entries(0, &fakeProvider{name: "groq"}, &fakeProvider{name: "anthropic"})...)
	assert.Equal(t, []string{"groq", "anthropic"}, c.Providers())
}
