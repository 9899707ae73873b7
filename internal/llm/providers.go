package llm

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/kazz187/aisa/internal/config"
)

const (
	KindOpenAI     = "openai"
	KindAnthropic  = "anthropic"
	KindClaudeCode = "claudecode"
)

// ProviderConfig is one entry of the providers file. Order in the file is
// priority order.
type ProviderConfig struct {
	Name       string `yaml:"name"`
	Kind       string `yaml:"kind"`
	BaseURL    string `yaml:"base_url"`
	Model      string `yaml:"model"`
	APIKeyEnv  string `yaml:"api_key_env"`
	MaxTokens  int    `yaml:"max_tokens"`
	TimeoutSec int    `yaml:"timeout_sec"`
	// WorkDir applies to the claudecode kind only.
	WorkDir    string `yaml:"work_dir"`
}

type providersFile struct {
	Providers []ProviderConfig `yaml:"providers"`
}

// LoadProvidersFile reads a YAML providers file:
//
//	providers:
//	  - name: groq
//	    kind: openai
//	    base_url: https://api.groq.com/openai/v1
//	    model: openai/gpt-oss-20b
//	    api_key_env: GROQ_API_KEY
//	  - name: claude
//	    kind: claudecode
func LoadProvidersFile(path string) ([]ProviderConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read providers file: %w", err)
	}
	var f providersFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse providers file: %w", err)
	}
	return f.Providers, nil
}

// DefaultProviders is Groq, then Anthropic, then OpenAI, each only when its
// API key is present in the environment. A local claude CLI comes last when
// CLAUDE_CODE is set.
func DefaultProviders(env *config.GenerationEnv) []ProviderConfig {
	var out []ProviderConfig
	if env.GroqAPIKey != "" {
		out = append(out, ProviderConfig{Name: "groq", Kind: KindOpenAI, BaseURL: GroqBaseURL, Model: env.GroqModel, APIKeyEnv: "GROQ_API_KEY"})
	}
	if env.AnthropicAPIKey != "" {
		out = append(out, ProviderConfig{Name: "anthropic", Kind: KindAnthropic, Model: env.AnthropicModel, APIKeyEnv: "ANTHROPIC_API_KEY", MaxTokens: 4096})
	}
	if env.OpenAIAPIKey != "" {
		out = append(out, ProviderConfig{Name: "openai", Kind: KindOpenAI, BaseURL: OpenAIBaseURL, Model: env.OpenAIModel, APIKeyEnv: "OPENAI_API_KEY"})
	}
	if env.ClaudeCode {
		out = append(out, ProviderConfig{Name: "claudecode", Kind: KindClaudeCode})
	}
	return out
}

// Build turns configs into chain entries. lookup resolves api_key_env names.
func Build(cfgs []ProviderConfig, lookup func(string) string, defaultTimeout time.Duration) ([]Entry, error) {
	entries := make([]Entry, 0, len(cfgs))
	for i, c := range cfgs {
		if c.Name == "" {
			c.Name = fmt.Sprintf("%s-%d", c.Kind, i)
		}
		if c.Model == "" && c.Kind != KindClaudeCode {
			return nil, fmt.Errorf("provider %s: model is required", c.Name)
		}
		apiKey := lookup(c.APIKeyEnv)
		timeout := defaultTimeout
		if c.TimeoutSec > 0 {
			timeout = time.Duration(c.TimeoutSec) * time.Second
		}

		var p Provider
		switch c.Kind {
		case KindOpenAI:
			p = NewOpenAIProvider(OpenAIConfig{Name: c.Name, BaseURL: c.BaseURL, APIKey: apiKey, Model: c.Model, MaxTokens: c.MaxTokens})
		case KindAnthropic:
			p = NewAnthropicProvider(AnthropicConfig{Name: c.Name, BaseURL: c.BaseURL, APIKey: apiKey, Model: c.Model, MaxTokens: c.MaxTokens})
		case KindClaudeCode:
			p = NewClaudeCodeProvider(ClaudeCodeConfig{Name: c.Name, WorkDir: c.WorkDir})
		default:
			return nil, fmt.Errorf("provider %s: unsupported kind %q", c.Name, c.Kind)
		}
		entries = append(entries, Entry{Provider: p, Timeout: timeout})
	}
	return entries, nil
}

// NewChainFromEnv builds the provider chain from PROVIDERS_FILE when set and
// from the well-known API key variables otherwise.
func NewChainFromEnv(env *config.GenerationEnv) (*Chain, error) {
	cfgs := DefaultProviders(env)
	if env.ProvidersFile != "" {
		var err error
		if cfgs, err = LoadProvidersFile(env.ProvidersFile); err != nil {
			return nil, err
		}
	}
	known := map[string]string{
		"GROQ_API_KEY":      env.GroqAPIKey,
		"ANTHROPIC_API_KEY": env.AnthropicAPIKey,
		"OPENAI_API_KEY":    env.OpenAIAPIKey,
	}
	lookup := func(name string) string {
		if v, ok := known[name]; ok && v != "" {
			return v
		}
		return os.Getenv(name)
	}
	entries, err := Build(cfgs, lookup, env.Timeout)
	if err != nil {
		return nil, err
	}
	return NewChain(entries...), nil
}
