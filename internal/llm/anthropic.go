package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

type AnthropicConfig struct {
	Name      string
	BaseURL   string
	APIKey    string
	Model     string
	MaxTokens int
}

// AnthropicProvider calls the Messages API through the official SDK.
type AnthropicProvider struct {
	name      string
	model     string
	maxTokens int64
	client    anthropic.Client
}

var _ Provider = (*AnthropicProvider)(nil)

func NewAnthropicProvider(cfg AnthropicConfig) *AnthropicProvider {
	if cfg.MaxTokens == 0 {
		cfg.MaxTokens = 4096
	}
	// The chain falls back to the next provider, so the SDK does not retry.
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	return &AnthropicProvider{
		name:      cfg.Name,
		model:     cfg.Model,
		maxTokens: int64(cfg.MaxTokens),
		client:    anthropic.NewClient(opts...),
	}
}

func (p *AnthropicProvider) Name() string {
	return p.name
}

func (p *AnthropicProvider) Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(p.model),
		MaxTokens: p.maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(userPrompt)),
		},
	}
	if systemPrompt != "" {
		params.System = []anthropic.TextBlockParam{{Text: systemPrompt}}
	}

	msg, err := p.client.Messages.New(ctx, params)
	if err != nil {
		var apiErr *anthropic.Error
		if errors.As(err, &apiErr) {
			return "", fmt.Errorf("messages api returned status %d: %w", apiErr.StatusCode, err)
		}
		return "", fmt.Errorf("messages api: %w", err)
	}

	var b strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			b.WriteString(block.Text)
		}
	}
	return b.String(), nil
}
