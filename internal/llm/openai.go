package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	openai "github.com/sashabaranov/go-openai"
)

const (
	GroqBaseURL   = "https://api.groq.com/openai/v1"
	OpenAIBaseURL = "https://api.openai.com/v1"
)

type OpenAIConfig struct {
	Name      string
	BaseURL   string
	APIKey    string
	Model     string
	MaxTokens int
}

// OpenAIProvider speaks the chat completions API, which Groq and OpenAI both serve.
type OpenAIProvider struct {
	name      string
	model     string
	maxTokens int
	client    *openai.Client
}

var (
	_ Provider   = (*OpenAIProvider)(nil)
	_ ToolCaller = (*OpenAIProvider)(nil)
)

func NewOpenAIProvider(cfg OpenAIConfig) *OpenAIProvider {
	c := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		c.BaseURL = cfg.BaseURL
	}
	return &OpenAIProvider{
		name:      cfg.Name,
		model:     cfg.Model,
		maxTokens: cfg.MaxTokens,
		client:    openai.NewClientWithConfig(c),
	}
}

func (p *OpenAIProvider) Name() string {
	return p.name
}

func (p *OpenAIProvider) Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	msg, err := p.complete(ctx, initialMessages(systemPrompt, userPrompt), nil)
	if err != nil {
		return "", err
	}
	return msg.Content, nil
}

func (p *OpenAIProvider) GenerateWithTools(ctx context.Context, systemPrompt, userPrompt string, tb Toolbox, maxIterations int) (string, error) {
	defs := tb.Definitions()
	tools := make([]openai.Tool, 0, len(defs))
	for _, d := range defs {
		tools = append(tools, openai.Tool{
			Type: openai.ToolTypeFunction,
			Function: &openai.FunctionDefinition{
				Name:        d.Name,
				Description: d.Description,
				Parameters:  d.Parameters,
			},
		})
	}

	messages := initialMessages(systemPrompt, userPrompt)
	for i := 0; i < maxIterations; i++ {
		msg, err := p.complete(ctx, messages, tools)
		if err != nil {
			return "", err
		}
		if len(msg.ToolCalls) == 0 {
			return msg.Content, nil
		}
		messages = append(messages, msg)
		for _, tc := range msg.ToolCalls {
			slog.DebugContext(ctx, "tool call", "provider", p.name, "tool", tc.Function.Name)
			out, err := tb.Call(ctx, tc.Function.Name, tc.Function.Arguments)
			if err != nil {
				out = "error: " + err.Error()
			}
			messages = append(messages, openai.ChatCompletionMessage{
				Role:       openai.ChatMessageRoleTool,
				Content:    out,
				Name:       tc.Function.Name,
				ToolCallID: tc.ID,
			})
		}
	}

	// Out of tool rounds: ask for the final answer with tools withheld.
	msg, err := p.complete(ctx, messages, nil)
	if err != nil {
		return "", err
	}
	return msg.Content, nil
}

func (p *OpenAIProvider) complete(ctx context.Context, messages []openai.ChatCompletionMessage, tools []openai.Tool) (openai.ChatCompletionMessage, error) {
	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     p.model,
		Messages:  messages,
		MaxTokens: p.maxTokens,
		Tools:     tools,
	})
	if err != nil {
		return openai.ChatCompletionMessage{}, fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return openai.ChatCompletionMessage{}, errors.New("chat completion returned no choices")
	}
	return resp.Choices[0].Message, nil
}

func initialMessages(systemPrompt, userPrompt string) []openai.ChatCompletionMessage {
	return []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
		{Role: openai.ChatMessageRoleUser, Content: userPrompt},
	}
}
