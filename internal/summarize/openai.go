package summarize

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
)

const DefaultOpenAIModel = "gpt-4o-mini"

type OpenAIConfig struct {
	BaseURL string
	Model   string
	APIKey  string
}

// OpenAI summarizes through any OpenAI-compatible chat completion API.
type OpenAI struct {
	client *openai.Client
	model  string
	apiKey string
}

func NewOpenAI(cfg OpenAIConfig) *OpenAI {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultOpenAIModel
	}
	return &OpenAI{
		client: openai.NewClientWithConfig(clientCfg),
		model:  cfg.Model,
		apiKey: cfg.APIKey,
	}
}

func (o *OpenAI) Summarize(ctx context.Context, text string, bounds Bounds) (string, error) {
	if o.apiKey == "" {
		return "", ErrMissingCredentials
	}

	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt(bounds)},
			{Role: openai.ChatMessageRoleUser, Content: text},
		},
		MaxTokens:   bounds.MaxLength,
		Temperature: 0.2,
	})
	if err != nil {
		return "", fmt.Errorf("OpenAI chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("OpenAI returned no choices")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

func systemPrompt(b Bounds) string {
	return fmt.Sprintf("Summarize the text from a video transcript the user sends. "+
		"Write plain prose between %d and %d tokens long. Reply with the summary only.",
		b.MinLength, b.MaxLength)
}
