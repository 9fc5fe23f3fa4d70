// Package groq sends chat completions to Groq's OpenAI-compatible endpoint.
package groq

import (
	"context"
	"fmt"
	"strings"

	"match-pairs-api/internal/domain"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// DefaultBaseURL is Groq's OpenAI-compatible API root.
const DefaultBaseURL = "https://api.groq.com/openai/v1"

// Client implements domain.Generator against Groq
type Client struct {
	client *openai.Client
	model  string
}

// NewClient builds a client for model. Extra options are applied after the defaults,
// so tests can swap the HTTP client.
func NewClient(apiKey, baseURL, model string, opts ...option.RequestOption) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	all := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithBaseURL(baseURL),
		option.WithMaxRetries(0),
	}
	all = append(all, opts...)

	client := openai.NewClient(all...)
	return &Client{
		client: &client,
		model:  model,
	}
}

// Generate sends one system and one user message and returns the first choice's content.
func (c *Client) Generate(ctx context.Context, req domain.GenerationRequest) (string, error) {
	messages := []openai.ChatCompletionMessageParamUnion{
		openai.SystemMessage(req.SystemPrompt),
		openai.UserMessage(req.UserPrompt),
	}

	response, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:       c.model,
		Messages:    messages,
		MaxTokens:   openai.Int(int64(req.MaxTokens)),
		Temperature: openai.Float(req.Temperature),
	})
	if err != nil {
		return "", fmt.Errorf("groq chat completion failed: %w", err)
	}

	if len(response.Choices) == 0 {
		return "", domain.ErrEmptyCompletion
	}

	content := response.Choices[0].Message.Content
	if strings.TrimSpace(content) == "" {
		return "", domain.ErrEmptyCompletion
	}
	return content, nil
}
