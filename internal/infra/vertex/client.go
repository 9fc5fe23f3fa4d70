// Package vertex generates completions with Gemini models on Vertex AI.
package vertex

import (
	"context"
	"fmt"
	"strings"

	"match-pairs-api/internal/domain"

	"cloud.google.com/go/vertexai/genai"
)

// Client implements domain.Generator on Vertex AI.
// Credentials come from Application Default Credentials.
type Client struct {
	genaiClient *genai.Client
	model       string
}

func NewClient(ctx context.Context, projectID, location, model string) (*Client, error) {
	client, err := genai.NewClient(ctx, projectID, location)
	if err != nil {
		return nil, fmt.Errorf("failed to create vertex ai client: %w", err)
	}

	return &Client{
		genaiClient: client,
		model:       model,
	}, nil
}

func (c *Client) Generate(ctx context.Context, req domain.GenerationRequest) (string, error) {
	model := c.genaiClient.GenerativeModel(c.model)
	model.SetTemperature(float32(req.Temperature))
	model.SetMaxOutputTokens(int32(req.MaxTokens))
	if req.SystemPrompt != "" {
		model.SystemInstruction = &genai.Content{
			Parts: []genai.Part{genai.Text(req.SystemPrompt)},
		}
	}

	resp, err := model.GenerateContent(ctx, genai.Text(req.UserPrompt))
	if err != nil {
		return "", fmt.Errorf("vertex generate content failed: %w", err)
	}

	return responseText(resp)
}

func (c *Client) Close() error {
	return c.genaiClient.Close()
}

// responseText joins the text parts of the first candidate.
func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", domain.ErrEmptyCompletion
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			sb.WriteString(string(t))
		}
	}

	if strings.TrimSpace(sb.String()) == "" {
		return "", domain.ErrEmptyCompletion
	}
	return sb.String(), nil
}
