package vertex

import (
	"errors"
	"testing"

	"cloud.google.com/go/vertexai/genai"

	"match-pairs-api/internal/domain"
)

func TestResponseText(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{
				Role: "model",
				Parts: []genai.Part{
					genai.Text(`[{"term": "Osmosis", `),
					genai.Blob{MIMEType: "image/png", Data: []byte{1, 2}},
					genai.Text(`"definition": "Diffusion of water"}]`),
				},
			},
		}},
	}

	got, err := responseText(resp)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	want := `[{"term": "Osmosis", "definition": "Diffusion of water"}]`
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestResponseText_Empty(t *testing.T) {
	cases := map[string]*genai.GenerateContentResponse{
		"nil response":  nil,
		"no candidates": {},
		"no content":    {Candidates: []*genai.Candidate{{}}},
		"no text parts": {Candidates: []*genai.Candidate{{Content: &genai.Content{Parts: []genai.Part{genai.Text("  ")}}}}},
	}

	for name, resp := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := responseText(resp); !errors.Is(err, domain.ErrEmptyCompletion) {
				t.Fatalf("expected ErrEmptyCompletion, got %v", err)
			}
		})
	}
}
