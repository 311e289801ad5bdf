package summarizer

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

type geminiBackend struct {
	model  string
	apiKey string
}

// NewGemini creates a Gemini backend for the given model identifier.
func NewGemini(model, apiKey string) Backend {
	return &geminiBackend{model: model, apiKey: apiKey}
}

func (b *geminiBackend) Name() string { return b.model }

func (b *geminiBackend) Generate(ctx context.Context, prompt string) (string, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  b.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", fmt.Errorf("create client: %w", err)
	}

	result, err := client.Models.GenerateContent(ctx, b.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
		var text string
		for _, part := range result.Candidates[0].Content.Parts {
			if part.Text != "" {
				text += part.Text
			}
		}
		if text != "" {
			return text, nil
		}
	}

	return "", fmt.Errorf("empty response from Gemini")
}
