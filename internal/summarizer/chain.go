package summarizer

import (
	"context"
	"strings"

	"meeting-transcriber/internal/config"
	"meeting-transcriber/internal/logger"
)

// Chain maps configured backend identifiers to concrete backends, in order.
// Identifiers whose credential is missing are skipped with a warning; an
// empty chain still yields a valid Summarizer that always degrades.
func Chain(ctx context.Context, ids []string, creds config.Credentials, log logger.Logger) []Backend {
	var backends []Backend

	for _, id := range ids {
		switch {
		case strings.HasPrefix(id, "gemini"):
			if creds.GeminiKey == "" {
				log.Warn(ctx, "Skipping backend %s: GEMINI_API_KEY not set", id)
				continue
			}
			backends = append(backends, NewGemini(id, creds.GeminiKey))
		default:
			if creds.OpenAIKey == "" {
				log.Warn(ctx, "Skipping backend %s: OPENAI_API_KEY not set", id)
				continue
			}
			backends = append(backends, NewOpenAI(id, creds.OpenAIKey))
		}
	}

	return backends
}
