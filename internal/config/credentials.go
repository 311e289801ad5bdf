package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Placeholder values written by the first-run setup; treated as unset.
const (
	openAIKeyPlaceholder = "sk-XXXXXXXXXXXXXXXXXXXXXXXXXXXX"
	webhookPlaceholder   = "https://hooks.slack.com/services/XXX/YYY/ZZZ"
)

// Credentials holds secrets loaded from the environment, never from YAML.
type Credentials struct {
	OpenAIKey  string
	GeminiKey  string
	WebhookURL string
}

// LoadCredentials reads .env (if present) and the process environment.
// An empty WebhookURL disables notification entirely.
func LoadCredentials() Credentials {
	// Missing .env is fine; the environment may carry the values directly.
	_ = godotenv.Load()

	creds := Credentials{
		OpenAIKey:  os.Getenv("OPENAI_API_KEY"),
		GeminiKey:  os.Getenv("GEMINI_API_KEY"),
		WebhookURL: os.Getenv("SLACK_WEBHOOK_URL"),
	}

	if creds.OpenAIKey == openAIKeyPlaceholder {
		creds.OpenAIKey = ""
	}
	if creds.WebhookURL == webhookPlaceholder {
		creds.WebhookURL = ""
	}

	return creds
}
