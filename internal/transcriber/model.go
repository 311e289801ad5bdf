package transcriber

import (
	"context"
	"fmt"
	"os"

	"meeting-transcriber/internal/config"
	"meeting-transcriber/pkg/executor"
)

// Model is a read-only handle to the whisper installation, created once per
// run and shared across all files and segments.
type Model struct {
	BinaryPath string
	ModelPath  string
	Name       string
	Language   string
}

// LoadModel verifies the whisper binary and model file up front so a broken
// installation fails the batch before any file is touched.
func LoadModel(ctx context.Context, exec executor.Executor, cfg config.WhisperConfig) (*Model, error) {
	if _, err := os.Stat(cfg.ModelPath); err != nil {
		return nil, fmt.Errorf("whisper model file: %w", err)
	}

	if _, err := exec.Execute(ctx, cfg.BinaryPath, "-h"); err != nil {
		return nil, fmt.Errorf("whisper binary %s: %w", cfg.BinaryPath, err)
	}

	return &Model{
		BinaryPath: cfg.BinaryPath,
		ModelPath:  cfg.ModelPath,
		Name:       cfg.ModelName,
		Language:   cfg.Language,
	}, nil
}
