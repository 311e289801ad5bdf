package config

import "fmt"

type Config struct {
	Whisper    WhisperConfig    `yaml:"whisper"`
	Pipeline   PipelineConfig   `yaml:"pipeline"`
	Summarizer SummarizerConfig `yaml:"summarizer"`
	Logging    LoggingConfig    `yaml:"logging"`
}

type WhisperConfig struct {
	ModelPath  string `yaml:"model_path"`
	BinaryPath string `yaml:"binary_path"`
	ModelName  string `yaml:"model_name"`
	Language   string `yaml:"language"`
}

type PipelineConfig struct {
	InputDir     string `yaml:"input_dir"`
	ChunkMinutes int    `yaml:"chunk_minutes"`
	Watch        bool   `yaml:"watch"`
}

type SummarizerConfig struct {
	Backends []string `yaml:"backends"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

func (c *Config) Validate() error {
	if c.Whisper.ModelPath == "" {
		return fmt.Errorf("whisper.model_path is required")
	}
	if c.Whisper.BinaryPath == "" {
		return fmt.Errorf("whisper.binary_path is required")
	}

	if c.Whisper.ModelName == "" {
		c.Whisper.ModelName = "small"
	}
	if c.Whisper.Language == "" {
		c.Whisper.Language = "ja"
	}
	if c.Pipeline.InputDir == "" {
		c.Pipeline.InputDir = "."
	}
	if c.Pipeline.ChunkMinutes <= 0 {
		c.Pipeline.ChunkMinutes = 5
	}
	if len(c.Summarizer.Backends) == 0 {
		c.Summarizer.Backends = []string{"gpt-4o", "gpt-3.5-turbo"}
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.File == "" {
		c.Logging.File = "transcriber.log"
	}

	return nil
}
