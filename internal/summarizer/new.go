package summarizer

import (
	"meeting-transcriber/internal/logger"
)

type implSummarizer struct {
	backends []Backend
	logger   logger.Logger
}

// New creates a Summarizer trying the supplied backends in order.
func New(backends []Backend, log logger.Logger) Summarizer {
	return &implSummarizer{
		backends: backends,
		logger:   log,
	}
}
