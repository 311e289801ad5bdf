package notifier

import (
	"net/http"
	"time"

	"meeting-transcriber/internal/logger"
)

type implNotifier struct {
	client     *http.Client
	logger     logger.Logger
	maxElapsed time.Duration
}

// New creates a Notifier with a bounded retry window.
func New(log logger.Logger) Notifier {
	return &implNotifier{
		client:     &http.Client{Timeout: 10 * time.Second},
		logger:     log,
		maxElapsed: 15 * time.Second,
	}
}
