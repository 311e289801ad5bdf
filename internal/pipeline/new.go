package pipeline

import (
	"meeting-transcriber/internal/config"
	"meeting-transcriber/internal/logger"
	"meeting-transcriber/internal/notifier"
	"meeting-transcriber/internal/runlog"
	"meeting-transcriber/internal/summarizer"
	"meeting-transcriber/internal/transcriber"
	"meeting-transcriber/pkg/executor"
)

type implPipeline struct {
	cfg        *config.Config
	webhookURL string
	executor   executor.Executor
	engine     transcriber.Engine
	summarizer summarizer.Summarizer
	store      runlog.Store
	notifier   notifier.Notifier
	logger     logger.Logger
}

// New creates a Pipeline composing the processing stages. An empty webhookURL
// disables the notification stage entirely.
func New(
	cfg *config.Config,
	webhookURL string,
	exec executor.Executor,
	engine transcriber.Engine,
	sum summarizer.Summarizer,
	store runlog.Store,
	notif notifier.Notifier,
	log logger.Logger,
) Pipeline {
	return &implPipeline{
		cfg:        cfg,
		webhookURL: webhookURL,
		executor:   exec,
		engine:     engine,
		summarizer: sum,
		store:      store,
		notifier:   notif,
		logger:     log,
	}
}
