package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"meeting-transcriber/internal/config"
	"meeting-transcriber/internal/logger"
	"meeting-transcriber/internal/notifier"
	"meeting-transcriber/internal/pipeline"
	"meeting-transcriber/internal/runlog"
	"meeting-transcriber/internal/summarizer"
	"meeting-transcriber/internal/transcriber"
	"meeting-transcriber/internal/watcher"
	"meeting-transcriber/pkg/executor"
)

const runLogFile = "transcription_log.csv"

func main() {
	ctx := context.Background()

	// Load configuration
	cfg, err := config.Load("config.yaml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Logging.Level, cfg.Logging.File)
	log.Info(ctx, "========================================")
	log.Info(ctx, "Meeting Transcriber")
	log.Info(ctx, "========================================")

	creds := config.LoadCredentials()
	exec := executor.New()

	// Preflight: audio tooling must exist before any file is touched
	for _, tool := range []string{"ffmpeg", "ffprobe"} {
		if !exec.Available(ctx, tool) {
			log.Error(ctx, "%s not found on PATH; install it and re-run", tool)
			os.Exit(1)
		}
	}

	// Load the speech model once; it is shared read-only across the batch
	model, err := transcriber.LoadModel(ctx, exec, cfg.Whisper)
	if err != nil {
		log.Error(ctx, "Failed to load whisper model: %v", err)
		os.Exit(1)
	}
	log.Info(ctx, "Whisper model %s ready (%s)", model.Name, model.ModelPath)

	chunk := time.Duration(cfg.Pipeline.ChunkMinutes) * time.Minute
	engine := transcriber.New(model, chunk, exec, log)

	backends := summarizer.Chain(ctx, cfg.Summarizer.Backends, creds, log)
	if len(backends) == 0 {
		log.Warn(ctx, "No summarization backend is usable; minutes will carry the fallback message")
	}
	sum := summarizer.New(backends, log)

	store := runlog.New(runLogFile)
	if err := store.EnsureInitialized(); err != nil {
		log.Error(ctx, "Failed to initialize run log: %v", err)
		os.Exit(1)
	}

	notif := notifier.New(log)
	if creds.WebhookURL == "" {
		log.Info(ctx, "Webhook not configured; notifications disabled")
	}

	p := pipeline.New(cfg, creds.WebhookURL, exec, engine, sum, store, notif, log)

	if cfg.Pipeline.Watch {
		runWatch(ctx, cfg, p, log)
		return
	}

	files, err := pipeline.Discover(cfg.Pipeline.InputDir)
	if err != nil {
		log.Error(ctx, "Failed to discover input files: %v", err)
		os.Exit(1)
	}
	if len(files) == 0 {
		log.Info(ctx, "No audio files found in %s (mp3, wav, m4a, mp4)", cfg.Pipeline.InputDir)
		return
	}

	log.Info(ctx, "%d audio file(s) found:", len(files))
	for i, f := range files {
		log.Info(ctx, "%d. %s", i+1, filepath.Base(f))
	}

	summary := p.ProcessAll(ctx, files)

	log.Info(ctx, "========================================")
	log.Info(ctx, "Batch complete: %d/%d file(s) succeeded in %s",
		summary.Succeeded, summary.Total, summary.Elapsed.Round(time.Second))
	if len(summary.Outputs) > 0 {
		log.Info(ctx, "Output files:")
		for _, out := range summary.Outputs {
			log.Info(ctx, "- %s", out)
		}
	}
	log.Info(ctx, "Run log: %s", runLogFile)
}

// runWatch keeps the process alive and hands newly-landed audio files to the
// pipeline one at a time until interrupted.
func runWatch(ctx context.Context, cfg *config.Config, p pipeline.Pipeline, log logger.Logger) {
	w, err := watcher.New(cfg.Pipeline.InputDir, p.Process, log)
	if err != nil {
		log.Error(ctx, "Failed to create watcher: %v", err)
		os.Exit(1)
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		if err := w.Start(ctx); err != nil && err != context.Canceled {
			errChan <- err
		}
	}()

	log.Info(ctx, "Watching %s. Press Ctrl+C to stop", cfg.Pipeline.InputDir)

	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
	case err := <-errChan:
		log.Error(ctx, "Watcher error: %v", err)
	}

	cancel()
	log.Info(ctx, "Meeting Transcriber stopped")
}
