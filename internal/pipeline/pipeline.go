package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"meeting-transcriber/internal/audio"
	"meeting-transcriber/internal/minutes"
	"meeting-transcriber/internal/notifier"
	"meeting-transcriber/internal/runlog"
	"meeting-transcriber/internal/summarizer"
)

const (
	transcriptSuffix = "_transcript.txt"
	minutesSuffix    = "_minutes.docx"

	statusCompleted = "completed"
)

// Process runs one file through the full pipeline. Any failure before both
// outputs and the run record are written aborts this file only: a Failed
// record is appended and the error returned so the batch can move on.
func (p *implPipeline) Process(ctx context.Context, path string) error {
	startTime := time.Now()
	basename := filepath.Base(path)

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Starting processing: %s", path)

	fail := func(stage string, err error) error {
		wrapped := fmt.Errorf("%s: %w", stage, err)
		p.logger.Error(ctx, "Processing %s failed: %v", basename, wrapped)
		p.recordFailure(ctx, basename, startTime, wrapped)
		return wrapped
	}

	// Step 1: Probe and segment the audio
	chunk := time.Duration(p.cfg.Pipeline.ChunkMinutes) * time.Minute
	track, err := audio.Probe(ctx, p.executor, path)
	if err != nil {
		return fail("probe audio", err)
	}
	p.logger.Info(ctx, "Audio duration %s, %d segment(s) of up to %s",
		track.Duration.Round(time.Second), track.SegmentCount(chunk), chunk)

	// Step 2: Transcribe segment by segment
	result, err := p.engine.Transcribe(ctx, track)
	if err != nil {
		return fail("transcribe", err)
	}

	base := strings.TrimSuffix(path, filepath.Ext(path))
	transcriptPath := base + transcriptSuffix
	if err := os.WriteFile(transcriptPath, []byte(result.Text+"\n"), 0644); err != nil {
		return fail("write transcript", err)
	}
	p.logger.Info(ctx, "Transcript saved: %s (%d chars)", transcriptPath, result.Length)

	// Step 3: Summarize; degrades instead of failing
	outcome := p.summarizer.Summarize(ctx, result.Text)
	if !outcome.OK {
		p.logger.Warn(ctx, "Summarization degraded for %s, minutes carry the fallback message", basename)
	}

	// Step 4: Build and persist the minutes document
	doc := minutes.Build(outcome, minutes.Meta{
		SourceFile:   basename,
		CreatedAt:    time.Now(),
		WhisperModel: p.cfg.Whisper.ModelName,
	})
	minutesPath := base + minutesSuffix
	if err := minutes.WriteDocx(doc, minutesPath); err != nil {
		return fail("write minutes", err)
	}
	p.logger.Info(ctx, "Minutes saved: %s", minutesPath)

	// Step 5: Run record, then the optional notification side channel.
	// Nothing past this point rolls back the persisted outputs.
	record := runlog.Record{
		Filename:           basename,
		StartTime:          startTime,
		EndTime:            time.Now(),
		Status:             statusCompleted,
		TextLength:         result.Length,
		SummaryLength:      utf8.RuneCountInString(outcome.Summary),
		NotificationStatus: runlog.NotifyNotSent,
	}
	if err := p.store.Append(record); err != nil {
		p.logger.Error(ctx, "Failed to append run record for %s: %v", basename, err)
	}

	if p.webhookURL != "" {
		p.notify(ctx, basename, startTime, outcome)
	}

	p.logger.Info(ctx, "Completed %s in %s", basename, time.Since(startTime).Round(time.Second))
	return nil
}

// notify sends the webhook message and records the outcome in the run log.
// Never fails the pipeline.
func (p *implPipeline) notify(ctx context.Context, basename string, startTime time.Time, outcome summarizer.Outcome) {
	payload := notifier.Payload{
		FileName: basename,
		Elapsed:  time.Since(startTime),
		Models:   p.modelsLabel(outcome),
		Summary:  outcome.Summary,
	}

	status := runlog.NotifySent
	if err := p.notifier.Send(ctx, p.webhookURL, payload.Message()); err != nil {
		var delErr *notifier.DeliveryError
		if errors.As(err, &delErr) {
			status = runlog.NotifyFailed
		} else {
			status = runlog.NotifyError
		}
		p.logger.Error(ctx, "Notification for %s not delivered: %v", basename, err)
	} else {
		p.logger.Info(ctx, "Notification sent for %s", basename)
	}

	if err := p.store.UpdateField(basename, "notification_status", status); err != nil {
		p.logger.Error(ctx, "Failed to update notification status for %s: %v", basename, err)
	}
}

// recordFailure appends a Failed record. The start time is best-effort: when
// a stage failed before any work happened it is simply the instant this
// file's processing began.
func (p *implPipeline) recordFailure(ctx context.Context, basename string, startTime time.Time, cause error) {
	record := runlog.Record{
		Filename:           basename,
		StartTime:          startTime,
		EndTime:            time.Now(),
		Status:             "error: " + cause.Error(),
		NotificationStatus: runlog.NotifyNotSent,
	}
	if err := p.store.Append(record); err != nil {
		p.logger.Error(ctx, "Failed to append failure record for %s: %v", basename, err)
	}
}

func (p *implPipeline) modelsLabel(outcome summarizer.Outcome) string {
	return fmt.Sprintf("Whisper(%s), Summary(%s)", p.cfg.Whisper.ModelName, outcome.Backend)
}

// ProcessAll runs the batch sequentially with per-file failure isolation.
func (p *implPipeline) ProcessAll(ctx context.Context, files []string) Summary {
	batchStart := time.Now()
	summary := Summary{Total: len(files)}

	for i, file := range files {
		p.logger.Info(ctx, "[%d/%d] %s", i+1, len(files), filepath.Base(file))

		if err := p.Process(ctx, file); err != nil {
			// Already logged and recorded; the batch continues.
			continue
		}

		summary.Succeeded++
		base := strings.TrimSuffix(file, filepath.Ext(file))
		summary.Outputs = append(summary.Outputs, base+transcriptSuffix, base+minutesSuffix)
	}

	summary.Elapsed = time.Since(batchStart)
	return summary
}
