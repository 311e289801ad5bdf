package transcriber

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"meeting-transcriber/internal/audio"
)

// segmentSeparator joins per-segment text into paragraphs.
const segmentSeparator = "\n\n"

// Transcribe runs the speech model over every segment of the track, in order.
// Any segment failure aborts the whole file.
func (e *implEngine) Transcribe(ctx context.Context, track *audio.Track) (*Result, error) {
	total := track.SegmentCount(e.chunk)
	name := filepath.Base(track.Path)
	parts := make([]string, 0, total)

	for seg := range track.Segments(e.chunk) {
		e.logger.Info(ctx, "Processing segment %d/%d of %s", seg.Index+1, total, name)

		text, err := e.transcribeSegment(ctx, track, seg)
		if err != nil {
			return nil, &TranscriptionError{Path: track.Path, Segment: seg.Index, Err: err}
		}

		parts = append(parts, strings.TrimSpace(text))
	}

	text := strings.Join(parts, segmentSeparator)
	return &Result{Text: text, Length: utf8.RuneCountInString(text)}, nil
}

// transcribeSegment materializes one segment to a transient WAV file, runs
// whisper over it and returns the text. Both the WAV slice and whisper's text
// output live only within this call, on every exit path.
func (e *implEngine) transcribeSegment(ctx context.Context, track *audio.Track, seg audio.Segment) (string, error) {
	chunkPath := filepath.Join(e.tempDir, fmt.Sprintf("chunk_%s_%d.wav", e.runID, seg.Index))

	// FFmpeg arguments for slice extraction
	// -ss/-t: segment window
	// -vn: audio only (mp4 inputs carry a video stream)
	// -ar 16000 -ac 1 -c:a pcm_s16le: 16kHz mono PCM, what whisper expects
	args := []string{
		"-ss", formatSeconds(seg.Start),
		"-t", formatSeconds(seg.Duration),
		"-i", track.Path,
		"-vn",
		"-ar", "16000",
		"-ac", "1",
		"-c:a", "pcm_s16le",
		"-y",
		chunkPath,
	}
	if _, err := e.executor.Execute(ctx, "ffmpeg", args...); err != nil {
		return "", fmt.Errorf("export segment: %w", err)
	}
	defer e.removeTransient(ctx, chunkPath)

	outputPrefix := strings.TrimSuffix(chunkPath, ".wav")
	txtPath := outputPrefix + ".txt"
	defer e.removeTransient(ctx, txtPath)

	// Whisper arguments
	// -l: explicit language hint, prevents hallucinated language switches
	// -otxt/-of: plain text output under our prefix
	// -np: suppress progress chatter on stderr
	whisperArgs := []string{
		"-m", e.model.ModelPath,
		"-f", chunkPath,
		"-l", e.model.Language,
		"-otxt",
		"-of", outputPrefix,
		"-np",
	}
	if _, err := e.executor.Execute(ctx, e.model.BinaryPath, whisperArgs...); err != nil {
		return "", fmt.Errorf("whisper transcribe: %w", err)
	}

	data, err := os.ReadFile(txtPath)
	if err != nil {
		return "", fmt.Errorf("read whisper output: %w", err)
	}

	return string(data), nil
}

// removeTransient removes a per-segment temp file, logs warning if it fails
func (e *implEngine) removeTransient(ctx context.Context, path string) {
	if err := os.Remove(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return
		}
		e.logger.Warn(ctx, "Failed to cleanup temp file %s: %v", path, err)
	} else {
		e.logger.Debug(ctx, "Cleaned up temp file: %s", path)
	}
}

func formatSeconds(d time.Duration) string {
	return strconv.FormatFloat(d.Seconds(), 'f', 3, 64)
}
