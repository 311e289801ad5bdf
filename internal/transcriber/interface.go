package transcriber

import (
	"context"
	"fmt"

	"meeting-transcriber/internal/audio"
)

// Engine drives the speech model across a track's segments and aggregates
// the ordered text.
type Engine interface {
	Transcribe(ctx context.Context, track *audio.Track) (*Result, error)
}

// Result is the ordered concatenation of per-segment text. Length counts
// runes, matching what the run log records.
type Result struct {
	Text   string
	Length int
}

// TranscriptionError reports a failed segment. There is no partial-transcript
// fallback: a gap in the middle of a meeting transcript has no safe degraded
// form, so the whole file fails.
type TranscriptionError struct {
	Path    string
	Segment int
	Err     error
}

func (e *TranscriptionError) Error() string {
	return fmt.Sprintf("transcribe %s segment %d: %v", e.Path, e.Segment, e.Err)
}

func (e *TranscriptionError) Unwrap() error { return e.Err }
