package audio

import (
	"context"
	"fmt"
	"iter"
	"strconv"
	"strings"
	"time"

	"meeting-transcriber/pkg/executor"
)

// Track is a decoded audio source identified by its file and total duration.
// It is probed once per input file and discarded after segmentation.
type Track struct {
	Path     string
	Duration time.Duration
}

// Segment is a contiguous time slice of a Track. Index is 0-based and
// order-significant.
type Segment struct {
	Index    int
	Start    time.Duration
	Duration time.Duration
}

// DecodeError reports a source file that could not be parsed as audio.
// Fatal for that file only.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode audio %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Probe decodes the container metadata of an audio file via ffprobe and
// returns a Track carrying its total duration.
func Probe(ctx context.Context, exec executor.Executor, path string) (*Track, error) {
	out, err := exec.Execute(ctx, "ffprobe",
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		path,
	)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}

	seconds, err := strconv.ParseFloat(strings.TrimSpace(out), 64)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: fmt.Errorf("parse duration %q: %w", strings.TrimSpace(out), err)}
	}
	if seconds <= 0 {
		return nil, &DecodeError{Path: path, Err: fmt.Errorf("non-positive duration %v", seconds)}
	}

	return &Track{
		Path:     path,
		Duration: time.Duration(seconds * float64(time.Second)),
	}, nil
}

// Segments yields fixed-duration slices that exactly partition [0, Duration).
// The last segment is shorter when the duration is not a chunk multiple.
func (t *Track) Segments(chunk time.Duration) iter.Seq[Segment] {
	return func(yield func(Segment) bool) {
		if chunk <= 0 {
			chunk = t.Duration
		}
		for i, start := 0, time.Duration(0); start < t.Duration; i, start = i+1, start+chunk {
			dur := chunk
			if remaining := t.Duration - start; remaining < dur {
				dur = remaining
			}
			if !yield(Segment{Index: i, Start: start, Duration: dur}) {
				return
			}
		}
	}
}

// SegmentCount returns how many segments Segments will yield for chunk.
func (t *Track) SegmentCount(chunk time.Duration) int {
	if chunk <= 0 {
		if t.Duration > 0 {
			return 1
		}
		return 0
	}
	return int((t.Duration + chunk - 1) / chunk)
}
