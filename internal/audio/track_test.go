package audio

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"
)

type fakeExecutor struct {
	output string
	err    error
}

func (f *fakeExecutor) Execute(ctx context.Context, name string, args ...string) (string, error) {
	return f.output, f.err
}

func (f *fakeExecutor) Available(ctx context.Context, name string) bool {
	return f.err == nil
}

func TestProbe(t *testing.T) {
	tests := []struct {
		name         string
		output       string
		execErr      error
		wantErr      bool
		wantDuration time.Duration
	}{
		{"valid duration", "720.000000\n", nil, false, 12 * time.Minute},
		{"fractional duration", "90.5\n", nil, false, 90*time.Second + 500*time.Millisecond},
		{"ffprobe failure", "", errors.New("exit status 1"), true, 0},
		{"garbage output", "N/A\n", nil, true, 0},
		{"zero duration", "0.0\n", nil, true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exec := &fakeExecutor{output: tt.output, err: tt.execErr}
			track, err := Probe(context.Background(), exec, "meeting.mp3")

			if tt.wantErr {
				if err == nil {
					t.Fatal("Probe() expected error, got nil")
				}
				var decodeErr *DecodeError
				if !errors.As(err, &decodeErr) {
					t.Errorf("Probe() error = %T, want *DecodeError", err)
				}
				return
			}

			if err != nil {
				t.Fatalf("Probe() error = %v", err)
			}
			if track.Duration != tt.wantDuration {
				t.Errorf("Duration = %v, want %v", track.Duration, tt.wantDuration)
			}
			if track.Path != "meeting.mp3" {
				t.Errorf("Path = %q", track.Path)
			}
		})
	}
}

func TestSegmentsPartition(t *testing.T) {
	tests := []struct {
		name      string
		duration  time.Duration
		chunk     time.Duration
		wantCount int
		wantLast  time.Duration
	}{
		{"12 min in 5 min chunks", 12 * time.Minute, 5 * time.Minute, 3, 2 * time.Minute},
		{"exact multiple", 10 * time.Minute, 5 * time.Minute, 2, 5 * time.Minute},
		{"shorter than chunk", 3 * time.Minute, 5 * time.Minute, 1, 3 * time.Minute},
		{"one second over", 5*time.Minute + time.Second, 5 * time.Minute, 2, time.Second},
		{"sub-second track", 700 * time.Millisecond, 5 * time.Minute, 1, 700 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			track := &Track{Path: "x.wav", Duration: tt.duration}

			var segments []Segment
			for seg := range track.Segments(tt.chunk) {
				segments = append(segments, seg)
			}

			if len(segments) != tt.wantCount {
				t.Fatalf("got %d segments, want %d", len(segments), tt.wantCount)
			}
			if got := track.SegmentCount(tt.chunk); got != tt.wantCount {
				t.Errorf("SegmentCount() = %d, want %d", got, tt.wantCount)
			}

			// Indices are contiguous and ranges partition [0, duration)
			// with no gaps and no overlaps.
			var cursor time.Duration
			for i, seg := range segments {
				if seg.Index != i {
					t.Errorf("segment %d has index %d", i, seg.Index)
				}
				if seg.Start != cursor {
					t.Errorf("segment %d starts at %v, want %v", i, seg.Start, cursor)
				}
				if seg.Duration <= 0 {
					t.Errorf("segment %d has non-positive duration %v", i, seg.Duration)
				}
				cursor += seg.Duration
			}
			if cursor != tt.duration {
				t.Errorf("segments cover %v, want %v", cursor, tt.duration)
			}

			if last := segments[len(segments)-1]; last.Duration != tt.wantLast {
				t.Errorf("last segment duration = %v, want %v", last.Duration, tt.wantLast)
			}
		})
	}
}

func TestSegmentsEarlyStop(t *testing.T) {
	track := &Track{Path: "x.wav", Duration: time.Hour}

	count := 0
	for range track.Segments(time.Minute) {
		count++
		if count == 2 {
			break
		}
	}

	if count != 2 {
		t.Errorf("iterated %d segments after break, want 2", count)
	}
}

func TestSegmentsZeroChunk(t *testing.T) {
	track := &Track{Path: "x.wav", Duration: 7 * time.Minute}

	var segments []Segment
	for seg := range track.Segments(0) {
		segments = append(segments, seg)
	}

	if len(segments) != 1 {
		t.Fatalf("got %d segments, want 1", len(segments))
	}
	if segments[0].Duration != track.Duration {
		t.Errorf("segment duration = %v, want %v", segments[0].Duration, track.Duration)
	}
}

func ExampleTrack_Segments() {
	track := &Track{Path: "meeting.mp3", Duration: 12 * time.Minute}
	for seg := range track.Segments(5 * time.Minute) {
		fmt.Printf("%d: %v + %v\n", seg.Index, seg.Start, seg.Duration)
	}
	// Output:
	// 0: 0s + 5m0s
	// 1: 5m0s + 5m0s
	// 2: 10m0s + 2m0s
}
