package pipeline

import (
	"context"
	"time"
)

// Pipeline runs the full per-file sequence and the batch around it. A failure
// in one file never halts processing of the remaining files.
type Pipeline interface {
	Process(ctx context.Context, path string) error
	ProcessAll(ctx context.Context, files []string) Summary
}

// Summary is the batch outcome reported at the end of a run.
type Summary struct {
	Succeeded int
	Total     int
	Elapsed   time.Duration
	Outputs   []string
}
