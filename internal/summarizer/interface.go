package summarizer

import "context"

// Summarizer turns a transcript into a SummaryOutcome. It never fails:
// summarization is best-effort on top of the authoritative transcript, so a
// backend outage degrades to a fixed substitute message instead of an error.
type Summarizer interface {
	Summarize(ctx context.Context, transcript string) Outcome
}

// Outcome carries the summary text and which backend produced it. When every
// backend failed, Summary holds the degraded message, Backend the
// FailedBackend sentinel and OK is false.
type Outcome struct {
	Summary string
	Backend string
	OK      bool
}

// Backend is one interchangeable summarization provider in the chain.
type Backend interface {
	Name() string
	Generate(ctx context.Context, prompt string) (string, error)
}

// FailedBackend is the sentinel identifier recorded when the whole chain
// was exhausted.
const FailedBackend = "failed"
