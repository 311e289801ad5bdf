package summarizer

import (
	"context"
	"fmt"
	"strings"
)

const summaryPrompt = `Summarize the following meeting transcript concisely under these section headers, each header placed at the start of its own line:
【Agenda】
【Key Points】
【Decisions】
【Action Items】

Meeting transcript:
---
%s
---`

// degradedSummary replaces the summary when every backend failed, so the
// transcript is never withheld because of a summarization outage.
const degradedSummary = "Summarization failed. Please use the transcript only."

// Summarize renders the fixed prompt and walks the backend chain in order.
// The first backend that answers wins; exhausting the chain yields the
// degraded outcome rather than an error.
func (s *implSummarizer) Summarize(ctx context.Context, transcript string) Outcome {
	prompt := fmt.Sprintf(summaryPrompt, transcript)

	var lastErr error
	for _, backend := range s.backends {
		summary, err := backend.Generate(ctx, prompt)
		if err != nil {
			s.logger.Warn(ctx, "Summarization backend %s failed: %v", backend.Name(), err)
			lastErr = err
			continue
		}

		s.logger.Info(ctx, "Summary generated by %s", backend.Name())
		return Outcome{Summary: strings.TrimSpace(summary), Backend: backend.Name(), OK: true}
	}

	if lastErr != nil {
		s.logger.Error(ctx, "All summarization backends failed, last error: %v", lastErr)
	} else {
		s.logger.Error(ctx, "No summarization backend is configured")
	}

	return Outcome{Summary: degradedSummary, Backend: FailedBackend}
}
