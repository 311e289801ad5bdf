package notifier

import "fmt"

// Hard cap for the summary excerpt carried in a notification.
const excerptLimit = 200

// Message renders the human-readable notification text.
func (p Payload) Message() string {
	return fmt.Sprintf(
		"*Transcription and minutes generation completed*\n"+
			"File: %s\n"+
			"Processing time: %.1f min\n"+
			"Models: %s\n"+
			"\n"+
			"*Minutes excerpt:*\n"+
			"```\n%s\n```",
		p.FileName,
		p.Elapsed.Minutes(),
		p.Models,
		truncate(p.Summary, excerptLimit),
	)
}

// truncate caps s at limit runes, marking the cut with an ellipsis.
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}
