package minutes

import (
	"fmt"
	"strings"
	"time"

	"meeting-transcriber/internal/summarizer"
)

const docTitle = "Meeting Minutes"

// Fullwidth bracket pair the summary prompt uses for section headers.
const (
	headerOpen  = "【"
	headerClose = "】"
)

// Run is a span of text within a paragraph, optionally emphasized.
type Run struct {
	Text string
	Bold bool
}

// Block is one paragraph. No runs means a blank paragraph.
type Block struct {
	Runs []Run
}

// Document is the structured minutes output, built once and never mutated
// after it has been written.
type Document struct {
	Title  string
	Blocks []Block
}

// Meta carries file and run metadata rendered at the top of the document.
type Meta struct {
	SourceFile   string
	CreatedAt    time.Time
	WhisperModel string
}

// Build renders a summary outcome into a Document: metadata paragraphs, a
// blank separator, then one block per summary line.
func Build(outcome summarizer.Outcome, meta Meta) *Document {
	blocks := []Block{
		{Runs: []Run{{Text: "Created: " + meta.CreatedAt.Format("2006-01-02 15:04")}}},
		{Runs: []Run{{Text: "Source file: " + meta.SourceFile}}},
		{Runs: []Run{{Text: fmt.Sprintf("Models: Whisper(%s), Summary(%s)", meta.WhisperModel, outcome.Backend)}}},
		{},
	}

	for _, line := range strings.Split(outcome.Summary, "\n") {
		blocks = append(blocks, lineBlock(line))
	}

	return &Document{Title: docTitle, Blocks: blocks}
}

// lineBlock applies the header heuristic: a bracket pair at the very start of
// the line becomes a bold run, the remainder a plain run. Brackets anywhere
// else stay plain text; this is presentation, not parsing.
func lineBlock(line string) Block {
	if strings.TrimSpace(line) == "" {
		return Block{}
	}

	if strings.HasPrefix(line, headerOpen) {
		if j := strings.Index(line, headerClose); j >= 0 {
			end := j + len(headerClose)
			runs := []Run{{Text: line[:end], Bold: true}}
			if end < len(line) {
				runs = append(runs, Run{Text: line[end:]})
			}
			return Block{Runs: runs}
		}
	}

	return Block{Runs: []Run{{Text: line}}}
}
