package minutes

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"meeting-transcriber/internal/summarizer"
)

func TestLineBlock(t *testing.T) {
	tests := []struct {
		name string
		line string
		want Block
	}{
		{
			name: "header at line start",
			line: "【Agenda】Discuss budget",
			want: Block{Runs: []Run{
				{Text: "【Agenda】", Bold: true},
				{Text: "Discuss budget"},
			}},
		},
		{
			name: "header only",
			line: "【Decisions】",
			want: Block{Runs: []Run{
				{Text: "【Decisions】", Bold: true},
			}},
		},
		{
			name: "bracket not at start stays plain",
			line: "Agenda 【note】",
			want: Block{Runs: []Run{
				{Text: "Agenda 【note】"},
			}},
		},
		{
			name: "unclosed bracket stays plain",
			line: "【Agenda without close",
			want: Block{Runs: []Run{
				{Text: "【Agenda without close"},
			}},
		},
		{
			name: "empty line",
			line: "",
			want: Block{},
		},
		{
			name: "whitespace-only line",
			line: "   \t",
			want: Block{},
		},
		{
			name: "plain line",
			line: "The team agreed to ship on Friday.",
			want: Block{Runs: []Run{
				{Text: "The team agreed to ship on Friday."},
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := lineBlock(tt.line)

			if len(got.Runs) != len(tt.want.Runs) {
				t.Fatalf("got %d runs, want %d: %+v", len(got.Runs), len(tt.want.Runs), got.Runs)
			}
			for i := range got.Runs {
				if got.Runs[i] != tt.want.Runs[i] {
					t.Errorf("run %d = %+v, want %+v", i, got.Runs[i], tt.want.Runs[i])
				}
			}
		})
	}
}

func TestBuild(t *testing.T) {
	outcome := summarizer.Outcome{
		Summary: "【Agenda】Discuss budget\n\nNext steps follow.",
		Backend: "gpt-4o",
		OK:      true,
	}
	meta := Meta{
		SourceFile:   "standup.mp3",
		CreatedAt:    time.Date(2024, 4, 1, 9, 30, 0, 0, time.UTC),
		WhisperModel: "small",
	}

	doc := Build(outcome, meta)

	if doc.Title != docTitle {
		t.Errorf("Title = %q", doc.Title)
	}

	// 3 metadata blocks + 1 separator + 3 summary lines.
	if len(doc.Blocks) != 7 {
		t.Fatalf("got %d blocks, want 7", len(doc.Blocks))
	}

	if got := doc.Blocks[0].Runs[0].Text; got != "Created: 2024-04-01 09:30" {
		t.Errorf("created block = %q", got)
	}
	if got := doc.Blocks[1].Runs[0].Text; got != "Source file: standup.mp3" {
		t.Errorf("source block = %q", got)
	}
	if got := doc.Blocks[2].Runs[0].Text; got != "Models: Whisper(small), Summary(gpt-4o)" {
		t.Errorf("models block = %q", got)
	}
	if len(doc.Blocks[3].Runs) != 0 {
		t.Error("separator block should be blank")
	}

	header := doc.Blocks[4]
	if len(header.Runs) != 2 || !header.Runs[0].Bold || header.Runs[0].Text != "【Agenda】" {
		t.Errorf("header block = %+v", header.Runs)
	}
	if len(doc.Blocks[5].Runs) != 0 {
		t.Error("empty summary line should be a blank block")
	}
	if doc.Blocks[6].Runs[0].Text != "Next steps follow." {
		t.Errorf("trailing block = %+v", doc.Blocks[6].Runs)
	}
}

func TestWriteDocx(t *testing.T) {
	doc := Build(summarizer.Outcome{
		Summary: "【Key Points】All metrics green.",
		Backend: "gemini-2.5-flash",
		OK:      true,
	}, Meta{
		SourceFile:   "weekly.wav",
		CreatedAt:    time.Now(),
		WhisperModel: "small",
	})

	path := filepath.Join(t.TempDir(), "weekly_minutes.docx")
	if err := WriteDocx(doc, path); err != nil {
		t.Fatalf("WriteDocx() error = %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("output missing: %v", err)
	}
	if info.Size() == 0 {
		t.Error("output file is empty")
	}
}
