package minutes

import (
	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"
)

const (
	fontName  = "Yu Gothic"
	fontSize  = 11
	titleSize = 16
)

// WriteDocx renders a Document to a .docx file.
func WriteDocx(d *Document, outputPath string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return err
	}

	addStyledRun(doc.AddParagraph(""), d.Title, true, titleSize)

	for _, block := range d.Blocks {
		p := doc.AddParagraph("")
		for _, run := range block.Runs {
			addStyledRun(p, run.Text, run.Bold, fontSize)
		}
	}

	return doc.SaveTo(outputPath)
}

func addStyledRun(p *docx.Paragraph, text string, bold bool, size uint64) {
	run := p.AddText(text).Font(fontName).Size(size).Color("000000")
	if bold {
		run.Bold(true)
	}
}
