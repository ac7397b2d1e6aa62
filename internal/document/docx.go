package document

import (
	"fmt"
	"os"
	"strings"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"
	"github.com/nguyentantai21042004/smart-summarizer/internal/summarizer"
)

const (
	fontName = "Times New Roman"
	fontSize = 13
)

func (r *implRenderer) Render(summary summarizer.Summary, title string) ([]byte, error) {
	blocks, err := Layout(summary, title)
	if err != nil {
		return nil, err
	}

	doc, err := godocx.NewDocument()
	if err != nil {
		return nil, fmt.Errorf("new document: %w", err)
	}

	for _, b := range blocks {
		p := doc.AddParagraph("")
		switch b.Kind {
		case KindTitle, KindHeading, KindSubHeading:
			addStyledRun(p, joinRuns(b.Runs), headingSize(b.Kind))
		case KindBullet:
			addRichText(p, append([]Run{{Text: "• "}}, b.Runs...))
		default:
			addRichText(p, b.Runs)
		}
	}

	if err := os.MkdirAll(r.tempDir, 0755); err != nil {
		return nil, fmt.Errorf("create temp dir: %w", err)
	}
	f, err := os.CreateTemp(r.tempDir, "render-*.docx")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	path := f.Name()
	f.Close()
	defer os.Remove(path)

	if err := doc.SaveTo(path); err != nil {
		return nil, fmt.Errorf("save document: %w", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}
	return data, nil
}

func headingSize(kind BlockKind) uint64 {
	switch kind {
	case KindTitle:
		return 16
	case KindHeading:
		return 15
	case KindSubHeading:
		return 14
	default:
		return fontSize
	}
}

func addStyledRun(p *docx.Paragraph, text string, size uint64) {
	p.AddText(text).Font(fontName).Size(size).Color("000000").Bold(true)
}

func addRichText(p *docx.Paragraph, runs []Run) {
	for _, run := range runs {
		if run.Text == "" {
			continue
		}
		r := p.AddText(run.Text).Font(fontName).Size(fontSize).Color("000000")
		if run.Bold {
			r.Bold(true)
		}
	}
}

func joinRuns(runs []Run) string {
	var sb strings.Builder
	for _, r := range runs {
		sb.WriteString(r.Text)
	}
	return sb.String()
}
