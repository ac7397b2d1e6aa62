package document

import "github.com/nguyentantai21042004/smart-summarizer/internal/summarizer"

// Renderer turns a summary into .docx bytes.
type Renderer interface {
	Render(summary summarizer.Summary, title string) ([]byte, error)
}
