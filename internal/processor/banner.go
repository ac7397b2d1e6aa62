package processor

import (
	"context"

	"github.com/mattn/go-runewidth"
	"github.com/nguyentantai21042004/smart-summarizer/internal/sheet"
)

const missing = "[MISSING]"

// logRow prints the row fields with labels padded to equal display width.
func (p *implProcessor) logRow(ctx context.Context, row sheet.Row) {
	status := row.Status
	if status == "" {
		status = "[empty]"
	}
	p.logger.Info(ctx, "Row %d | Status: %s", row.Number, status)

	fields := []struct{ label, value string }{
		{"🗓 Date", row.Date},
		{"🏢 Company Name", row.Company},
		{"🌐 Website Link", row.Website},
		{"🎧 Audio Folder", row.AudioRef},
	}

	width := 0
	for _, f := range fields {
		width = max(width, runewidth.StringWidth(f.label))
	}
	for _, f := range fields {
		value := f.value
		if value == "" {
			value = missing
		}
		p.logger.Info(ctx, "   %s : %s", runewidth.FillRight(f.label, width), value)
	}
}
