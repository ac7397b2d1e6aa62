package processor

import (
	"context"
	"fmt"

	"github.com/nguyentantai21042004/smart-summarizer/internal/sheet"
)

// finalize writes links and the Done marker in one batch, or leaves the
// row alone when neither branch produced a link.
func (p *implProcessor) finalize(ctx context.Context, row sheet.Row, out *Outcome) error {
	if out.WebsiteLink == "" && out.AudioLink == "" {
		p.logger.Warn(ctx, "No uploads succeeded, row %d not marked as Done", row.Number)
		out.State = StateUnchanged
		return nil
	}

	var cells []sheet.Cell
	if out.AudioLink != "" {
		cells = append(cells, sheet.Cell{Column: sheet.ColAudioLink, Value: sheet.Hyperlink(out.AudioLink, meetingFilename(row.Company))})
	}
	if out.WebsiteLink != "" {
		cells = append(cells, sheet.Cell{Column: sheet.ColWebsiteLink, Value: sheet.Hyperlink(out.WebsiteLink, websiteFilename(row.Company))})
	}
	cells = append(cells, sheet.Cell{Column: sheet.ColStatus, Value: sheet.StatusDone})

	if err := p.sheet.WriteCells(ctx, row.Number, cells); err != nil {
		return fmt.Errorf("row %d: write results: %w", row.Number, err)
	}

	p.logger.Info(ctx, "Row %d updated in sheet and marked as Done", row.Number)
	out.State = StateUpdated
	return nil
}
