package processor

import (
	"context"
	"fmt"

	"github.com/nguyentantai21042004/smart-summarizer/internal/sheet"
	"github.com/nguyentantai21042004/smart-summarizer/internal/storage"
)

func websiteTitle(company string) string {
	return company + " Website Summary"
}

func websiteFilename(company string) string {
	return websiteTitle(company) + ".docx"
}

func (p *implProcessor) websiteBranch(ctx context.Context, row sheet.Row) (string, error) {
	p.logger.Info(ctx, "Extracting and summarizing website: %s", row.Website)

	text, err := p.extractor.Extract(ctx, row.Website)
	if err != nil {
		return "", fmt.Errorf("extract: %w", err)
	}

	summary, err := p.summarizer.SummarizeWebsite(ctx, text)
	if err != nil {
		return "", fmt.Errorf("summarize: %w", err)
	}

	data, err := p.renderer.Render(summary, websiteTitle(row.Company))
	if err != nil {
		return "", fmt.Errorf("render: %w", err)
	}

	id, err := p.storage.Upload(ctx, data, p.cfg.Drive.WebsiteFolderID, websiteFilename(row.Company), p.cfg.Drive.ConvertWebsiteDoc)
	if err != nil {
		return "", fmt.Errorf("upload: %w", err)
	}

	return storage.FileLink(id), nil
}
