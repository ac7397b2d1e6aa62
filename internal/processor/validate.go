package processor

import (
	"context"
	"fmt"
	"strings"

	"github.com/nguyentantai21042004/smart-summarizer/internal/sheet"
)

func validate(row sheet.Row) error {
	var missing []string
	if row.Date == "" {
		missing = append(missing, "meeting date")
	}
	if row.Company == "" {
		missing = append(missing, "company name")
	}
	if row.Website == "" {
		missing = append(missing, "website")
	}
	if row.AudioRef == "" {
		missing = append(missing, "audio folder")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrValidation, strings.Join(missing, ", "))
	}
	return nil
}

// resolveAudioFolder looks under the configured parent for a folder named
// after any word of the company name.
func (p *implProcessor) resolveAudioFolder(ctx context.Context, company string) (string, error) {
	parent := p.cfg.Drive.AudioParentFolderID
	keywords := strings.Fields(strings.ToLower(company))
	if parent == "" || len(keywords) == 0 {
		return "", fmt.Errorf("%w: no parent folder or company name to search with", ErrResolution)
	}

	p.logger.Info(ctx, "Searching %s for a folder matching %q", parent, company)
	id, found, err := p.storage.FindFolder(ctx, parent, keywords)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrResolution, err)
	}
	if !found {
		return "", fmt.Errorf("%w: nothing matches %q", ErrResolution, company)
	}
	return id, nil
}
