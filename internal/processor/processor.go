package processor

import (
	"context"
	"fmt"
	"time"

	"github.com/nguyentantai21042004/smart-summarizer/internal/sheet"
	"github.com/nguyentantai21042004/smart-summarizer/internal/storage"
)

// Process runs validation, then the website branch, then the audio branch,
// and finally writes whatever links were produced back to the row.
func (p *implProcessor) Process(ctx context.Context, row sheet.Row) (Outcome, error) {
	startTime := time.Now()
	p.logRow(ctx, row)

	if row.Done() {
		p.logger.Info(ctx, "Row %d skipped: already marked as Done", row.Number)
		return Outcome{State: StateSkippedDone}, nil
	}

	if row.AudioRef == "" {
		folderID, err := p.resolveAudioFolder(ctx, row.Company)
		if err != nil {
			p.logger.Warn(ctx, "Row %d skipped: %v", row.Number, err)
			return Outcome{State: StateSkippedMissingFields, Reason: err}, nil
		}

		link := storage.FolderLink(folderID)
		if err := p.sheet.WriteCell(ctx, row.Number, sheet.ColAudioRef, link); err != nil {
			return Outcome{}, fmt.Errorf("row %d: write audio folder link: %w", row.Number, err)
		}
		p.logger.Info(ctx, "Row %d audio folder filled in: %s", row.Number, link)
		row.AudioRef = link
	}

	if err := validate(row); err != nil {
		p.logger.Warn(ctx, "Row %d skipped: %v", row.Number, err)
		return Outcome{State: StateSkippedMissingFields, Reason: err}, nil
	}
	p.logger.Info(ctx, "Row %d passed validation, starting summaries", row.Number)

	var out Outcome

	websiteLink, err := p.websiteBranch(ctx, row)
	if err != nil {
		out.Failures = append(out.Failures, p.branchFailed(ctx, BranchWebsite, err))
	} else {
		out.WebsiteLink = websiteLink
		p.logger.Info(ctx, "Website uploaded: %s", websiteLink)
	}

	audioLink, err := p.audioBranch(ctx, row)
	if err != nil {
		out.Failures = append(out.Failures, p.branchFailed(ctx, BranchAudio, err))
	} else {
		out.AudioLink = audioLink
		p.logger.Info(ctx, "Audio uploaded: %s", audioLink)
	}

	if err := p.finalize(ctx, row, &out); err != nil {
		return Outcome{}, err
	}

	p.logger.Info(ctx, "Row %d %s in %s", row.Number, out.State, time.Since(startTime).Round(time.Millisecond))
	return out, nil
}

func (p *implProcessor) branchFailed(ctx context.Context, branch string, err error) *BranchError {
	be := &BranchError{Branch: branch, Err: err}
	p.logger.Error(ctx, "%v", be)
	return be
}
