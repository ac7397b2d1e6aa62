package sheet

import (
	"context"
	"fmt"

	"github.com/nguyentantai21042004/smart-summarizer/internal/config"
	"github.com/nguyentantai21042004/smart-summarizer/internal/logger"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

type implSheet struct {
	svc    *sheets.Service
	id     string
	tab    string // resolved on first use when empty
	logger logger.Logger
}

// New connects to the spreadsheet with the service account file.
func New(ctx context.Context, cfg *config.Config, log logger.Logger) (Sheet, error) {
	svc, err := sheets.NewService(ctx,
		option.WithCredentialsFile(cfg.Google.ServiceAccountPath),
		option.WithScopes(sheets.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}
	return NewWithService(svc, cfg.Sheet.ID, cfg.Sheet.Tab, log), nil
}

// NewWithService wraps an already configured Sheets client. An empty tab
// means the first tab of the spreadsheet.
func NewWithService(svc *sheets.Service, spreadsheetID, tab string, log logger.Logger) Sheet {
	return &implSheet{
		svc:    svc,
		id:     spreadsheetID,
		tab:    tab,
		logger: log,
	}
}
