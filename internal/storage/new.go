package storage

import (
	"context"
	"fmt"

	"github.com/nguyentantai21042004/smart-summarizer/internal/config"
	"github.com/nguyentantai21042004/smart-summarizer/internal/logger"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

type implDrive struct {
	svc     *drive.Service // uploads
	reader  *drive.Service // listing and downloads
	tempDir string
	logger  logger.Logger
}

// New connects to Google Drive with the service account file. When an
// API key is configured, listing and downloads go through the key and
// only uploads use the service account.
func New(ctx context.Context, cfg *config.Config, log logger.Logger) (Storage, error) {
	if cfg.Google.ServiceAccountPath == "" {
		return nil, fmt.Errorf("drive: no service account configured")
	}

	svc, err := drive.NewService(ctx,
		option.WithCredentialsFile(cfg.Google.ServiceAccountPath),
		option.WithScopes(drive.DriveScope),
	)
	if err != nil {
		return nil, fmt.Errorf("create drive service: %w", err)
	}
	if cfg.Drive.APIKey == "" {
		return NewWithService(svc, cfg.Paths.Temp, log), nil
	}

	reader, err := drive.NewService(ctx, option.WithAPIKey(cfg.Drive.APIKey))
	if err != nil {
		return nil, fmt.Errorf("create drive reader: %w", err)
	}
	return NewWithServices(svc, reader, cfg.Paths.Temp, log), nil
}

// NewWithService wraps an already configured Drive client used for all calls.
func NewWithService(svc *drive.Service, tempDir string, log logger.Logger) Storage {
	return NewWithServices(svc, svc, tempDir, log)
}

// NewWithServices splits uploads and reads across two Drive clients.
func NewWithServices(writer, reader *drive.Service, tempDir string, log logger.Logger) Storage {
	return &implDrive{
		svc:     writer,
		reader:  reader,
		tempDir: tempDir,
		logger:  log,
	}
}
