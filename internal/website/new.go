package website

import (
	"net/http"
	"time"

	"github.com/nguyentantai21042004/smart-summarizer/internal/config"
	"github.com/nguyentantai21042004/smart-summarizer/internal/logger"
)

type implExtractor struct {
	client    *http.Client
	userAgent string
	logger    logger.Logger
}

func New(cfg *config.Config, log logger.Logger) Extractor {
	return &implExtractor{
		client:    &http.Client{Timeout: time.Duration(cfg.Website.TimeoutSec) * time.Second},
		userAgent: cfg.Website.UserAgent,
		logger:    log,
	}
}
