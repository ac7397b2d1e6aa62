package transcript

import (
	"time"

	"github.com/nguyentantai21042004/smart-summarizer/internal/config"
	"github.com/nguyentantai21042004/smart-summarizer/internal/logger"
	"github.com/nguyentantai21042004/smart-summarizer/internal/speech"
	"golang.org/x/time/rate"
)

type implAssembler struct {
	transcriber   speech.Transcriber
	logger        logger.Logger
	maxConcurrent int
	limiter       *rate.Limiter // nil when unlimited
}

// New creates an Assembler. Chunks run one at a time unless
// transcription.max_concurrent is above 1.
func New(cfg *config.Config, tr speech.Transcriber, log logger.Logger) Assembler {
	a := &implAssembler{
		transcriber:   tr,
		logger:        log,
		maxConcurrent: cfg.Transcription.MaxConcurrent,
	}
	if a.maxConcurrent < 1 {
		a.maxConcurrent = 1
	}
	if n := cfg.Transcription.RateLimitPerMin; n > 0 {
		a.limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(n)), 1)
	}
	return a
}
