package audio

import (
	"time"

	"github.com/nguyentantai21042004/smart-summarizer/internal/config"
	"github.com/nguyentantai21042004/smart-summarizer/internal/logger"
)

type implChunker struct {
	encoder    Encoder
	logger     logger.Logger
	candidates []time.Duration
	fallback   time.Duration
	step       time.Duration
}

// New creates a Chunker using the sizing values from cfg.Audio.
func New(cfg *config.Config, enc Encoder, log logger.Logger) Chunker {
	candidates := make([]time.Duration, 0, len(cfg.Audio.CandidateMinutes))
	for _, m := range cfg.Audio.CandidateMinutes {
		candidates = append(candidates, time.Duration(m)*time.Minute)
	}

	return &implChunker{
		encoder:    enc,
		logger:     log,
		candidates: candidates,
		fallback:   time.Duration(cfg.Audio.FallbackSeconds) * time.Second,
		step:       time.Duration(cfg.Audio.DecrementSeconds) * time.Second,
	}
}
