package summarizer

import (
	"github.com/nguyentantai21042004/smart-summarizer/internal/llm"
	"github.com/nguyentantai21042004/smart-summarizer/internal/logger"
)

type implSummarizer struct {
	completer llm.Completer
	logger    logger.Logger
}

// New creates a Summarizer on top of the given chat model.
func New(completer llm.Completer, log logger.Logger) Summarizer {
	return &implSummarizer{
		completer: completer,
		logger:    log,
	}
}
