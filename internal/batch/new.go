package batch

import (
	"github.com/nguyentantai21042004/smart-summarizer/internal/logger"
	"github.com/nguyentantai21042004/smart-summarizer/internal/processor"
	"github.com/nguyentantai21042004/smart-summarizer/internal/sheet"
)

type implRunner struct {
	sheet     sheet.Sheet
	processor processor.Processor
	logger    logger.Logger
}

func New(sh sheet.Sheet, proc processor.Processor, log logger.Logger) Runner {
	return &implRunner{
		sheet:     sh,
		processor: proc,
		logger:    log,
	}
}
