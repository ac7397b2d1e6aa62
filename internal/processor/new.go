package processor

import (
	"github.com/nguyentantai21042004/smart-summarizer/internal/audio"
	"github.com/nguyentantai21042004/smart-summarizer/internal/config"
	"github.com/nguyentantai21042004/smart-summarizer/internal/document"
	"github.com/nguyentantai21042004/smart-summarizer/internal/logger"
	"github.com/nguyentantai21042004/smart-summarizer/internal/sheet"
	"github.com/nguyentantai21042004/smart-summarizer/internal/storage"
	"github.com/nguyentantai21042004/smart-summarizer/internal/summarizer"
	"github.com/nguyentantai21042004/smart-summarizer/internal/transcript"
	"github.com/nguyentantai21042004/smart-summarizer/internal/website"
)

// Deps are the collaborators a Processor drives.
type Deps struct {
	Sheet      sheet.Sheet
	Storage    storage.Storage
	Extractor  website.Extractor
	Summarizer summarizer.Summarizer
	Renderer   document.Renderer
	Chunker    audio.Chunker
	Assembler  transcript.Assembler
}

type implProcessor struct {
	cfg        *config.Config
	sheet      sheet.Sheet
	storage    storage.Storage
	extractor  website.Extractor
	summarizer summarizer.Summarizer
	renderer   document.Renderer
	chunker    audio.Chunker
	assembler  transcript.Assembler
	logger     logger.Logger
}

// New creates a new Processor instance
func New(cfg *config.Config, deps Deps, log logger.Logger) Processor {
	return &implProcessor{
		cfg:        cfg,
		sheet:      deps.Sheet,
		storage:    deps.Storage,
		extractor:  deps.Extractor,
		summarizer: deps.Summarizer,
		renderer:   deps.Renderer,
		chunker:    deps.Chunker,
		assembler:  deps.Assembler,
		logger:     log,
	}
}
