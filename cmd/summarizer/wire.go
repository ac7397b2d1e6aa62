package main

import (
	"context"
	"fmt"

	"github.com/nguyentantai21042004/smart-summarizer/internal/audio"
	"github.com/nguyentantai21042004/smart-summarizer/internal/batch"
	"github.com/nguyentantai21042004/smart-summarizer/internal/config"
	"github.com/nguyentantai21042004/smart-summarizer/internal/document"
	"github.com/nguyentantai21042004/smart-summarizer/internal/llm"
	"github.com/nguyentantai21042004/smart-summarizer/internal/logger"
	"github.com/nguyentantai21042004/smart-summarizer/internal/processor"
	"github.com/nguyentantai21042004/smart-summarizer/internal/sheet"
	"github.com/nguyentantai21042004/smart-summarizer/internal/speech"
	"github.com/nguyentantai21042004/smart-summarizer/internal/storage"
	"github.com/nguyentantai21042004/smart-summarizer/internal/summarizer"
	"github.com/nguyentantai21042004/smart-summarizer/internal/transcript"
	"github.com/nguyentantai21042004/smart-summarizer/internal/website"
	"github.com/nguyentantai21042004/smart-summarizer/pkg/executor"
)

func buildRunner(ctx context.Context, cfg *config.Config, log logger.Logger) (batch.Runner, error) {
	sh, err := sheet.New(ctx, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("connect sheet: %w", err)
	}
	store, err := storage.New(ctx, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("connect drive: %w", err)
	}
	completer, err := llm.New(cfg, log)
	if err != nil {
		return nil, fmt.Errorf("create llm client: %w", err)
	}

	exec := executor.New()
	encoder := audio.NewFFmpegEncoder(cfg, exec)

	proc := processor.New(cfg, processor.Deps{
		Sheet:      sh,
		Storage:    store,
		Extractor:  website.New(cfg, log),
		Summarizer: summarizer.New(completer, log),
		Renderer:   document.New(cfg.Paths.Temp),
		Chunker:    audio.New(cfg, encoder, log),
		Assembler:  transcript.New(cfg, speech.New(cfg, log), log),
	}, log)

	return batch.New(sh, proc, log), nil
}
