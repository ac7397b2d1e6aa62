package transcript

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/nguyentantai21042004/smart-summarizer/internal/audio"
	"golang.org/x/sync/errgroup"
)

func (a *implAssembler) TranscribeFile(ctx context.Context, path string) (string, error) {
	if err := a.wait(ctx); err != nil {
		return "", err
	}
	text, err := a.transcriber.Transcribe(ctx, path)
	if err != nil {
		return "", fmt.Errorf("transcribe file: %w", err)
	}
	return text, nil
}

func (a *implAssembler) TranscribeChunks(ctx context.Context, chunks []audio.Chunk) (string, error) {
	if len(chunks) == 0 {
		return "", fmt.Errorf("transcribe chunks: no chunks")
	}

	var (
		parts []string
		err   error
	)
	if a.maxConcurrent > 1 && len(chunks) > 1 {
		parts, err = a.parallel(ctx, chunks)
	} else {
		parts, err = a.sequential(ctx, chunks)
	}
	if err != nil {
		return "", err
	}

	return strings.Join(parts, "\n"), nil
}

// sequential stops at the first failed chunk; later chunk files are left
// for the caller to remove.
func (a *implAssembler) sequential(ctx context.Context, chunks []audio.Chunk) ([]string, error) {
	parts := make([]string, 0, len(chunks))
	for _, ch := range chunks {
		text, err := a.one(ctx, ch, len(chunks))
		if err != nil {
			return nil, err
		}
		parts = append(parts, text)
	}
	return parts, nil
}

func (a *implAssembler) parallel(ctx context.Context, chunks []audio.Chunk) ([]string, error) {
	parts := make([]string, len(chunks))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.maxConcurrent)
	for i, ch := range chunks {
		g.Go(func() error {
			text, err := a.one(gctx, ch, len(chunks))
			if err != nil {
				return err
			}
			parts[i] = text
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return parts, nil
}

func (a *implAssembler) one(ctx context.Context, ch audio.Chunk, total int) (string, error) {
	if err := a.wait(ctx); err != nil {
		return "", err
	}

	a.logger.Info(ctx, "Transcribing chunk %d/%d", ch.Index+1, total)
	text, err := a.transcriber.Transcribe(ctx, ch.Path)
	if err != nil {
		return "", fmt.Errorf("transcribe chunk %d: %w", ch.Index, err)
	}

	if err := os.Remove(ch.Path); err != nil && !os.IsNotExist(err) {
		a.logger.Warn(ctx, "Failed to remove chunk %s: %v", ch.Path, err)
	}
	return text, nil
}

func (a *implAssembler) wait(ctx context.Context) error {
	if a.limiter == nil {
		return nil
	}
	if err := a.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}
	return nil
}
