package speech

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// Transcribe sends the file to the translations endpoint, so speech in any
// language comes back as English text.
func (w *implWhisper) Transcribe(ctx context.Context, path string) (string, error) {
	start := time.Now()
	w.logger.Info(ctx, "Transcribing %s", filepath.Base(path))

	resp, err := w.client.CreateTranslation(ctx, openai.AudioRequest{
		Model:    w.model,
		FilePath: path,
		Format:   openai.AudioResponseFormatText,
	})
	if err != nil {
		return "", fmt.Errorf("whisper translate %s: %w", filepath.Base(path), err)
	}

	text := strings.TrimSpace(resp.Text)
	w.logger.Debug(ctx, "Transcribed %s in %s (%d chars)", filepath.Base(path), time.Since(start), len(text))
	return text, nil
}
