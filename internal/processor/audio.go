package processor

import (
	"context"
	"fmt"
	"os"

	"github.com/nguyentantai21042004/smart-summarizer/internal/audio"
	"github.com/nguyentantai21042004/smart-summarizer/internal/sheet"
	"github.com/nguyentantai21042004/smart-summarizer/internal/storage"
)

func meetingTitle(company, date string) string {
	return fmt.Sprintf("%s Meeting Notes - %s", company, date)
}

func meetingFilename(company string) string {
	return company + " Meeting Notes.docx"
}

func (p *implProcessor) audioBranch(ctx context.Context, row sheet.Row) (string, error) {
	p.logger.Info(ctx, "Searching audio folder: %s", row.AudioRef)

	folderID, ok := storage.ParseFolderID(row.AudioRef)
	if !ok {
		return "", fmt.Errorf("invalid audio folder reference %q", row.AudioRef)
	}

	fileID, found, err := p.storage.FindFile(ctx, folderID, p.cfg.Audio.Extension)
	if err != nil {
		return "", fmt.Errorf("find audio: %w", err)
	}
	if !found {
		return "", fmt.Errorf("no %s file in folder %s", p.cfg.Audio.Extension, folderID)
	}

	audioPath, err := p.storage.Download(ctx, fileID)
	if err != nil {
		return "", fmt.Errorf("download audio: %w", err)
	}
	defer p.cleanupTempFile(ctx, audioPath)

	text, err := p.transcribe(ctx, audioPath)
	if err != nil {
		return "", err
	}

	summary, err := p.summarizer.SummarizeMeeting(ctx, text)
	if err != nil {
		return "", fmt.Errorf("summarize: %w", err)
	}

	data, err := p.renderer.Render(summary, meetingTitle(row.Company, row.Date))
	if err != nil {
		return "", fmt.Errorf("render: %w", err)
	}

	id, err := p.storage.Upload(ctx, data, p.cfg.Drive.AudioFolderID, meetingFilename(row.Company), false)
	if err != nil {
		return "", fmt.Errorf("upload: %w", err)
	}

	return storage.FileLink(id), nil
}

// transcribe sends small files whole and splits anything over the size ceiling.
func (p *implProcessor) transcribe(ctx context.Context, audioPath string) (string, error) {
	info, err := os.Stat(audioPath)
	if err != nil {
		return "", fmt.Errorf("stat audio: %w", err)
	}

	limit := p.cfg.Audio.MaxBytes
	if info.Size() <= limit {
		p.logger.Info(ctx, "Transcribing single file (%.2f MB)", mb(info.Size()))
		text, err := p.assembler.TranscribeFile(ctx, audioPath)
		if err != nil {
			return "", fmt.Errorf("transcribe: %w", err)
		}
		return text, nil
	}

	p.logger.Info(ctx, "Audio is %.2f MB, splitting for transcription", mb(info.Size()))
	chunks, err := p.chunker.Plan(ctx, audioPath, limit)
	if err != nil {
		return "", fmt.Errorf("split audio: %w", err)
	}
	defer p.cleanupChunks(ctx, chunks)

	text, err := p.assembler.TranscribeChunks(ctx, chunks)
	if err != nil {
		return "", fmt.Errorf("transcribe: %w", err)
	}
	return text, nil
}

func (p *implProcessor) cleanupChunks(ctx context.Context, chunks []audio.Chunk) {
	for _, ch := range chunks {
		if _, err := os.Stat(ch.Path); err == nil {
			p.cleanupTempFile(ctx, ch.Path)
		}
	}
}

func mb(n int64) float64 {
	return float64(n) / 1024 / 1024
}
