package audio

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/nguyentantai21042004/smart-summarizer/internal/config"
	"github.com/nguyentantai21042004/smart-summarizer/pkg/executor"
)

type ffmpegEncoder struct {
	ffmpeg  string
	ffprobe string
	bitrate string
	exec    executor.Executor
}

// NewFFmpegEncoder returns an Encoder backed by the ffmpeg and ffprobe binaries.
func NewFFmpegEncoder(cfg *config.Config, exec executor.Executor) Encoder {
	return &ffmpegEncoder{
		ffmpeg:  cfg.FFmpeg.BinaryPath,
		ffprobe: cfg.FFmpeg.ProbePath,
		bitrate: cfg.Audio.Bitrate,
		exec:    exec,
	}
}

func (e *ffmpegEncoder) Duration(ctx context.Context, path string) (time.Duration, error) {
	out, err := e.exec.Execute(ctx, e.ffprobe,
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		path,
	)
	if err != nil {
		return 0, fmt.Errorf("ffprobe duration: %w", err)
	}
	return parseSeconds(out)
}

// Export writes [start, start+length) of src to dst as AAC in an MP4 container.
func (e *ffmpegEncoder) Export(ctx context.Context, src string, start, length time.Duration, dst string) error {
	args := []string{
		"-y",
		"-v", "error",
		"-ss", formatSeconds(start),
		"-i", src,
		"-t", formatSeconds(length),
		"-vn",
		"-c:a", "aac",
		"-b:a", e.bitrate,
		"-f", "mp4",
		dst,
	}
	if _, err := e.exec.Execute(ctx, e.ffmpeg, args...); err != nil {
		return fmt.Errorf("ffmpeg export: %w", err)
	}
	return nil
}

func parseSeconds(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "N/A" {
		return 0, fmt.Errorf("no duration reported")
	}
	secs, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("parse duration %q: %w", s, err)
	}
	return time.Duration(secs * float64(time.Second)), nil
}

func formatSeconds(d time.Duration) string {
	return strconv.FormatFloat(d.Seconds(), 'f', 3, 64)
}
