package audio

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/nguyentantai21042004/smart-summarizer/internal/config"
)

type fakeExecutor struct {
	out   string
	err   error
	calls [][]string
}

func (f *fakeExecutor) Execute(ctx context.Context, name string, args ...string) (string, error) {
	f.calls = append(f.calls, append([]string{name}, args...))
	return f.out, f.err
}

func (f *fakeExecutor) Available(name string) bool { return true }

func testConfig() *config.Config {
	return &config.Config{
		FFmpeg: config.FFmpegConfig{BinaryPath: "ffmpeg", ProbePath: "ffprobe"},
		Audio:  config.AudioConfig{Bitrate: "128k"},
	}
}

func TestFFmpegDuration(t *testing.T) {
	exec := &fakeExecutor{out: "754.123000\n"}
	enc := NewFFmpegEncoder(testConfig(), exec)

	got, err := enc.Duration(context.Background(), "/tmp/call.m4a")
	if err != nil {
		t.Fatalf("Duration() error = %v", err)
	}
	if want := 754123 * time.Millisecond; got != want {
		t.Errorf("Duration() = %s, want %s", got, want)
	}
	if exec.calls[0][0] != "ffprobe" {
		t.Errorf("ran %q, want ffprobe", exec.calls[0][0])
	}
}

func TestFFmpegExport(t *testing.T) {
	exec := &fakeExecutor{}
	enc := NewFFmpegEncoder(testConfig(), exec)

	err := enc.Export(context.Background(), "in.m4a", 90*time.Second, 30*time.Second, "out.m4a")
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	cmd := strings.Join(exec.calls[0], " ")
	for _, want := range []string{"ffmpeg -y", "-ss 90.000", "-i in.m4a", "-t 30.000", "-c:a aac", "-b:a 128k", "-f mp4 out.m4a"} {
		if !strings.Contains(cmd, want) {
			t.Errorf("command %q missing %q", cmd, want)
		}
	}
}

func TestFFmpegExportError(t *testing.T) {
	exec := &fakeExecutor{err: errors.New("exit status 1")}
	enc := NewFFmpegEncoder(testConfig(), exec)

	if err := enc.Export(context.Background(), "in.m4a", 0, time.Second, "out.m4a"); err == nil {
		t.Error("Export() should fail when ffmpeg fails")
	}
}
