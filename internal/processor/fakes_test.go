package processor

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nguyentantai21042004/smart-summarizer/internal/audio"
	"github.com/nguyentantai21042004/smart-summarizer/internal/config"
	"github.com/nguyentantai21042004/smart-summarizer/internal/logger"
	"github.com/nguyentantai21042004/smart-summarizer/internal/sheet"
	"github.com/nguyentantai21042004/smart-summarizer/internal/summarizer"
)

type cellWrite struct {
	row, col int
	value    string
}

type fakeSheet struct {
	writes     []cellWrite
	batches    [][]sheet.Cell
	writeErr   error
	batchErr   error
	batchCalls int
}

func (f *fakeSheet) ReadAllRows(ctx context.Context) ([][]string, error) { return nil, nil }

func (f *fakeSheet) WriteCell(ctx context.Context, row, col int, value string) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	f.writes = append(f.writes, cellWrite{row, col, value})
	return nil
}

func (f *fakeSheet) WriteCells(ctx context.Context, row int, cells []sheet.Cell) error {
	f.batchCalls++
	if f.batchErr != nil {
		return f.batchErr
	}
	f.batches = append(f.batches, cells)
	return nil
}

type upload struct {
	folder, filename string
	convert          bool
}

type fakeStorage struct {
	dir string

	folderID    string
	folderFound bool
	folderArgs  []string

	fileFound bool
	fileArgs  []string

	audioSize  int64
	downloaded string

	uploads   []upload
	uploadErr map[string]error // keyed by filename substring

	calls int
}

func (f *fakeStorage) Upload(ctx context.Context, data []byte, folderID, filename string, convert bool) (string, error) {
	f.calls++
	for key, err := range f.uploadErr {
		if strings.Contains(filename, key) {
			return "", err
		}
	}
	f.uploads = append(f.uploads, upload{folderID, filename, convert})
	if strings.Contains(filename, "Website") {
		return "WEB1", nil
	}
	return "AUD1", nil
}

func (f *fakeStorage) FindFile(ctx context.Context, folderID, ext string) (string, bool, error) {
	f.calls++
	f.fileArgs = []string{folderID, ext}
	return "FILE1", f.fileFound, nil
}

func (f *fakeStorage) FindFolder(ctx context.Context, parentID string, keywords []string) (string, bool, error) {
	f.calls++
	f.folderArgs = append([]string{parentID}, keywords...)
	return f.folderID, f.folderFound, nil
}

// Download writes a sparse file of audioSize bytes.
func (f *fakeStorage) Download(ctx context.Context, fileID string) (string, error) {
	f.calls++
	path := filepath.Join(f.dir, fileID+".m4a")
	file, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer file.Close()
	if err := file.Truncate(f.audioSize); err != nil {
		return "", err
	}
	f.downloaded = path
	return path, nil
}

type fakeExtractor struct {
	err   error
	calls int
}

func (f *fakeExtractor) Extract(ctx context.Context, url string) (string, error) {
	f.calls++
	return "Acme builds roofs", f.err
}

type fakeSummarizer struct {
	websiteErr   error
	meetingErr   error
	websiteCalls int
	meetingCalls int
	transcript   string
}

func (f *fakeSummarizer) SummarizeWebsite(ctx context.Context, text string) (*summarizer.WebsiteSummary, error) {
	f.websiteCalls++
	if f.websiteErr != nil {
		return nil, f.websiteErr
	}
	return &summarizer.WebsiteSummary{}, nil
}

func (f *fakeSummarizer) SummarizeMeeting(ctx context.Context, transcript string) (*summarizer.MeetingSummary, error) {
	f.meetingCalls++
	f.transcript = transcript
	if f.meetingErr != nil {
		return nil, f.meetingErr
	}
	return &summarizer.MeetingSummary{}, nil
}

type fakeRenderer struct {
	titles []string
}

func (f *fakeRenderer) Render(s summarizer.Summary, title string) ([]byte, error) {
	f.titles = append(f.titles, title)
	return []byte("PK docx"), nil
}

type fakeChunker struct {
	calls  int
	chunks []audio.Chunk
}

func (f *fakeChunker) Plan(ctx context.Context, path string, maxBytes int64) ([]audio.Chunk, error) {
	f.calls++
	base := strings.TrimSuffix(path, filepath.Ext(path))
	for i := 0; i < 2; i++ {
		p := base + "_part" + string(rune('0'+i)) + ".m4a"
		if err := os.WriteFile(p, []byte("chunk"), 0644); err != nil {
			return nil, err
		}
		f.chunks = append(f.chunks, audio.Chunk{Index: i, Path: p})
	}
	return f.chunks, nil
}

type fakeAssembler struct {
	err        error
	fileCalls  int
	chunkCalls int
}

func (f *fakeAssembler) TranscribeFile(ctx context.Context, path string) (string, error) {
	f.fileCalls++
	return "whole transcript", f.err
}

func (f *fakeAssembler) TranscribeChunks(ctx context.Context, chunks []audio.Chunk) (string, error) {
	f.chunkCalls++
	return "part one\npart two", f.err
}

type harness struct {
	sheet      *fakeSheet
	storage    *fakeStorage
	extractor  *fakeExtractor
	summarizer *fakeSummarizer
	renderer   *fakeRenderer
	chunker    *fakeChunker
	assembler  *fakeAssembler
	proc       Processor
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{
		sheet:      &fakeSheet{},
		storage:    &fakeStorage{dir: t.TempDir(), fileFound: true, audioSize: 10 << 20},
		extractor:  &fakeExtractor{},
		summarizer: &fakeSummarizer{},
		renderer:   &fakeRenderer{},
		chunker:    &fakeChunker{},
		assembler:  &fakeAssembler{},
	}

	cfg := &config.Config{
		Drive: config.DriveConfig{
			AudioFolderID:       "AUDIO_DEST",
			AudioParentFolderID: "PARENT",
			WebsiteFolderID:     "WEB_DEST",
			ConvertWebsiteDoc:   true,
		},
		Audio: config.AudioConfig{Extension: ".m4a", MaxBytes: 25 * 1024 * 1024},
	}
	h.proc = New(cfg, Deps{
		Sheet:      h.sheet,
		Storage:    h.storage,
		Extractor:  h.extractor,
		Summarizer: h.summarizer,
		Renderer:   h.renderer,
		Chunker:    h.chunker,
		Assembler:  h.assembler,
	}, logger.NewWithWriter(io.Discard, "debug"))
	return h
}

func (h *harness) totalCalls() int {
	return h.storage.calls + h.extractor.calls + h.summarizer.websiteCalls + h.summarizer.meetingCalls +
		len(h.renderer.titles) + h.chunker.calls + h.assembler.fileCalls + h.assembler.chunkCalls +
		len(h.sheet.writes) + h.sheet.batchCalls
}

func validRow() sheet.Row {
	return sheet.Row{
		Number:   2,
		Date:     "2024-05-01",
		Company:  "Acme",
		Website:  "https://acme.test",
		AudioRef: "https://drive/folders/ABC123",
	}
}

var errBoom = errors.New("boom")
