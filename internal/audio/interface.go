package audio

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrDecode means the source could not be probed or sliced.
	ErrDecode = errors.New("audio: cannot decode source")
	// ErrSizing means no chunk length kept a slice under the byte ceiling.
	ErrSizing = errors.New("audio: no chunk length fits size ceiling")
)

// Chunk is one exported slice of a source recording.
type Chunk struct {
	Index  int
	Start  time.Duration
	Length time.Duration
	Path   string
}

// Encoder probes and slices audio files.
type Encoder interface {
	Duration(ctx context.Context, path string) (time.Duration, error)
	Export(ctx context.Context, src string, start, length time.Duration, dst string) error
}

// Chunker splits a recording into slices that each stay under maxBytes.
type Chunker interface {
	Plan(ctx context.Context, path string, maxBytes int64) ([]Chunk, error)
}
