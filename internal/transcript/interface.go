package transcript

import (
	"context"

	"github.com/nguyentantai21042004/smart-summarizer/internal/audio"
)

// Assembler turns a recording, whole or chunked, into one transcript.
type Assembler interface {
	TranscribeFile(ctx context.Context, path string) (string, error)
	// TranscribeChunks transcribes chunks and joins the text in chunk order.
	// Each chunk file is deleted once its text is obtained.
	TranscribeChunks(ctx context.Context, chunks []audio.Chunk) (string, error)
}
