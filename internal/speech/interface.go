package speech

import "context"

// Transcriber converts an audio file into English text.
type Transcriber interface {
	Transcribe(ctx context.Context, path string) (string, error)
}
