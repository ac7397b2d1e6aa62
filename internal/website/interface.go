package website

import (
	"context"
	"errors"
)

// ErrNoText means the page rendered no visible text.
var ErrNoText = errors.New("website: no visible text")

// Extractor fetches a page and returns its visible text, one line per text node.
type Extractor interface {
	Extract(ctx context.Context, url string) (string, error)
}
