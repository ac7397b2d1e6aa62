package processor

import (
	"context"
	"errors"
	"fmt"

	"github.com/nguyentantai21042004/smart-summarizer/internal/sheet"
)

var (
	// ErrValidation means a required row field is empty.
	ErrValidation = errors.New("processor: required field missing")
	// ErrResolution means no audio folder could be found for the company.
	ErrResolution = errors.New("processor: audio folder not resolved")
)

// Processor drives one sheet row through both summary branches.
// A returned error is a row-level fault (the sheet could not be written);
// branch failures are reported in the Outcome instead.
type Processor interface {
	Process(ctx context.Context, row sheet.Row) (Outcome, error)
}

type State int

const (
	StateSkippedDone State = iota
	StateSkippedMissingFields
	StateUpdated
	StateUnchanged
)

func (s State) String() string {
	switch s {
	case StateSkippedDone:
		return "skipped (done)"
	case StateSkippedMissingFields:
		return "skipped (missing fields)"
	case StateUpdated:
		return "updated"
	case StateUnchanged:
		return "unchanged"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

type Outcome struct {
	State       State
	WebsiteLink string
	AudioLink   string
	// Reason explains a skip; it wraps ErrValidation or ErrResolution.
	Reason error
	// Failures holds the branches that did not produce a link.
	Failures []*BranchError
}

// BranchError is a failure confined to one branch of a row.
type BranchError struct {
	Branch string
	Err    error
}

func (e *BranchError) Error() string {
	return fmt.Sprintf("%s branch: %v", e.Branch, e.Err)
}

func (e *BranchError) Unwrap() error {
	return e.Err
}

const (
	BranchWebsite = "website"
	BranchAudio   = "audio"
)
