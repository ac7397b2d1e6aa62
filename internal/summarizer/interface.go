package summarizer

import "context"

// Summarizer asks the chat model for structured summaries.
type Summarizer interface {
	SummarizeWebsite(ctx context.Context, text string) (*WebsiteSummary, error)
	SummarizeMeeting(ctx context.Context, transcript string) (*MeetingSummary, error)
}
