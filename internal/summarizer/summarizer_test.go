package summarizer

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/nguyentantai21042004/smart-summarizer/internal/logger"
)

type fakeCompleter struct {
	reply  string
	err    error
	system string
	user   string
}

func (f *fakeCompleter) Complete(ctx context.Context, system, user string) (string, error) {
	f.system, f.user = system, user
	return f.reply, f.err
}

func newTestSummarizer(c *fakeCompleter) Summarizer {
	return New(c, logger.NewWithWriter(io.Discard, "error"))
}

func TestSummarizeWebsite(t *testing.T) {
	c := &fakeCompleter{reply: "```json\n{\"sections\":[{\"heading\":\"Overview\",\"content\":\"- **Acme** builds roofs\"}]}\n```"}

	got, err := newTestSummarizer(c).SummarizeWebsite(context.Background(), "Acme Roofing\nWe build roofs")
	if err != nil {
		t.Fatalf("SummarizeWebsite() error = %v", err)
	}
	if len(got.Sections) != 1 || got.Sections[0].Heading != "Overview" {
		t.Errorf("Sections = %+v", got.Sections)
	}
	if c.user != "Acme Roofing\nWe build roofs" || c.system != websitePrompt {
		t.Error("website text and prompt not passed through")
	}
}

func TestSummarizeMeeting(t *testing.T) {
	c := &fakeCompleter{reply: `{
  "mom": ["Agreed on SEO retainer"],
  "todo_list": ["Send proposal (Ana, Friday)"],
  "action_plan": {
    "decision_made": "Start in March",
    "key_services_to_promote": ["SEO", "PPC"],
    "target_geography": null,
    "budget_and_timeline": "",
    "lead_management_strategy": ["CRM routing"],
    "next_steps_and_ownership": ["Kickoff call - Ben"]
  }
}`}

	got, err := newTestSummarizer(c).SummarizeMeeting(context.Background(), "transcript")
	if err != nil {
		t.Fatalf("SummarizeMeeting() error = %v", err)
	}

	plan := got.ActionPlan
	if len(plan.DecisionMade) != 1 || plan.DecisionMade[0] != "Start in March" {
		t.Errorf("DecisionMade = %v", plan.DecisionMade)
	}
	if len(plan.KeyServicesToPromote) != 2 {
		t.Errorf("KeyServicesToPromote = %v", plan.KeyServicesToPromote)
	}
	if plan.TargetGeography != nil || plan.BudgetAndTimeline != nil {
		t.Errorf("empty fields = %v / %v, want nil", plan.TargetGeography, plan.BudgetAndTimeline)
	}
	if got.MOM[0] != "Agreed on SEO retainer" || got.TodoList[0] != "Send proposal (Ana, Friday)" {
		t.Errorf("summary = %+v", got)
	}
	if len(plan.Fields()) != 6 || plan.Fields()[0].Label != "Decision Made" {
		t.Errorf("Fields() = %+v", plan.Fields())
	}
}

func TestSummarizeErrors(t *testing.T) {
	tests := []struct {
		name       string
		completer  *fakeCompleter
		wantFormat bool
	}{
		{
			name:      "completer fails",
			completer: &fakeCompleter{err: errors.New("timeout")},
		},
		{
			name:       "no json",
			completer:  &fakeCompleter{reply: "I could not summarize this."},
			wantFormat: true,
		},
		{
			name:       "wrong shape",
			completer:  &fakeCompleter{reply: `{"mom": "x", "todo_list": 3}`},
			wantFormat: true,
		},
		{
			name:       "action plan number",
			completer:  &fakeCompleter{reply: `{"action_plan": {"decision_made": 42}}`},
			wantFormat: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newTestSummarizer(tt.completer).SummarizeMeeting(context.Background(), "transcript")
			if err == nil {
				t.Fatal("SummarizeMeeting() should fail")
			}
			if got := errors.Is(err, ErrResponseFormat); got != tt.wantFormat {
				t.Errorf("errors.Is(ErrResponseFormat) = %v, want %v (%v)", got, tt.wantFormat, err)
			}
		})
	}
}
