package summarizer

import (
	"context"
	"fmt"
	"time"
)

const websitePrompt = `You are a business analyst preparing a briefing on a company ahead of a sales call. You will be given the visible text of the company's website.

Summarize what the company does in JSON using the schema below.

Guidelines:
- Use 4 to 8 sections, for example Overview, Services, Target Customers, Locations, Differentiators, Contact.
- Inside content, put each point on its own line starting with "- ".
- Wrap key names, numbers and services in **double asterisks**.
- Only use facts present in the text. Skip sections with nothing to say.

Return **only valid JSON** with no extra text, markdown, or explanation.

Schema:
{
  "sections": [
    {"heading": "<Section title>", "content": "- <point>\n- <point>"}
  ]
}
`

const meetingPrompt = `You are an expert business analyst. You will be given a raw transcript from a client-agency meeting.

Your task is to extract a comprehensive and structured summary in JSON format using the schema below.

Please follow these guidelines strictly:
- Be concise but informative. Ensure each bullet is standalone and easy to understand.
- Use consistent formatting (no sentence fragments; start with verbs where applicable).
- For To-Do items, include responsible parties and estimated deadlines if mentioned or inferable.
- Include actionable insights and KPIs if discussed.
- Maintain professional tone. Avoid repetition.

Return **only valid JSON** with no extra text, markdown, or explanation.

Schema:
{
  "mom": ["<Key discussion points and agreements>", "..."],
  "todo_list": ["<Actionable task with responsible person and timeframe, if known>", "..."],
  "action_plan": {
    "decision_made": ["<Key decisions taken>", "..."],
    "key_services_to_promote": ["<Service list>", "..."],
    "target_geography": ["<Location list>", "..."],
    "budget_and_timeline": ["<Budget, timeline details>", "..."],
    "lead_management_strategy": ["<Lead handling strategy>", "..."],
    "next_steps_and_ownership": ["<Task and responsible person>", "..."]
  }
}
`

func (s *implSummarizer) SummarizeWebsite(ctx context.Context, text string) (*WebsiteSummary, error) {
	var out WebsiteSummary
	if err := s.summarize(ctx, "website", websitePrompt, text, &out); err != nil {
		return nil, err
	}
	s.logger.Info(ctx, "Website summary has %d sections", len(out.Sections))
	return &out, nil
}

func (s *implSummarizer) SummarizeMeeting(ctx context.Context, transcript string) (*MeetingSummary, error) {
	var out MeetingSummary
	if err := s.summarize(ctx, "meeting", meetingPrompt, transcript, &out); err != nil {
		return nil, err
	}
	s.logger.Info(ctx, "Meeting summary: %d minutes, %d to-dos", len(out.MOM), len(out.TodoList))
	return &out, nil
}

func (s *implSummarizer) summarize(ctx context.Context, kind, system, input string, out any) error {
	start := time.Now()

	reply, err := s.completer.Complete(ctx, system, input)
	if err != nil {
		return fmt.Errorf("summarize %s: %w", kind, err)
	}
	if err := decodeReply(reply, out); err != nil {
		s.logger.Debug(ctx, "Raw %s reply: %s", kind, reply)
		return fmt.Errorf("summarize %s: %w", kind, err)
	}

	s.logger.Debug(ctx, "Summarized %s in %s", kind, time.Since(start))
	return nil
}
