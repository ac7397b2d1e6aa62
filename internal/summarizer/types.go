package summarizer

import (
	"encoding/json"
	"fmt"
)

// Summary is either a *WebsiteSummary or a *MeetingSummary.
type Summary interface {
	isSummary()
}

type WebsiteSummary struct {
	Sections []Section `json:"sections"`
}

// Section content is free text; lines starting with "- " are bullets and
// **text** marks bold runs.
type Section struct {
	Heading string `json:"heading"`
	Content string `json:"content"`
}

type MeetingSummary struct {
	MOM        []string   `json:"mom"`
	TodoList   []string   `json:"todo_list"`
	ActionPlan ActionPlan `json:"action_plan"`
}

type ActionPlan struct {
	DecisionMade           StringList `json:"decision_made"`
	KeyServicesToPromote   StringList `json:"key_services_to_promote"`
	TargetGeography        StringList `json:"target_geography"`
	BudgetAndTimeline      StringList `json:"budget_and_timeline"`
	LeadManagementStrategy StringList `json:"lead_management_strategy"`
	NextStepsAndOwnership  StringList `json:"next_steps_and_ownership"`
}

// ActionPlanField pairs a display label with its items.
type ActionPlanField struct {
	Label string
	Items StringList
}

// Fields lists the action plan in display order.
func (a ActionPlan) Fields() []ActionPlanField {
	return []ActionPlanField{
		{Label: "Decision Made", Items: a.DecisionMade},
		{Label: "Key Services to Promote", Items: a.KeyServicesToPromote},
		{Label: "Target Geography", Items: a.TargetGeography},
		{Label: "Budget and Timeline", Items: a.BudgetAndTimeline},
		{Label: "Lead Management Strategy", Items: a.LeadManagementStrategy},
		{Label: "Next Steps and Ownership", Items: a.NextStepsAndOwnership},
	}
}

func (*WebsiteSummary) isSummary() {}
func (*MeetingSummary) isSummary() {}

// StringList decodes from either a JSON string or an array of strings.
type StringList []string

func (l *StringList) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*l = nil
		return nil
	}

	var one string
	if err := json.Unmarshal(data, &one); err == nil {
		if one == "" {
			*l = nil
		} else {
			*l = StringList{one}
		}
		return nil
	}

	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return fmt.Errorf("want string or list of strings: %w", err)
	}
	*l = many
	return nil
}
