package types

import "strings"

// Question is a dilemma presented at a decision node.
type Question struct {
	ID         string   `json:"id"`
	Prompt     string   `json:"prompt"`
	Options    []string `json:"options"`
	Difficulty float64  `json:"difficulty"`
	Tags       []string `json:"tags"`
}

// Answer is the player's response. At least one field must be set.
type Answer struct {
	ChoiceID *int   `json:"choice_id"`
	FreeText string `json:"free_text,omitempty"`
}

func (a Answer) IsEmpty() bool {
	return a.ChoiceID == nil && a.FreeText == ""
}

// ChoiceText returns the option text the answer selected, if the index is valid.
func (a Answer) ChoiceText(q *Question) (string, bool) {
	if a.ChoiceID == nil || q == nil {
		return "", false
	}
	i := *a.ChoiceID
	if i < 0 || i >= len(q.Options) {
		return "", false
	}
	return q.Options[i], true
}

// Text joins the chosen option and the free text.
func (a Answer) Text(q *Question) string {
	text, _ := a.ChoiceText(q)
	if a.FreeText != "" {
		text += " " + a.FreeText
	}
	return strings.TrimSpace(text)
}

// Review is the assessment of an answer. GrowthDelta is tolerated at any value.
type Review struct {
	GrowthDelta int     `json:"growth_delta"`
	MatchScore  float64 `json:"match_score"`
	Feedback    string  `json:"feedback"`
}

// DecisionRecord is one resolved decision in the history log.
type DecisionRecord struct {
	Question        Question `json:"question"`
	Answer          Answer   `json:"answer"`
	Review          Review   `json:"review"`
	AgeAtDecision   int      `json:"age_at_decision"`
	StageAtDecision Stage    `json:"stage_at_decision"`
}

// GrowthRecord is one entry of the structured value-growth log.
type GrowthRecord struct {
	QuestionID   string            `json:"question_id"`
	Prompt       string            `json:"prompt"`
	Age          int               `json:"age"`
	Stage        Stage             `json:"stage"`
	ValueDelta   ValueDimensions   `json:"value_delta"`
	Perspectives map[string]string `json:"perspectives"`
	Notes        string            `json:"notes,omitempty"`
}
