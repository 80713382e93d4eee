package messages

// Request bodies accepted by the HTTP surface.

type PositionRequest struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type DirectionRequest struct {
	Direction string `json:"direction"`
}

type WallMutation struct {
	X         int    `json:"x"`
	Y         int    `json:"y"`
	Direction string `json:"direction"`
	// Action is "open" or "close".
	Action string `json:"action"`
}

type WallMutationsRequest struct {
	Operations []WallMutation `json:"operations"`
}

type ActiveDecisionsRequest struct {
	Coords []PositionRequest `json:"coords"`
}

type LiftStartRequest struct {
	Hero PositionRequest `json:"hero"`
	Ally PositionRequest `json:"ally"`
}

type LiftThrowRequest struct {
	Ally      PositionRequest `json:"ally"`
	Direction string          `json:"direction"`
}

type TrapRequest struct {
	Type string `json:"type"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
}

type FreezeHitRequest struct {
	DamagePercent *float64 `json:"damage_percent"`
}

type EscapeRequest struct {
	X *int `json:"x"`
	Y *int `json:"y"`
}

type SubmitDecisionRequest struct {
	QuestionID string `json:"question_id"`
	ChoiceID   *int   `json:"choice_id"`
	FreeText   string `json:"free_text"`
}

// ErrorBody is the JSON shape of a rejected request.
type ErrorBody struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Kind    string `json:"kind"`
	Reason  string `json:"reason,omitempty"`
	Message string `json:"message"`
}
