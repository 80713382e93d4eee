package messages

import (
	"time"

	"github.com/cbodonnell/moralmaze/pkg/game/types"
)

// AbilityView reports a time-gated ability. Interval and NextIn are seconds.
type AbilityView struct {
	Charges        int     `json:"charges"`
	Max            int     `json:"max"`
	Interval       float64 `json:"interval"`
	NextIn         float64 `json:"next_in"`
	InitialGranted *bool   `json:"initial_granted,omitempty"`
}

type AllyStateView struct {
	JumpCharges int         `json:"jump_charges"`
	Jump        AbilityView `json:"jump"`
	Freeze      AbilityView `json:"freeze"`
	Expand      AbilityView `json:"expand"`
	Dissolve    AbilityView `json:"dissolve"`
	Lift        AbilityView `json:"lift"`
	Blink       AbilityView `json:"blink"`
	Trap        AbilityView `json:"trap"`
	LiftArmed   bool        `json:"lift_armed"`
}

type ShieldView struct {
	Charges     int        `json:"charges"`
	ActiveUntil *time.Time `json:"active_until"`
	Active      bool       `json:"active"`
	// Duration is the window length in seconds.
	Duration float64 `json:"duration"`
}

type TrapView struct {
	Type      types.TrapType `json:"type"`
	X         int            `json:"x"`
	Y         int            `json:"y"`
	RevealAt  time.Time      `json:"reveal_at"`
	ExpiresAt time.Time      `json:"expires_at"`
}

// StateView is the full state snapshot returned with every result.
type StateView struct {
	Age               int                   `json:"age"`
	Stage             types.Stage           `json:"stage"`
	StageName         string                `json:"stage_name"`
	TotalGrowth       int                   `json:"total_growth"`
	HeroHealth        int                   `json:"hero_health"`
	Shield            ShieldView            `json:"shield"`
	HeroEscapeCharges int                   `json:"hero_escape_charges"`
	ValueDimensions   types.ValueDimensions `json:"value_dimensions"`
	GoalAge           int                   `json:"goal_age"`
	GameComplete      bool                  `json:"game_complete"`
	AIProvider        string                `json:"ai_provider"`
	CurrentPosition   types.Coord           `json:"current_position"`
	AllyPosition      types.Coord           `json:"ally_position"`
	ActiveDecisions   []types.Coord         `json:"active_decisions"`
	PendingDecisions  int                   `json:"pending_decisions"`
	HasProgress       bool                  `json:"has_progress"`
	JumpCharges       int                   `json:"jump_charges"`
	AllyState         AllyStateView         `json:"ally_state"`
	Traps             []TrapView            `json:"traps"`
}

type WallsView struct {
	North bool `json:"north"`
	South bool `json:"south"`
	East  bool `json:"east"`
	West  bool `json:"west"`
}

type CellView struct {
	X            int       `json:"x"`
	Y            int       `json:"y"`
	Walls        WallsView `json:"walls"`
	DecisionNode bool      `json:"decision_node"`
}

type DecisionNodeView struct {
	X       int  `json:"x"`
	Y       int  `json:"y"`
	Visited bool `json:"visited"`
}

type MazeView struct {
	Width           int                `json:"width"`
	Height          int                `json:"height"`
	Seed            int64              `json:"seed"`
	Start           types.Coord        `json:"start"`
	Cells           []CellView         `json:"cells"`
	DecisionNodes   []DecisionNodeView `json:"decision_nodes"`
	ActiveDecisions []types.Coord      `json:"active_decisions"`
	Traps           []TrapView         `json:"traps"`
	// WallGrid is indexed [px][py] over a (2w+1)x(2h+1) grid.
	WallGrid [][]bool `json:"wall_grid"`
	GridSize [2]int   `json:"grid_size"`
}

// TrapEvent reports a trap triggered by a hero landing.
type TrapEvent struct {
	Type         types.TrapType `json:"type"`
	X            int            `json:"x"`
	Y            int            `json:"y"`
	Effect       string         `json:"effect"`
	Amount       int            `json:"amount"`
	Roll         float64        `json:"roll"`
	HeroHealth   int            `json:"hero_health"`
	ShieldActive bool           `json:"shield_active"`
}
