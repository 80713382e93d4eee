package messages

import (
	"time"

	"github.com/cbodonnell/moralmaze/pkg/game/types"
)

type RestartResult struct {
	State *StateView `json:"state"`
	Maze  *MazeView  `json:"maze"`
}

type MoveResult struct {
	Valid            bool         `json:"valid"`
	Position         types.Coord  `json:"position"`
	DecisionRequired bool         `json:"decision_required"`
	DecisionNode     *types.Coord `json:"decision_node"`
	TrapEvent        *TrapEvent   `json:"trap_event"`
	HeroHealth       int          `json:"hero_health"`
	State            *StateView   `json:"state"`
}

type JumpResult struct {
	Success          bool         `json:"success"`
	Position         types.Coord  `json:"position"`
	JumpDistance     int          `json:"jump_distance"`
	RemainingCharges int          `json:"remaining_charges"`
	DecisionRequired bool         `json:"decision_required"`
	DecisionNode     *types.Coord `json:"decision_node"`
	TrapEvent        *TrapEvent   `json:"trap_event"`
	State            *StateView   `json:"state"`
}

type SyncPositionResult struct {
	Position         types.Coord  `json:"position"`
	DecisionRequired bool         `json:"decision_required"`
	DecisionNode     *types.Coord `json:"decision_node"`
	State            *StateView   `json:"state"`
}

type WallMutationResult struct {
	Applied int        `json:"applied"`
	Maze    *MazeView  `json:"maze"`
	State   *StateView `json:"state"`
}

type ActiveDecisionsResult struct {
	ActiveDecisions []types.Coord `json:"active_decisions"`
	State           *StateView    `json:"state"`
}

type LiftStartResult struct {
	Armed bool       `json:"armed"`
	State *StateView `json:"state"`
}

type ThrowResult struct {
	Position         types.Coord     `json:"position"`
	Target           types.Coord     `json:"target"`
	RollDirection    types.Direction `json:"roll_direction"`
	Distance         int             `json:"distance"`
	HeroDead         bool            `json:"hero_dead"`
	HeroHealth       int             `json:"hero_health"`
	DecisionRequired bool            `json:"decision_required"`
	DecisionNode     *types.Coord    `json:"decision_node"`
	TrapEvent        *TrapEvent      `json:"trap_event"`
	State            *StateView      `json:"state"`
}

type DissolveResult struct {
	RestoreAt time.Time     `json:"restore_at"`
	Dissolved []types.Coord `json:"dissolved"`
	State     *StateView    `json:"state"`
}

type TrapResult struct {
	Trap  TrapView   `json:"trap"`
	State *StateView `json:"state"`
}

type FreezeResult struct {
	Damage     int        `json:"damage"`
	HeroHealth int        `json:"hero_health"`
	State      *StateView `json:"state"`
}

type AllyMoveResult struct {
	Position types.Coord `json:"position"`
	Distance int         `json:"distance,omitempty"`
	State    *StateView  `json:"state"`
}

type ExpandResult struct {
	Opened    int        `json:"opened"`
	RestoreAt time.Time  `json:"restore_at"`
	Maze      *MazeView  `json:"maze"`
	State     *StateView `json:"state"`
}

type EscapeResult struct {
	Position types.Coord `json:"position"`
	State    *StateView  `json:"state"`
}

type ShieldResult struct {
	ActiveUntil time.Time  `json:"active_until"`
	State       *StateView `json:"state"`
}

type QuestionView struct {
	ID         string      `json:"id"`
	Prompt     string      `json:"prompt"`
	Options    []string    `json:"options"`
	Difficulty float64     `json:"difficulty"`
	Tags       []string    `json:"tags"`
	Position   types.Coord `json:"position"`
}

type StartDecisionResult struct {
	Question QuestionView `json:"question"`
	State    *StateView   `json:"state"`
}

type AnswerView struct {
	ChoiceID   *int   `json:"choice_id"`
	ChoiceText string `json:"choice_text,omitempty"`
	FreeText   string `json:"free_text,omitempty"`
}

type SubmitDecisionResult struct {
	Question        types.Question        `json:"question"`
	Answer          AnswerView            `json:"answer"`
	Review          types.Review          `json:"review"`
	ValueDelta      types.ValueDimensions `json:"value_delta"`
	ValueDimensions types.ValueDimensions `json:"value_dimensions"`
	Voices          map[string]string     `json:"voices"`
	GameComplete    bool                  `json:"game_complete"`
	State           *StateView            `json:"state"`
}

type TimelineSummary struct {
	FinalAge        int                   `json:"final_age"`
	Stage           types.Stage           `json:"stage"`
	StageName       string                `json:"stage_name"`
	TotalGrowth     int                   `json:"total_growth"`
	ValueDimensions types.ValueDimensions `json:"value_dimensions"`
	Decisions       int                   `json:"decisions"`
	Narrative       string                `json:"narrative"`
}

type TimelineRecord struct {
	Index     int          `json:"index"`
	Age       int          `json:"age"`
	Stage     types.Stage  `json:"stage"`
	StageName string       `json:"stage_name"`
	Question  string       `json:"question"`
	Answer    AnswerView   `json:"answer"`
	Review    types.Review `json:"review"`
}

type TimelineResult struct {
	Summary       TimelineSummary      `json:"summary"`
	Records       []TimelineRecord     `json:"records"`
	GrowthHistory []types.GrowthRecord `json:"growth_history"`
}
