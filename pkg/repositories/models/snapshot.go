package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/cbodonnell/moralmaze/pkg/game/constants"
	"github.com/cbodonnell/moralmaze/pkg/game/types"
)

// SnapshotVersion is the schema version written by this build.
const SnapshotVersion = 1

// Meter names used as keys of Snapshot.Meters.
const (
	MeterAllyJump = "ally_jump"
	MeterFreeze   = "freeze"
	MeterExpand   = "expand"
	MeterDissolve = "dissolve"
	MeterLift     = "lift"
	MeterBlink    = "blink"
	MeterTrap     = "trap"
)

// Age-gated meter names used as keys of Snapshot.AgeMeters.
const (
	AgeMeterJump   = "jump"
	AgeMeterEscape = "escape"
	AgeMeterShield = "shield"
)

type MeterSnapshot struct {
	Charges int `json:"charges"`
	// LastTick is nil while the meter's clock has not started.
	LastTick       *time.Time `json:"last_tick,omitempty"`
	InitialGranted bool       `json:"initial_granted,omitempty"`
}

type AgeMeterSnapshot struct {
	Charges    int `json:"charges"`
	Checkpoint int `json:"checkpoint"`
}

type DissolvedNode struct {
	Position  types.Coord `json:"position"`
	RestoreAt time.Time   `json:"restore_at"`
}

type WallOverride struct {
	Cell   types.Coord     `json:"cell"`
	Dir    types.Direction `json:"dir"`
	Closed bool            `json:"closed"`
}

// Snapshot is the persisted form of a session. Every field has a default
// supplied by DefaultSnapshot, applied once by Decode. Width and Height
// record the maze dimensions the seed was generated with and are zero in
// older snapshots.
type Snapshot struct {
	Version           int                         `json:"version"`
	SavedAt           time.Time                   `json:"saved_at"`
	Age               int                         `json:"age"`
	Stage             types.Stage                 `json:"stage"`
	TotalGrowth       int                         `json:"total_growth"`
	Values            types.ValueDimensions       `json:"value_dimensions"`
	History           []types.DecisionRecord      `json:"history"`
	GrowthHistory     []types.GrowthRecord        `json:"growth_history"`
	Seed              int64                       `json:"seed"`
	Width             int                         `json:"width,omitempty"`
	Height            int                         `json:"height,omitempty"`
	HeroPosition      *types.Coord                `json:"hero_position,omitempty"`
	AllyPosition      *types.Coord                `json:"ally_position,omitempty"`
	HeroHealth        int                         `json:"hero_health"`
	Active            []types.Coord               `json:"active_decisions"`
	Visited           []types.Coord               `json:"visited_nodes"`
	Dissolved         []DissolvedNode             `json:"dissolved_nodes"`
	Traps             []types.Trap                `json:"traps"`
	Meters            map[string]MeterSnapshot    `json:"meters"`
	AgeMeters         map[string]AgeMeterSnapshot `json:"age_meters"`
	ShieldActiveUntil *time.Time                  `json:"shield_active_until,omitempty"`
	DissolveCap       int                         `json:"dissolve_cap"`
	LiftArmed         bool                        `json:"lift_armed"`
	WallOverrides     []WallOverride              `json:"wall_overrides"`
	Expansions        []types.Expansion           `json:"expansions"`
}

// DefaultSnapshot is the schema's default for every field.
func DefaultSnapshot() *Snapshot {
	return &Snapshot{
		Version:    SnapshotVersion,
		Age:        constants.DefaultStartAge,
		Stage:      types.StageForAge(constants.DefaultStartAge),
		HeroHealth: constants.MaxHealth,
		Meters: map[string]MeterSnapshot{
			MeterAllyJump: {Charges: constants.AllyJumpCharges},
			MeterFreeze:   {},
			MeterExpand:   {},
			MeterDissolve: {Charges: constants.DissolveCharges},
			MeterLift:     {},
			MeterBlink:    {Charges: constants.BlinkCharges},
			MeterTrap:     {Charges: constants.TrapCharges},
		},
		AgeMeters: map[string]AgeMeterSnapshot{
			AgeMeterJump:   {Charges: constants.HeroJumpCharges, Checkpoint: constants.DefaultStartAge},
			AgeMeterEscape: {},
			AgeMeterShield: {Charges: constants.ShieldCharges},
		},
		DissolveCap: constants.DefaultDissolveCap,
	}
}

// Decode parses data over DefaultSnapshot, so absent fields keep their
// defaults, then normalizes derived fields.
func Decode(data []byte) (*Snapshot, error) {
	s := DefaultSnapshot()
	if err := json.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot: %v", err)
	}
	if s.Version > SnapshotVersion {
		return nil, fmt.Errorf("snapshot version %d is newer than supported version %d", s.Version, SnapshotVersion)
	}
	if s.Version <= 0 {
		s.Version = SnapshotVersion
	}
	if s.Age < 0 {
		s.Age = constants.DefaultStartAge
	}
	s.Stage = types.StageForAge(s.Age)
	if s.HeroHealth < 0 || s.HeroHealth > constants.MaxHealth {
		s.HeroHealth = min(constants.MaxHealth, max(0, s.HeroHealth))
	}
	if s.DissolveCap <= 0 {
		s.DissolveCap = constants.DefaultDissolveCap
	}
	return s, nil
}

func Encode(s *Snapshot) ([]byte, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("failed to encode snapshot: %v", err)
	}
	return data, nil
}
