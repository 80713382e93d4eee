package types

import (
	"time"
)

// SessionState is the mutable aggregate of one play session.
// It is owned by the session controller and holds no behavior beyond
// simple bookkeeping.
type SessionState struct {
	Age         int
	Stage       Stage
	TotalGrowth int
	Values      ValueDimensions
	// History is the resolved decision log, oldest first.
	History []DecisionRecord
	// GrowthHistory is the structured value-growth log, oldest first.
	GrowthHistory []GrowthRecord
	Seed          int64

	Hero       Coord
	Ally       Coord
	HeroHealth int

	// ActiveDecisions is a subset of decision-node coordinates not yet visited.
	ActiveDecisions CoordSet
	VisitedNodes    CoordSet
	// DissolvedNodes maps coordinate to restore time.
	DissolvedNodes map[Coord]time.Time

	Traps []Trap

	HeroJump   AgeMeter
	HeroEscape AgeMeter
	Shield     AgeMeter
	// ShieldActiveUntil is nil when no shield window is open.
	ShieldActiveUntil *time.Time

	AllyJump    Meter
	Freeze      Meter
	Expand      Meter
	Dissolve    Meter
	Lift        Meter
	Blink       Meter
	TrapCharges Meter
	DissolveCap int

	// LiftArmed is set by a successful lift start and cleared by a throw or escape.
	LiftArmed bool

	// WallOverrides records walls changed after generation, true meaning closed.
	WallOverrides map[WallKey]bool
	Expansions    []Expansion
}

// NewSessionState returns a state with every collection allocated.
func NewSessionState() *SessionState {
	return &SessionState{
		ActiveDecisions: NewCoordSet(),
		VisitedNodes:    NewCoordSet(),
		DissolvedNodes:  make(map[Coord]time.Time),
		WallOverrides:   make(map[WallKey]bool),
	}
}

// ApplyGrowth advances age and cumulative growth by delta. Age never
// falls below minAge and the stage follows the new age.
func (s *SessionState) ApplyGrowth(delta, minAge int) {
	s.Age += delta
	s.TotalGrowth += delta
	if s.Age < minAge {
		s.Age = minAge
	}
	s.Stage = StageForAge(s.Age)
}

func (s *SessionState) ApplyValueDelta(d ValueDimensions) {
	s.Values = s.Values.Add(d)
}

// HistoryTags flattens the tags of every resolved question, oldest first.
func (s *SessionState) HistoryTags() []string {
	var tags []string
	for _, r := range s.History {
		tags = append(tags, r.Question.Tags...)
	}
	return tags
}

func (s *SessionState) GoalReached(goalAge int) bool {
	return s.Age >= goalAge
}

// SetHealth stores h clamped to [0,100].
func (s *SessionState) SetHealth(h int) {
	switch {
	case h < 0:
		h = 0
	case h > 100:
		h = 100
	}
	s.HeroHealth = h
}

// ShieldActive reports whether a shield window covers now.
func (s *SessionState) ShieldActive(now time.Time) bool {
	return s.ShieldActiveUntil != nil && s.ShieldActiveUntil.After(now)
}

// Copy returns a deep copy of the state.
func (s *SessionState) Copy() *SessionState {
	c := *s
	c.History = append([]DecisionRecord(nil), s.History...)
	c.GrowthHistory = append([]GrowthRecord(nil), s.GrowthHistory...)
	c.ActiveDecisions = CopyCoordSet(s.ActiveDecisions)
	c.VisitedNodes = CopyCoordSet(s.VisitedNodes)
	c.DissolvedNodes = make(map[Coord]time.Time, len(s.DissolvedNodes))
	for k, v := range s.DissolvedNodes {
		c.DissolvedNodes[k] = v
	}
	c.Traps = append([]Trap(nil), s.Traps...)
	if s.ShieldActiveUntil != nil {
		t := *s.ShieldActiveUntil
		c.ShieldActiveUntil = &t
	}
	c.WallOverrides = make(map[WallKey]bool, len(s.WallOverrides))
	for k, v := range s.WallOverrides {
		c.WallOverrides[k] = v
	}
	c.Expansions = append([]Expansion(nil), s.Expansions...)
	return &c
}
