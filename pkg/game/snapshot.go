package game

import (
	"fmt"
	"time"

	"github.com/cbodonnell/moralmaze/pkg/game/charges"
	"github.com/cbodonnell/moralmaze/pkg/game/maze"
	"github.com/cbodonnell/moralmaze/pkg/game/types"
	"github.com/cbodonnell/moralmaze/pkg/repositories/models"
)

func meterToSnapshot(m types.Meter) models.MeterSnapshot {
	out := models.MeterSnapshot{Charges: m.Charges, InitialGranted: m.InitialGranted}
	if !m.LastTick.IsZero() {
		t := m.LastTick
		out.LastTick = &t
	}
	return out
}

func meterFromSnapshot(m models.MeterSnapshot) types.Meter {
	out := types.Meter{Charges: m.Charges, InitialGranted: m.InitialGranted}
	if m.LastTick != nil {
		out.LastTick = *m.LastTick
	}
	return out
}

// toSnapshot captures the current state. Pending questions are not
// persisted; their nodes are saved as active so a reload puts them back
// in play.
func (c *SessionController) toSnapshot(now time.Time) *models.Snapshot {
	s := c.state
	hero, ally := s.Hero, s.Ally
	snap := &models.Snapshot{
		Version:       models.SnapshotVersion,
		SavedAt:       now,
		Age:           s.Age,
		Stage:         s.Stage,
		TotalGrowth:   s.TotalGrowth,
		Values:        s.Values,
		History:       append([]types.DecisionRecord{}, s.History...),
		GrowthHistory: append([]types.GrowthRecord{}, s.GrowthHistory...),
		Seed:          s.Seed,
		Width:         c.maze.Width,
		Height:        c.maze.Height,
		HeroPosition:  &hero,
		AllyPosition:  &ally,
		HeroHealth:    s.HeroHealth,
		Active:        c.savedActive(),
		Visited:       types.SortedCoords(s.VisitedNodes),
		Traps:         append([]types.Trap{}, s.Traps...),
		Meters: map[string]models.MeterSnapshot{
			models.MeterAllyJump: meterToSnapshot(s.AllyJump),
			models.MeterFreeze:   meterToSnapshot(s.Freeze),
			models.MeterExpand:   meterToSnapshot(s.Expand),
			models.MeterDissolve: meterToSnapshot(s.Dissolve),
			models.MeterLift:     meterToSnapshot(s.Lift),
			models.MeterBlink:    meterToSnapshot(s.Blink),
			models.MeterTrap:     meterToSnapshot(s.TrapCharges),
		},
		AgeMeters: map[string]models.AgeMeterSnapshot{
			models.AgeMeterJump:   {Charges: s.HeroJump.Charges, Checkpoint: s.HeroJump.Checkpoint},
			models.AgeMeterEscape: {Charges: s.HeroEscape.Charges, Checkpoint: s.HeroEscape.Checkpoint},
			models.AgeMeterShield: {Charges: s.Shield.Charges, Checkpoint: s.Shield.Checkpoint},
		},
		DissolveCap: s.DissolveCap,
		LiftArmed:   s.LiftArmed,
		Expansions:  append([]types.Expansion{}, s.Expansions...),
	}
	if s.ShieldActiveUntil != nil {
		t := *s.ShieldActiveUntil
		snap.ShieldActiveUntil = &t
	}
	for _, p := range types.SortedCoords(dissolvedSet(s)) {
		snap.Dissolved = append(snap.Dissolved, models.DissolvedNode{Position: p, RestoreAt: s.DissolvedNodes[p]})
	}
	for _, key := range sortedWallKeys(s.WallOverrides) {
		snap.WallOverrides = append(snap.WallOverrides, models.WallOverride{Cell: key.Cell, Dir: key.Dir, Closed: s.WallOverrides[key]})
	}
	return snap
}

// restore rebuilds the maze from the snapshot seed, replays wall
// overrides and loads the state. A snapshot recorded for other maze
// dimensions is rejected.
func (c *SessionController) restore(snap *models.Snapshot, now time.Time) error {
	if (snap.Width != 0 && snap.Width != c.settings.Width) || (snap.Height != 0 && snap.Height != c.settings.Height) {
		return fmt.Errorf("snapshot maze is %dx%d, settings are %dx%d", snap.Width, snap.Height, c.settings.Width, c.settings.Height)
	}
	m, err := maze.Generate(c.settings.Width, c.settings.Height, snap.Seed)
	if err != nil {
		return fmt.Errorf("failed to regenerate maze: %v", err)
	}

	s := types.NewSessionState()
	s.Age = snap.Age
	s.Stage = types.StageForAge(snap.Age)
	s.TotalGrowth = snap.TotalGrowth
	s.Values = snap.Values
	s.History = snap.History
	s.GrowthHistory = snap.GrowthHistory
	s.Seed = snap.Seed
	s.SetHealth(snap.HeroHealth)

	s.Hero = m.Start
	if snap.HeroPosition != nil && m.InBounds(*snap.HeroPosition) {
		s.Hero = *snap.HeroPosition
	}
	s.Ally = types.Coord{X: min(m.Width-1, m.Start.X+1), Y: m.Start.Y}
	if snap.AllyPosition != nil && m.InBounds(*snap.AllyPosition) {
		s.Ally = *snap.AllyPosition
	}

	for _, p := range snap.Visited {
		if m.InBounds(p) {
			s.VisitedNodes.Put(p)
		}
	}
	for _, d := range snap.Dissolved {
		if m.IsDecisionNode(d.Position) && !s.VisitedNodes.Has(d.Position) {
			s.DissolvedNodes[d.Position] = d.RestoreAt
		}
	}
	for _, t := range snap.Traps {
		if m.InBounds(t.Position) && t.ExpiresAt.After(t.RevealAt) && t.RevealAt.After(t.PlacedAt) {
			s.Traps = append(s.Traps, t)
		}
	}

	s.AllyJump = meterFromSnapshot(snap.Meters[models.MeterAllyJump])
	s.Freeze = meterFromSnapshot(snap.Meters[models.MeterFreeze])
	s.Expand = meterFromSnapshot(snap.Meters[models.MeterExpand])
	s.Dissolve = meterFromSnapshot(snap.Meters[models.MeterDissolve])
	s.Lift = meterFromSnapshot(snap.Meters[models.MeterLift])
	s.Blink = meterFromSnapshot(snap.Meters[models.MeterBlink])
	s.TrapCharges = meterFromSnapshot(snap.Meters[models.MeterTrap])
	for _, spec := range []struct {
		spec  charges.Spec
		meter *types.Meter
	}{
		{charges.AllyJump, &s.AllyJump},
		{charges.Freeze, &s.Freeze},
		{charges.Expand, &s.Expand},
		{charges.Lift, &s.Lift},
		{charges.Blink, &s.Blink},
		{charges.Trap, &s.TrapCharges},
	} {
		spec.spec.Clamp(spec.meter)
	}

	jump := snap.AgeMeters[models.AgeMeterJump]
	escape := snap.AgeMeters[models.AgeMeterEscape]
	shield := snap.AgeMeters[models.AgeMeterShield]
	s.HeroJump = types.AgeMeter{Charges: max(0, jump.Charges), Checkpoint: jump.Checkpoint}
	s.HeroEscape = types.AgeMeter{Charges: max(0, escape.Charges), Checkpoint: escape.Checkpoint}
	s.Shield = types.AgeMeter{Charges: min(charges.Shield.Cap, max(0, shield.Charges)), Checkpoint: shield.Checkpoint}
	if snap.ShieldActiveUntil != nil && snap.ShieldActiveUntil.After(now) {
		t := *snap.ShieldActiveUntil
		s.ShieldActiveUntil = &t
	}

	s.DissolveCap = c.settings.DissolveCap
	s.LiftArmed = snap.LiftArmed

	for _, o := range snap.WallOverrides {
		key := types.CanonicalWall(o.Cell, o.Dir)
		if _, err := m.SetWall(key.Cell, key.Dir, o.Closed); err != nil {
			continue
		}
		s.WallOverrides[key] = o.Closed
	}
	s.Expansions = snap.Expansions

	c.maze = m
	c.state = s
	c.dissolve = charges.Dissolve(s.DissolveCap)
	c.decisions.Reset()

	c.decisions.SetActive(s, snap.Active, m.IsDecisionNode)
	c.epoch++
	return nil
}

func dissolvedSet(s *types.SessionState) types.CoordSet {
	set := types.NewCoordSet()
	for p := range s.DissolvedNodes {
		set.Put(p)
	}
	return set
}

func (c *SessionController) savedActive() []types.Coord {
	active := types.CopyCoordSet(c.state.ActiveDecisions)
	for _, p := range c.decisions.PendingPositions() {
		active.Put(p)
	}
	return types.SortedCoords(active)
}
