package game

import (
	"time"

	"github.com/cbodonnell/moralmaze/pkg/game/charges"
	"github.com/cbodonnell/moralmaze/pkg/game/constants"
	"github.com/cbodonnell/moralmaze/pkg/game/hazards"
	"github.com/cbodonnell/moralmaze/pkg/game/types"
	"github.com/cbodonnell/moralmaze/pkg/messages"
)

func abilityView(spec charges.Spec, m types.Meter, now time.Time) messages.AbilityView {
	v := messages.AbilityView{
		Charges:  m.Charges,
		Max:      spec.Cap,
		Interval: spec.Interval.Seconds(),
		NextIn:   spec.Remaining(m, now).Seconds(),
	}
	if spec.TwoPhase() {
		granted := m.InitialGranted
		v.InitialGranted = &granted
	}
	return v
}

func trapViews(traps []types.Trap) []messages.TrapView {
	out := make([]messages.TrapView, 0, len(traps))
	for _, t := range traps {
		out = append(out, messages.TrapView{
			Type:      t.Type,
			X:         t.Position.X,
			Y:         t.Position.Y,
			RevealAt:  t.RevealAt,
			ExpiresAt: t.ExpiresAt,
		})
	}
	return out
}

// stateView renders the state. Hidden traps are left out.
func (c *SessionController) stateView(now time.Time) *messages.StateView {
	s := c.state
	shield := messages.ShieldView{
		Charges:  s.Shield.Charges,
		Active:   s.ShieldActive(now),
		Duration: constants.ShieldDuration.Seconds(),
	}
	if s.ShieldActiveUntil != nil {
		t := *s.ShieldActiveUntil
		shield.ActiveUntil = &t
	}
	return &messages.StateView{
		Age:               s.Age,
		Stage:             s.Stage,
		StageName:         s.Stage.Name(),
		TotalGrowth:       s.TotalGrowth,
		HeroHealth:        s.HeroHealth,
		Shield:            shield,
		HeroEscapeCharges: s.HeroEscape.Charges,
		ValueDimensions:   s.Values,
		GoalAge:           c.settings.GoalAge,
		GameComplete:      s.GoalReached(c.settings.GoalAge),
		AIProvider:        c.provider.Name(),
		CurrentPosition:   s.Hero,
		AllyPosition:      s.Ally,
		ActiveDecisions:   types.SortedCoords(s.ActiveDecisions),
		PendingDecisions:  c.decisions.PendingCount(),
		HasProgress:       c.hasProgress(),
		JumpCharges:       s.HeroJump.Charges,
		AllyState: messages.AllyStateView{
			JumpCharges: s.AllyJump.Charges,
			Jump:        abilityView(charges.AllyJump, s.AllyJump, now),
			Freeze:      abilityView(charges.Freeze, s.Freeze, now),
			Expand:      abilityView(charges.Expand, s.Expand, now),
			Dissolve:    abilityView(c.dissolve, s.Dissolve, now),
			Lift:        abilityView(charges.Lift, s.Lift, now),
			Blink:       abilityView(charges.Blink, s.Blink, now),
			Trap:        abilityView(charges.Trap, s.TrapCharges, now),
			LiftArmed:   s.LiftArmed,
		},
		Traps: trapViews(hazards.Visible(s, now)),
	}
}

// mazeView renders the maze. Dissolved nodes are left out of the
// decision-node list.
func (c *SessionController) mazeView(now time.Time) *messages.MazeView {
	m, s := c.maze, c.state
	cells := m.Cells()
	cellViews := make([]messages.CellView, 0, len(cells))
	for _, cell := range cells {
		cellViews = append(cellViews, messages.CellView{
			X: cell.X,
			Y: cell.Y,
			Walls: messages.WallsView{
				North: cell.Walls.North,
				South: cell.Walls.South,
				East:  cell.Walls.East,
				West:  cell.Walls.West,
			},
			DecisionNode: cell.DecisionNode,
		})
	}

	nodes := []messages.DecisionNodeView{}
	for _, p := range m.DecisionNodes() {
		if _, dissolved := s.DissolvedNodes[p]; dissolved {
			continue
		}
		nodes = append(nodes, messages.DecisionNodeView{X: p.X, Y: p.Y, Visited: s.VisitedNodes.Has(p)})
	}

	gw, gh := m.GridSize()
	return &messages.MazeView{
		Width:           m.Width,
		Height:          m.Height,
		Seed:            m.Seed,
		Start:           m.Start,
		Cells:           cellViews,
		DecisionNodes:   nodes,
		ActiveDecisions: types.SortedCoords(s.ActiveDecisions),
		Traps:           trapViews(hazards.Visible(s, now)),
		WallGrid:        m.WallGrid(),
		GridSize:        [2]int{gw, gh},
	}
}

func trapEvent(o *hazards.Outcome) *messages.TrapEvent {
	if o == nil {
		return nil
	}
	return &messages.TrapEvent{
		Type:         o.Type,
		X:            o.Position.X,
		Y:            o.Position.Y,
		Effect:       string(o.Effect),
		Amount:       o.Amount,
		Roll:         o.Roll,
		HeroHealth:   o.HeroHealth,
		ShieldActive: o.ShieldActive,
	}
}
