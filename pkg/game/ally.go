package game

import (
	"context"
	"math"

	"github.com/cbodonnell/moralmaze/pkg/game/charges"
	"github.com/cbodonnell/moralmaze/pkg/game/constants"
	"github.com/cbodonnell/moralmaze/pkg/game/decisions"
	"github.com/cbodonnell/moralmaze/pkg/game/hazards"
	"github.com/cbodonnell/moralmaze/pkg/game/movement"
	"github.com/cbodonnell/moralmaze/pkg/game/types"
	"github.com/cbodonnell/moralmaze/pkg/messages"
)

// LiftStart grabs the hero when hero and ally share a row or column within
// reach. It spends a lift charge and arms exactly one throw. The reported
// ally position becomes the session's.
func (c *SessionController) LiftStart(ctx context.Context, hero, ally types.Coord) (*messages.LiftStartResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.maze.InBounds(hero) || !c.maze.InBounds(ally) {
		return nil, types.Invalid(types.ReasonOutOfBounds, "lift positions %s and %s must be in bounds", hero, ally)
	}
	now := c.now()
	c.regenerate(now)
	s := c.state
	if s.Lift.Charges <= 0 {
		return nil, types.Exhausted("lift")
	}
	if !movement.InLiftReach(hero, ally) {
		return nil, types.Invalid(types.ReasonOutOfReach, "out of reach: ally boost whiffs")
	}
	charges.Lift.Consume(&s.Lift, now)
	s.Ally = ally
	s.LiftArmed = true
	return &messages.LiftStartResult{Armed: true, State: c.commit(ctx, now)}, nil
}

// LiftThrow throws the hero two or three tiles from the ally. A landing
// outside the maze kills the hero, who stays on the last in-bounds tile.
func (c *SessionController) LiftThrow(ctx context.Context, ally types.Coord, direction string) (*messages.ThrowResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	d, ok := types.ParseDirection(direction)
	if !ok {
		return nil, types.Invalid(types.ReasonInvalidDirection, "unknown direction %q", direction)
	}
	now := c.now()
	c.regenerate(now)
	s := c.state
	if !s.LiftArmed {
		return nil, types.Invalid(types.ReasonLiftNotArmed, "no lift in progress")
	}
	if ally != s.Ally {
		return nil, types.Stale(types.ReasonAllyMismatch, "ally is at %s, not %s", s.Ally, ally)
	}
	target, distance, inBounds, err := movement.Throw(c.maze, ally, d, c.rng)
	if err != nil {
		return nil, err
	}
	s.LiftArmed = false

	result := &messages.ThrowResult{
		Target:        target,
		RollDirection: d,
		Distance:      distance,
	}
	if inBounds {
		result.TrapEvent = c.landHero(target, now)
		result.DecisionRequired, result.DecisionNode = c.decisionAt(target)
	} else {
		s.SetHealth(0)
		result.HeroDead = true
		c.logger.Debug("Hero thrown out of bounds to %s", target)
	}
	result.Position = s.Hero
	result.HeroHealth = s.HeroHealth
	result.State = c.commit(ctx, now)
	return result, nil
}

// Dissolve takes an active decision node out of play for a while.
func (c *SessionController) Dissolve(ctx context.Context, p types.Coord) (*messages.DissolveResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.maze.InBounds(p) {
		return nil, types.Invalid(types.ReasonOutOfBounds, "%s is out of bounds", p)
	}
	now := c.now()
	c.regenerate(now)
	s := c.state
	if !s.ActiveDecisions.Has(p) {
		return nil, types.Stale(types.ReasonNotActiveDecision, "%s is not an active decision node", p)
	}
	if s.Dissolve.Charges <= 0 {
		return nil, types.Exhausted("dissolve")
	}
	restoreAt := now.Add(constants.DissolveRestoreDelay)
	if err := decisions.Dissolve(s, p, restoreAt); err != nil {
		return nil, err
	}
	c.dissolve.Consume(&s.Dissolve, now)
	return &messages.DissolveResult{
		RestoreAt: restoreAt,
		Dissolved: types.SortedCoords(dissolvedSet(s)),
		State:     c.commit(ctx, now),
	}, nil
}

// PlaceTrap hides a mine or medkit on a tile.
func (c *SessionController) PlaceTrap(ctx context.Context, trapType string, p types.Coord) (*messages.TrapResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	c.regenerate(now)
	t, err := hazards.Place(c.state, c.maze, types.TrapType(trapType), p, now)
	if err != nil {
		return nil, err
	}
	return &messages.TrapResult{
		Trap:  trapViews([]types.Trap{t})[0],
		State: c.commit(ctx, now),
	}, nil
}

// FreezeHit costs the hero max(1, round(percent)) health and spends a
// freeze charge. percent is clamped to [0, 100]; nil uses the default.
func (c *SessionController) FreezeHit(ctx context.Context, percent *float64) (*messages.FreezeResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	p := constants.DefaultFreezeDamagePercent
	if percent != nil {
		p = math.Min(100, math.Max(0, *percent))
	}
	now := c.now()
	c.regenerate(now)
	s := c.state
	if !charges.Freeze.Consume(&s.Freeze, now) {
		return nil, types.Exhausted("freeze")
	}
	damage := max(1, int(math.Round(p)))
	s.SetHealth(s.HeroHealth - damage)
	return &messages.FreezeResult{
		Damage:     damage,
		HeroHealth: s.HeroHealth,
		State:      c.commit(ctx, now),
	}, nil
}

// Blink teleports the ally near the hero.
func (c *SessionController) Blink(ctx context.Context) (*messages.AllyMoveResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	c.regenerate(now)
	s := c.state
	if s.Blink.Charges <= 0 {
		return nil, types.Exhausted("blink")
	}
	target, err := movement.Blink(c.maze, s.Hero, c.rng)
	if err != nil {
		return nil, err
	}
	charges.Blink.Consume(&s.Blink, now)
	s.Ally = target
	return &messages.AllyMoveResult{
		Position: target,
		Distance: s.Hero.Manhattan(target),
		State:    c.commit(ctx, now),
	}, nil
}

// AllyJump leaps the ally two or three tiles, like a hero jump.
func (c *SessionController) AllyJump(ctx context.Context, direction string) (*messages.AllyMoveResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	d, ok := types.ParseDirection(direction)
	if !ok {
		return nil, types.Invalid(types.ReasonInvalidDirection, "unknown direction %q", direction)
	}
	now := c.now()
	c.regenerate(now)
	s := c.state
	if s.AllyJump.Charges <= 0 {
		return nil, types.Exhausted("ally jump")
	}
	target, distance, err := movement.Jump(c.maze, s.Ally, d, c.rng)
	if err != nil {
		return nil, err
	}
	charges.AllyJump.Consume(&s.AllyJump, now)
	s.Ally = target
	return &messages.AllyMoveResult{
		Position: target,
		Distance: distance,
		State:    c.commit(ctx, now),
	}, nil
}

// Expand opens every closed interior wall around the ally until the
// expansion window lapses.
func (c *SessionController) Expand(ctx context.Context) (*messages.ExpandResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	c.regenerate(now)
	s := c.state
	if s.Expand.Charges <= 0 {
		return nil, types.Exhausted("expand")
	}
	walls := c.closedInteriorWalls(s.Ally)
	if len(walls) == 0 {
		return nil, types.Invalid(types.ReasonInvalidMutation, "no closed walls around %s", s.Ally)
	}
	charges.Expand.Consume(&s.Expand, now)
	for _, w := range walls {
		c.setWall(w.Cell, w.Dir, false)
	}
	restoreAt := now.Add(constants.ExpandRestoreDelay)
	s.Expansions = append(s.Expansions, types.Expansion{Walls: walls, RestoreAt: restoreAt})
	return &messages.ExpandResult{
		Opened:    len(walls),
		RestoreAt: restoreAt,
		Maze:      c.mazeView(now),
		State:     c.commit(ctx, now),
	}, nil
}
