package game

import (
	"context"
	"time"

	"github.com/cbodonnell/moralmaze/pkg/game/charges"
	"github.com/cbodonnell/moralmaze/pkg/game/hazards"
	"github.com/cbodonnell/moralmaze/pkg/game/movement"
	"github.com/cbodonnell/moralmaze/pkg/game/types"
	"github.com/cbodonnell/moralmaze/pkg/messages"
)

// GetState reports the session after a regeneration pass.
func (c *SessionController) GetState(ctx context.Context) *messages.StateView {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	c.regenerate(now)
	return c.stateView(now)
}

func (c *SessionController) GetMaze(ctx context.Context) *messages.MazeView {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	c.regenerate(now)
	return c.mazeView(now)
}

// Restart replaces the maze and the session with fresh ones on a new seed.
func (c *SessionController) Restart(ctx context.Context) (*messages.RestartResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	if err := c.reset(c.drawSeed(), now); err != nil {
		return nil, err
	}
	c.restored = false
	if err := c.repository.DeleteSnapshot(ctx, c.settings.ProfileID); err != nil {
		c.logger.Warn("Failed to delete snapshot for %s: %v", c.settings.ProfileID, err)
	}
	c.regenerate(now)
	c.logger.Info("Session restarted with seed %d", c.state.Seed)

	state := c.commit(ctx, now)
	maze := c.mazeView(now)
	c.publish(messages.MessageTypeSessionRestarted, maze)
	return &messages.RestartResult{State: state, Maze: maze}, nil
}

// landHero moves the hero to p and fires any live trap there.
func (c *SessionController) landHero(p types.Coord, now time.Time) *messages.TrapEvent {
	c.state.Hero = p
	outcome := hazards.Trigger(c.state, p, now, c.rng.Float64())
	if outcome == nil {
		return nil
	}
	c.logger.Debug("Trap %s at %s: %s %d", outcome.Type, p, outcome.Effect, outcome.Amount)
	ev := trapEvent(outcome)
	c.publish(messages.MessageTypeTrapTriggered, ev)
	return ev
}

// Move steps the hero one tile through an open wall.
func (c *SessionController) Move(ctx context.Context, target types.Coord) (*messages.MoveResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	c.regenerate(now)
	if err := movement.Step(c.maze, c.state.Hero, target); err != nil {
		return nil, err
	}

	ev := c.landHero(target, now)
	required, node := c.decisionAt(target)
	return &messages.MoveResult{
		Valid:            true,
		Position:         target,
		DecisionRequired: required,
		DecisionNode:     node,
		TrapEvent:        ev,
		HeroHealth:       c.state.HeroHealth,
		State:            c.commit(ctx, now),
	}, nil
}

// Jump leaps the hero two or three tiles over walls, spending a jump charge.
func (c *SessionController) Jump(ctx context.Context, direction string) (*messages.JumpResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	d, ok := types.ParseDirection(direction)
	if !ok {
		return nil, types.Invalid(types.ReasonInvalidDirection, "unknown direction %q", direction)
	}
	now := c.now()
	c.regenerate(now)
	s := c.state
	if s.HeroJump.Charges <= 0 {
		return nil, types.Exhausted("jump")
	}
	target, distance, err := movement.Jump(c.maze, s.Hero, d, c.rng)
	if err != nil {
		return nil, err
	}
	charges.HeroJump.Consume(&s.HeroJump, s.Age)

	ev := c.landHero(target, now)
	required, node := c.decisionAt(target)
	return &messages.JumpResult{
		Success:          true,
		Position:         target,
		JumpDistance:     distance,
		RemainingCharges: s.HeroJump.Charges,
		DecisionRequired: required,
		DecisionNode:     node,
		TrapEvent:        ev,
		State:            c.commit(ctx, now),
	}, nil
}

// SyncPosition accepts the hero position reported by the presentation layer.
func (c *SessionController) SyncPosition(ctx context.Context, p types.Coord) (*messages.SyncPositionResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.maze.InBounds(p) {
		return nil, types.Invalid(types.ReasonOutOfBounds, "%s is out of bounds", p)
	}
	now := c.now()
	c.regenerate(now)
	c.state.Hero = p
	required, node := c.decisionAt(p)
	return &messages.SyncPositionResult{
		Position:         p,
		DecisionRequired: required,
		DecisionNode:     node,
		State:            c.commit(ctx, now),
	}, nil
}

// MutateWalls applies a batch of wall changes. The batch is rejected whole
// when any operation is invalid.
func (c *SessionController) MutateWalls(ctx context.Context, mutations []messages.WallMutation) (*messages.WallMutationResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	ops, err := ParseWallMutations(mutations, c.maze.InBounds)
	if err != nil {
		return nil, err
	}
	now := c.now()
	c.regenerate(now)
	applied := 0
	for _, op := range ops {
		if c.setWall(op.Cell, op.Dir, op.Close) {
			applied++
		}
	}
	c.logger.Debug("Applied %d of %d wall mutations", applied, len(ops))
	return &messages.WallMutationResult{
		Applied: applied,
		Maze:    c.mazeView(now),
		State:   c.commit(ctx, now),
	}, nil
}

// SetActiveDecisions replaces the active decision set. Ineligible
// coordinates are dropped.
func (c *SessionController) SetActiveDecisions(ctx context.Context, coords []types.Coord) (*messages.ActiveDecisionsResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	c.regenerate(now)
	accepted := c.decisions.SetActive(c.state, coords, c.maze.IsDecisionNode)
	return &messages.ActiveDecisionsResult{
		ActiveDecisions: accepted,
		State:           c.commit(ctx, now),
	}, nil
}
