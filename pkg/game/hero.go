package game

import (
	"context"

	"github.com/cbodonnell/moralmaze/pkg/game/charges"
	"github.com/cbodonnell/moralmaze/pkg/game/constants"
	"github.com/cbodonnell/moralmaze/pkg/game/types"
	"github.com/cbodonnell/moralmaze/pkg/messages"
)

// Escape breaks the hero free of a freeze or lift, optionally snapping
// the hero to a reported in-bounds cell.
func (c *SessionController) Escape(ctx context.Context, p *types.Coord) (*messages.EscapeResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	c.regenerate(now)
	s := c.state
	if !charges.HeroEscape.Consume(&s.HeroEscape, s.Age) {
		return nil, types.Exhausted("escape")
	}
	if p != nil && c.maze.InBounds(*p) {
		s.Hero = *p
	}
	s.LiftArmed = false
	return &messages.EscapeResult{
		Position: s.Hero,
		State:    c.commit(ctx, now),
	}, nil
}

// ActivateShield opens a shield window that suppresses trap effects.
func (c *SessionController) ActivateShield(ctx context.Context) (*messages.ShieldResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	c.regenerate(now)
	s := c.state
	if !charges.Shield.Consume(&s.Shield, s.Age) {
		return nil, types.Exhausted("shield")
	}
	until := now.Add(constants.ShieldDuration)
	s.ShieldActiveUntil = &until
	return &messages.ShieldResult{
		ActiveUntil: until,
		State:       c.commit(ctx, now),
	}, nil
}
