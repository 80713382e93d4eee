// Package hazards implements trap placement, delayed visibility, expiry
// and trigger-on-arrival effects.
package hazards

import (
	"time"

	"github.com/cbodonnell/moralmaze/pkg/game/charges"
	"github.com/cbodonnell/moralmaze/pkg/game/constants"
	"github.com/cbodonnell/moralmaze/pkg/game/types"
)

// Bounds is the part of the maze hazards need.
type Bounds interface {
	InBounds(c types.Coord) bool
}

type Effect string

const (
	EffectDamage Effect = "damage"
	EffectHeal   Effect = "heal"
)

// Outcome reports a triggered trap. Amount and Effect are reported even
// when a shield suppressed the health change.
type Outcome struct {
	Type         types.TrapType `json:"type"`
	Position     types.Coord    `json:"position"`
	Effect       Effect         `json:"effect"`
	Amount       int            `json:"amount"`
	Roll         float64        `json:"roll"`
	HeroHealth   int            `json:"hero_health"`
	ShieldActive bool           `json:"shield_active"`
}

// Place puts a trap of type t on c, replacing any trap already there, and
// spends one trap charge.
func Place(s *types.SessionState, b Bounds, t types.TrapType, c types.Coord, now time.Time) (types.Trap, error) {
	parsed, ok := types.ParseTrapType(string(t))
	if !ok {
		return types.Trap{}, types.Invalid(types.ReasonInvalidTrapType, "unknown trap type %q", t)
	}
	t = parsed
	charges.Trap.Replenish(&s.TrapCharges, now)
	if s.TrapCharges.Charges <= 0 {
		return types.Trap{}, types.Exhausted("trap")
	}
	if !b.InBounds(c) {
		return types.Trap{}, types.Invalid(types.ReasonOutOfBounds, "trap target %s is out of bounds", c)
	}
	charges.Trap.Consume(&s.TrapCharges, now)

	trap := types.Trap{
		Type:      t,
		Position:  c,
		PlacedAt:  now,
		RevealAt:  now.Add(constants.TrapRevealDelay),
		ExpiresAt: now.Add(constants.TrapLifetime),
	}
	kept := s.Traps[:0]
	for _, existing := range s.Traps {
		if existing.Position != c {
			kept = append(kept, existing)
		}
	}
	s.Traps = append(kept, trap)
	return trap, nil
}

// Expire drops every trap whose lifetime has ended and returns how many
// were dropped. Expired traps never trigger.
func Expire(s *types.SessionState, now time.Time) int {
	kept := s.Traps[:0]
	for _, t := range s.Traps {
		if !t.Expired(now) {
			kept = append(kept, t)
		}
	}
	dropped := len(s.Traps) - len(kept)
	s.Traps = kept
	return dropped
}

// Visible returns the traps the presentation layer may see at now.
func Visible(s *types.SessionState, now time.Time) []types.Trap {
	out := []types.Trap{}
	for _, t := range s.Traps {
		if t.Visible(now) {
			out = append(out, t)
		}
	}
	return out
}

// Trigger fires the live trap on c, if any, using roll in [0,1) to pick
// the effect. A mine damages when roll < 0.8, a medkit heals when roll < 0.8.
func Trigger(s *types.SessionState, c types.Coord, now time.Time, roll float64) *Outcome {
	idx := -1
	for i, t := range s.Traps {
		if t.Position == c && !t.Expired(now) {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}
	trap := s.Traps[idx]
	s.Traps = append(s.Traps[:idx], s.Traps[idx+1:]...)

	primary := roll < constants.TrapPrimaryEffectChance
	effect := EffectHeal
	if (trap.Type == types.TrapMine) == primary {
		effect = EffectDamage
	}
	amount := constants.TrapHeal
	if effect == EffectDamage {
		amount = constants.TrapDamage
	}

	shielded := s.ShieldActive(now)
	if !shielded {
		if effect == EffectDamage {
			s.SetHealth(s.HeroHealth - amount)
		} else {
			s.SetHealth(s.HeroHealth + amount)
		}
	}
	return &Outcome{
		Type:         trap.Type,
		Position:     c,
		Effect:       effect,
		Amount:       amount,
		Roll:         roll,
		HeroHealth:   s.HeroHealth,
		ShieldActive: shielded,
	}
}
