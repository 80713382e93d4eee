package types

import (
	"strings"
	"time"
)

type TrapType string

const (
	TrapMine   TrapType = "mine"
	TrapMedkit TrapType = "medkit"
)

// ParseTrapType accepts a trap type in any case, ignoring surrounding space.
func ParseTrapType(s string) (TrapType, bool) {
	switch t := TrapType(strings.ToLower(strings.TrimSpace(s))); t {
	case TrapMine, TrapMedkit:
		return t, true
	default:
		return "", false
	}
}

// Trap is a hazard placed on a tile. ExpiresAt > RevealAt > PlacedAt.
type Trap struct {
	Type      TrapType  `json:"type"`
	Position  Coord     `json:"position"`
	PlacedAt  time.Time `json:"placed_at"`
	RevealAt  time.Time `json:"reveal_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (t Trap) Visible(now time.Time) bool {
	return !now.Before(t.RevealAt) && !t.Expired(now)
}

func (t Trap) Expired(now time.Time) bool {
	return !now.Before(t.ExpiresAt)
}
