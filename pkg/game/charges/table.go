package charges

import (
	"time"

	"github.com/cbodonnell/moralmaze/pkg/game/constants"
)

var (
	AllyJump = Spec{
		Name:     "ally_jump",
		Cap:      4,
		Interval: 15 * time.Second,
		PerTick:  1,
	}
	Freeze = Spec{
		Name:         "freeze",
		Cap:          3,
		InitialDelay: 10 * time.Second,
		InitialBonus: 2,
		Interval:     30 * time.Second,
		PerTick:      1,
	}
	Expand = Spec{
		Name:         "expand",
		Cap:          5,
		InitialDelay: 10 * time.Second,
		InitialBonus: 2,
		Interval:     20 * time.Second,
		PerTick:      2,
	}
	Lift = Spec{
		Name:           "lift",
		Cap:            2,
		InitialDelay:   10 * time.Second,
		InitialBonus:   1,
		Interval:       20 * time.Second,
		PerTick:        1,
		ResetOnConsume: true,
	}
	Blink = Spec{
		Name:           "blink",
		Cap:            2,
		Interval:       20 * time.Second,
		PerTick:        1,
		ResetOnConsume: true,
	}
	Trap = Spec{
		Name:           "trap",
		Cap:            2,
		Interval:       20 * time.Second,
		PerTick:        1,
		ResetOnConsume: true,
	}

	HeroJump = AgeSpec{
		Name:      "hero_jump",
		Threshold: constants.HeroJumpAgeStep,
		PerStep:   1,
	}
	HeroEscape = AgeSpec{
		Name:      "hero_escape",
		Threshold: constants.HeroEscapeAgeStep,
		PerStep:   1,
	}
	Shield = AgeSpec{
		Name:      "shield",
		Threshold: constants.ShieldAgeStep,
		PerStep:   1,
		Cap:       constants.ShieldCap,
	}
)

// Dissolve returns the dissolve spec for a configured cap.
func Dissolve(limit int) Spec {
	if limit <= 0 {
		limit = constants.DefaultDissolveCap
	}
	return Spec{
		Name:           "dissolve",
		Cap:            limit,
		Interval:       15 * time.Second,
		PerTick:        1,
		ResetOnConsume: true,
	}
}
