// Package charges computes ability charge regeneration from elapsed
// wall-clock time or from age thresholds. Every function here is a pure
// function of the meter, the spec and the supplied now/age, so repeated
// evaluation never double-grants.
package charges

import (
	"time"

	"github.com/cbodonnell/moralmaze/pkg/game/types"
)

// Spec describes a time-gated ability.
type Spec struct {
	Name string
	Cap  int
	// Interval is the steady-state regeneration period.
	Interval time.Duration
	PerTick  int
	// InitialBonus, when positive, is paid once InitialDelay has elapsed
	// since the clock started, before steady-state ticks begin.
	InitialDelay time.Duration
	InitialBonus int
	// ResetOnConsume restarts the clock whenever a charge is spent.
	ResetOnConsume bool
}

func (s Spec) TwoPhase() bool {
	return s.InitialBonus > 0
}

// Replenish brings m up to date at now and returns the number of charges
// granted. A meter whose clock has not started is started at now.
// Whole intervals are consumed from LastTick; the remainder carries over.
func (s Spec) Replenish(m *types.Meter, now time.Time) int {
	if m.LastTick.IsZero() {
		m.LastTick = now
		return 0
	}
	if now.Before(m.LastTick) {
		return 0
	}
	elapsed := now.Sub(m.LastTick)

	if s.TwoPhase() && !m.InitialGranted {
		if elapsed < s.InitialDelay {
			return 0
		}
		granted := s.add(m, s.InitialBonus)
		m.InitialGranted = true
		m.LastTick = now
		return granted
	}

	if s.Interval <= 0 || elapsed < s.Interval {
		return 0
	}
	ticks := elapsed / s.Interval
	granted := s.add(m, int(ticks)*s.PerTick)
	m.LastTick = m.LastTick.Add(ticks * s.Interval)
	return granted
}

// Consume replenishes m and then spends one charge. It reports false,
// leaving m otherwise untouched, when no charge is available.
func (s Spec) Consume(m *types.Meter, now time.Time) bool {
	s.Replenish(m, now)
	if m.Charges <= 0 {
		return false
	}
	m.Charges--
	if s.ResetOnConsume {
		m.LastTick = now
	}
	return true
}

// Clamp forces the counter into [0, Cap].
func (s Spec) Clamp(m *types.Meter) {
	m.Charges = clamp(m.Charges, s.Cap)
}

// Remaining returns the time until the next tick or initial bonus.
func (s Spec) Remaining(m types.Meter, now time.Time) time.Duration {
	if m.LastTick.IsZero() {
		return s.nextPeriod(m)
	}
	left := m.LastTick.Add(s.nextPeriod(m)).Sub(now)
	if left < 0 {
		return 0
	}
	return left
}

func (s Spec) nextPeriod(m types.Meter) time.Duration {
	if s.TwoPhase() && !m.InitialGranted {
		return s.InitialDelay
	}
	return s.Interval
}

func (s Spec) add(m *types.Meter, n int) int {
	before := max(0, m.Charges)
	m.Charges = clamp(before+n, s.Cap)
	return max(0, m.Charges-before)
}

// AgeSpec describes an age-gated ability: PerStep charges are granted for
// every Threshold years crossed since the checkpoint. Cap <= 0 means uncapped.
type AgeSpec struct {
	Name      string
	Threshold int
	PerStep   int
	Cap       int
}

// Replenish ratchets the checkpoint forward to age and returns the charges
// granted. The checkpoint never moves backwards.
func (s AgeSpec) Replenish(m *types.AgeMeter, age int) int {
	if s.Threshold <= 0 || age < m.Checkpoint+s.Threshold {
		return 0
	}
	steps := (age - m.Checkpoint) / s.Threshold
	m.Checkpoint += steps * s.Threshold

	before := max(0, m.Charges)
	after := before + steps*s.PerStep
	if s.Cap > 0 {
		after = min(after, s.Cap)
	}
	m.Charges = after
	return max(0, after-before)
}

// Consume replenishes m at age and spends one charge when available.
func (s AgeSpec) Consume(m *types.AgeMeter, age int) bool {
	s.Replenish(m, age)
	if m.Charges <= 0 {
		return false
	}
	m.Charges--
	return true
}

func clamp(v, limit int) int {
	if v < 0 {
		return 0
	}
	if limit > 0 && v > limit {
		return limit
	}
	return v
}
