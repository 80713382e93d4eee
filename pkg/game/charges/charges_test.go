package charges

import (
	"testing"
	"time"

	"github.com/cbodonnell/moralmaze/pkg/game/types"
	"github.com/stretchr/testify/assert"
)

var t0 = time.Date(2025, 11, 3, 12, 0, 0, 0, time.UTC)

func at(seconds float64) time.Time {
	return t0.Add(time.Duration(seconds * float64(time.Second)))
}

func TestSpec_Replenish_keepsRemainder(t *testing.T) {
	m := types.Meter{Charges: 0, LastTick: t0}

	granted := AllyJump.Replenish(&m, at(46))

	assert.Equal(t, 3, granted)
	assert.Equal(t, 3, m.Charges)
	assert.Equal(t, at(45), m.LastTick)

	// the leftover second counts toward the next interval
	assert.Equal(t, 0, AllyJump.Replenish(&m, at(59)))
	assert.Equal(t, 1, AllyJump.Replenish(&m, at(60)))
	assert.Equal(t, 4, m.Charges)
	assert.Equal(t, at(60), m.LastTick)
}

func TestSpec_Replenish_startsClock(t *testing.T) {
	var m types.Meter
	assert.Equal(t, 0, Blink.Replenish(&m, at(5)))
	assert.Equal(t, at(5), m.LastTick)
	assert.Equal(t, 1, Blink.Replenish(&m, at(25)))
}

func TestSpec_Replenish_table(t *testing.T) {
	tests := []struct {
		name        string
		spec        Spec
		meter       types.Meter
		now         float64
		wantCharges int
		wantTick    float64
		wantInitial bool
	}{
		{
			name:        "ally jump capped at four",
			spec:        AllyJump,
			meter:       types.Meter{Charges: 2, LastTick: t0},
			now:         600,
			wantCharges: 4,
			wantTick:    600,
		},
		{
			name:        "freeze waits for initial delay",
			spec:        Freeze,
			meter:       types.Meter{LastTick: t0},
			now:         9.9,
			wantCharges: 0,
			wantTick:    0,
		},
		{
			name:        "freeze initial bonus resets the clock",
			spec:        Freeze,
			meter:       types.Meter{LastTick: t0},
			now:         12,
			wantCharges: 2,
			wantTick:    12,
			wantInitial: true,
		},
		{
			name:        "freeze steady state",
			spec:        Freeze,
			meter:       types.Meter{Charges: 0, LastTick: t0, InitialGranted: true},
			now:         65,
			wantCharges: 2,
			wantTick:    60,
			wantInitial: true,
		},
		{
			name:        "expand pays two per tick",
			spec:        Expand,
			meter:       types.Meter{Charges: 0, LastTick: t0, InitialGranted: true},
			now:         41,
			wantCharges: 4,
			wantTick:    40,
			wantInitial: true,
		},
		{
			name:        "expand initial bonus",
			spec:        Expand,
			meter:       types.Meter{Charges: 4, LastTick: t0},
			now:         10,
			wantCharges: 5,
			wantTick:    10,
			wantInitial: true,
		},
		{
			name:        "lift initial bonus is one",
			spec:        Lift,
			meter:       types.Meter{LastTick: t0},
			now:         10,
			wantCharges: 1,
			wantTick:    10,
			wantInitial: true,
		},
		{
			name:        "dissolve default cap",
			spec:        Dissolve(0),
			meter:       types.Meter{Charges: 1, LastTick: t0},
			now:         100,
			wantCharges: 2,
			wantTick:    90,
		},
		{
			name:        "dissolve custom cap",
			spec:        Dissolve(4),
			meter:       types.Meter{Charges: 1, LastTick: t0},
			now:         100,
			wantCharges: 4,
			wantTick:    90,
		},
		{
			name:        "trap below interval",
			spec:        Trap,
			meter:       types.Meter{Charges: 0, LastTick: t0},
			now:         19,
			wantCharges: 0,
			wantTick:    0,
		},
		{
			name:        "clock skew backwards grants nothing",
			spec:        Trap,
			meter:       types.Meter{Charges: 1, LastTick: at(100)},
			now:         50,
			wantCharges: 1,
			wantTick:    100,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := tt.meter
			tt.spec.Replenish(&m, at(tt.now))
			assert.Equal(t, tt.wantCharges, m.Charges)
			assert.Equal(t, at(tt.wantTick), m.LastTick)
			assert.Equal(t, tt.wantInitial, m.InitialGranted)
		})
	}
}

func TestSpec_Replenish_idempotentAndMonotonic(t *testing.T) {
	for _, spec := range []Spec{AllyJump, Freeze, Expand, Lift, Blink, Trap, Dissolve(2)} {
		t.Run(spec.Name, func(t *testing.T) {
			m := types.Meter{LastTick: t0}
			prev := 0
			for s := 0.0; s <= 300; s += 3.7 {
				spec.Replenish(&m, at(s))
				once := m
				spec.Replenish(&m, at(s))
				assert.Equal(t, once, m, "second evaluation at %.1fs changed the meter", s)
				assert.GreaterOrEqual(t, m.Charges, prev)
				assert.LessOrEqual(t, m.Charges, spec.Cap)
				assert.GreaterOrEqual(t, m.Charges, 0)
				prev = m.Charges
			}
		})
	}
}

func TestSpec_Consume(t *testing.T) {
	m := types.Meter{Charges: 0, LastTick: t0}
	assert.False(t, Trap.Consume(&m, at(5)))
	assert.Equal(t, t0, m.LastTick)

	assert.True(t, Trap.Consume(&m, at(21)))
	assert.Equal(t, 0, m.Charges)
	assert.Equal(t, at(21), m.LastTick, "trap restarts its clock when spent")

	j := types.Meter{Charges: 1, LastTick: t0}
	assert.True(t, AllyJump.Consume(&j, at(14)))
	assert.Equal(t, t0, j.LastTick, "ally jump keeps its clock when spent")
}

func TestSpec_Remaining(t *testing.T) {
	m := types.Meter{LastTick: t0}
	assert.Equal(t, 10*time.Second, Freeze.Remaining(m, t0))
	m.InitialGranted = true
	assert.Equal(t, 20*time.Second, Freeze.Remaining(m, at(10)))
	assert.Equal(t, time.Duration(0), Freeze.Remaining(m, at(45)))
}

func TestAgeSpec_Replenish(t *testing.T) {
	tests := []struct {
		name           string
		spec           AgeSpec
		meter          types.AgeMeter
		age            int
		wantGranted    int
		wantCharges    int
		wantCheckpoint int
	}{
		{
			name:           "hero jump 9 to 11 crosses nothing",
			spec:           HeroJump,
			meter:          types.AgeMeter{Charges: 2, Checkpoint: 10},
			age:            11,
			wantGranted:    0,
			wantCharges:    2,
			wantCheckpoint: 10,
		},
		{
			name:           "hero jump 9 to 16 crosses one threshold",
			spec:           HeroJump,
			meter:          types.AgeMeter{Charges: 2, Checkpoint: 10},
			age:            16,
			wantGranted:    1,
			wantCharges:    3,
			wantCheckpoint: 15,
		},
		{
			name:           "hero jump is uncapped",
			spec:           HeroJump,
			meter:          types.AgeMeter{Charges: 2, Checkpoint: 10},
			age:            90,
			wantGranted:    16,
			wantCharges:    18,
			wantCheckpoint: 90,
		},
		{
			name:           "escape granted at age ten from zero checkpoint",
			spec:           HeroEscape,
			meter:          types.AgeMeter{Charges: 0, Checkpoint: 0},
			age:            10,
			wantGranted:    1,
			wantCharges:    1,
			wantCheckpoint: 10,
		},
		{
			name:           "shield capped at one",
			spec:           Shield,
			meter:          types.AgeMeter{Charges: 0, Checkpoint: 0},
			age:            65,
			wantGranted:    1,
			wantCharges:    1,
			wantCheckpoint: 60,
		},
		{
			name:           "shield full advances checkpoint without grant",
			spec:           Shield,
			meter:          types.AgeMeter{Charges: 1, Checkpoint: 0},
			age:            20,
			wantGranted:    0,
			wantCharges:    1,
			wantCheckpoint: 20,
		},
		{
			name:           "age below checkpoint never regresses",
			spec:           HeroEscape,
			meter:          types.AgeMeter{Charges: 1, Checkpoint: 30},
			age:            12,
			wantGranted:    0,
			wantCharges:    1,
			wantCheckpoint: 30,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := tt.meter
			got := tt.spec.Replenish(&m, tt.age)
			assert.Equal(t, tt.wantGranted, got)
			assert.Equal(t, tt.wantCharges, m.Charges)
			assert.Equal(t, tt.wantCheckpoint, m.Checkpoint)

			// a second pass at the same age is a no-op
			assert.Equal(t, 0, tt.spec.Replenish(&m, tt.age))
		})
	}
}

func TestAgeSpec_Consume(t *testing.T) {
	m := types.AgeMeter{Charges: 0, Checkpoint: 0}
	assert.True(t, HeroEscape.Consume(&m, 10))
	assert.False(t, HeroEscape.Consume(&m, 19))
	assert.True(t, HeroEscape.Consume(&m, 20))
}
