package types

import "time"

// Meter is the charge counter of a time-gated ability.
type Meter struct {
	Charges int
	// LastTick is the reference point for elapsed time. Zero means the
	// clock has not started yet.
	LastTick time.Time
	// InitialGranted is set once a two-phase ability has paid its opening bonus.
	InitialGranted bool
}

// AgeMeter is the charge counter of an age-gated ability.
type AgeMeter struct {
	Charges int
	// Checkpoint is the age at which the last threshold was crossed.
	Checkpoint int
}
