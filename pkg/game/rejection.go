package game

import "github.com/cbodonnell/moralmaze/pkg/game/types"

// Rejection is returned by every operation that refuses its input.
type Rejection = types.Rejection

var (
	ErrValidation        = types.ErrValidation
	ErrResourceExhausted = types.ErrResourceExhausted
	ErrStaleReference    = types.ErrStaleReference
)
