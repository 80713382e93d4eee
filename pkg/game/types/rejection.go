package types

import (
	"errors"
	"fmt"
)

// RejectionKind classifies why an operation was refused.
type RejectionKind string

const (
	KindValidation        RejectionKind = "validation"
	KindResourceExhausted RejectionKind = "resource_exhausted"
	KindStaleReference    RejectionKind = "stale_reference"
)

// Reason codes carried by rejections.
const (
	ReasonInvalidStep       = "invalid_step"
	ReasonOutOfBounds       = "out_of_bounds"
	ReasonBlocked           = "blocked"
	ReasonInvalidDirection  = "invalid_direction"
	ReasonNoDestination     = "no_destination"
	ReasonNoCharges         = "no_charges"
	ReasonInvalidTrapType   = "invalid_trap_type"
	ReasonOutOfReach        = "out_of_reach"
	ReasonLiftNotArmed      = "lift_not_armed"
	ReasonNoBlinkTarget     = "no_blink_target"
	ReasonMissingAnswer     = "missing_answer"
	ReasonNotActiveDecision = "not_active_decision"
	ReasonQuestionNotFound  = "question_not_found"
	ReasonInvalidMutation   = "invalid_wall_mutation"
	ReasonAllyMismatch      = "ally_position_mismatch"
)

var (
	ErrValidation        = errors.New("validation failed")
	ErrResourceExhausted = errors.New("resource exhausted")
	ErrStaleReference    = errors.New("stale reference")
)

// Rejection is a non-fatal refusal of an operation. The operation that
// returns one has not changed any state.
type Rejection struct {
	Kind    RejectionKind `json:"kind"`
	Reason  string        `json:"reason"`
	Message string        `json:"message"`
}

func (r *Rejection) Error() string {
	if r.Message != "" {
		return fmt.Sprintf("%s: %s", r.Reason, r.Message)
	}
	return r.Reason
}

// Is lets errors.Is match a rejection against the kind sentinels.
func (r *Rejection) Is(target error) bool {
	switch target {
	case ErrValidation:
		return r.Kind == KindValidation
	case ErrResourceExhausted:
		return r.Kind == KindResourceExhausted
	case ErrStaleReference:
		return r.Kind == KindStaleReference
	}
	return false
}

func Invalid(reason, format string, args ...interface{}) *Rejection {
	return &Rejection{Kind: KindValidation, Reason: reason, Message: fmt.Sprintf(format, args...)}
}

func Exhausted(ability string) *Rejection {
	return &Rejection{Kind: KindResourceExhausted, Reason: ReasonNoCharges, Message: fmt.Sprintf("no %s charges left", ability)}
}

func Stale(reason, format string, args ...interface{}) *Rejection {
	return &Rejection{Kind: KindStaleReference, Reason: reason, Message: fmt.Sprintf(format, args...)}
}

// AsRejection unwraps err into a rejection when it is one.
func AsRejection(err error) (*Rejection, bool) {
	var r *Rejection
	if errors.As(err, &r) {
		return r, true
	}
	return nil, false
}
