package state

import "errors"

// Error taxonomy surfaced to callers. Validation failures are synchronous,
// atomic, and mutate nothing.
var (
	ErrInvalidAmount        = errors.New("invalid amount")
	ErrInvalidThreshold     = errors.New("threshold outside policy bounds")
	ErrInvalidRange         = errors.New("invalid liquidation range")
	ErrPositionNotActive    = errors.New("position not active")
	ErrUnauthorized         = errors.New("caller is not the position owner")
	ErrArithmeticSaturation = errors.New("arithmetic saturation")
)
