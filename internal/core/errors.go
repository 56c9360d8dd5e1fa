package core

import "errors"

var (
	// ErrPrecondition is returned when an operation runs before the call it depends on.
	ErrPrecondition = errors.New("precondition violation")
	ErrOverflow     = errors.New("integer overflow")
)
