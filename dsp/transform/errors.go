package transform

import "errors"

var (
	// ErrNotPowerOfTwo is returned when a fast transform input length is
	// neither zero nor a power of two.
	ErrNotPowerOfTwo = errors.New("transform: length is not a power of two")

	// ErrInvalidRange is returned when a direct transform bin range lies
	// outside [0, N] or has start > end.
	ErrInvalidRange = errors.New("transform: invalid frequency range")

	// ErrUnknownStrategy is returned by Lookup for an unregistered name.
	ErrUnknownStrategy = errors.New("transform: unknown strategy")
)
