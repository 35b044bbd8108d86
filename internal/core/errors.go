package core

import "errors"

var (
	// ErrInvalidDimension reports a grid or window size that is not positive.
	ErrInvalidDimension = errors.New("core: dimension must be positive")

	// ErrInvalidIndex reports a catalog index outside [0, count).
	ErrInvalidIndex = errors.New("core: index out of range")

	// ErrUnknownSim reports a registry lookup for a name nobody registered.
	ErrUnknownSim = errors.New("core: unknown simulation")
)
