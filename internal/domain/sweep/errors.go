package sweep

import "errors"

// Sentinel kinds for sweep errors.
var (
	// ErrZeroVelocity marks a power point whose solved velocity is exactly
	// zero, which leaves the race duration undefined.
	ErrZeroVelocity = errors.New("solved velocity is zero")
)
