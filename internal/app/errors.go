package service

import "errors"

// Service errors.
var (
	// ErrBackpressure indicates the job queue is full and the submission
	// was rejected.
	ErrBackpressure = errors.New("job queue is full")
)
