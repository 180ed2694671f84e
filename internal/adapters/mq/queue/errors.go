package queue

import "errors"

// Sentinel kinds for queue errors.
var (
	ErrAlreadyClosed = errors.New("queue already closed")
)
