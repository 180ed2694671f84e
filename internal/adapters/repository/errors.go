package repository

import "errors"

// Sentinel kinds for store errors.
var (
	ErrNotFound    = errors.New("sweep job not found")
	ErrDuplicateID = errors.New("sweep job id already exists")
)
