// Package repository defines the sweep result store interface and errors.
package repository

import (
	"context"
	"time"

	"github.com/yan-jin/CyclingCalculator/internal/domain/model"
	"github.com/yan-jin/CyclingCalculator/internal/domain/types"
)

// Status describes the lifecycle of a sweep job.
type Status string

const (
	StatusPending Status = "pending"
	StatusDone    Status = "done"
	StatusFailed  Status = "failed"
)

// Record is one sweep job with its request and, once computed, its series.
type Record struct {
	ID          string
	Status      Status
	Request     model.SweepRequest
	Points      []types.Point
	Error       string
	CreatedAt   time.Time
	CompletedAt time.Time
}

// Store provides keyed access to sweep job records.
type Store interface {
	// Create inserts a pending record. Returns ErrDuplicateID if the id is
	// already present.
	Create(ctx context.Context, rec Record) error

	// Complete marks a job done and attaches its series.
	// Returns ErrNotFound for unknown ids.
	Complete(ctx context.Context, id string, points []types.Point) error

	// Fail marks a job failed with the cause.
	// Returns ErrNotFound for unknown ids.
	Fail(ctx context.Context, id string, cause error) error

	// Get returns the record for id, or ErrNotFound.
	Get(ctx context.Context, id string) (Record, error)

	// Count returns the number of records currently held.
	Count(ctx context.Context) int
}
