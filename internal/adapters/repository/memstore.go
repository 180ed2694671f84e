package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/yan-jin/CyclingCalculator/internal/domain/types"
	"github.com/yan-jin/CyclingCalculator/pkg/metrics"
)

const defaultMaxRecords = 10000

// MemStore implements Store with an in-memory map and FIFO eviction of the
// oldest records once the bound is reached. Sweep results are keyed lookups
// with no ordering requirement, so a map is all the structure needed.
type MemStore struct {
	mu         sync.RWMutex
	records    map[string]Record
	order      []string // ids in insertion order, for eviction
	maxRecords int
}

// NewMemStore creates a bounded in-memory store.
func NewMemStore(opts ...Option) *MemStore {
	s := &MemStore{
		maxRecords: defaultMaxRecords,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.records = make(map[string]Record, s.maxRecords)
	return s
}

// Create inserts a pending record, evicting the oldest record if full.
func (s *MemStore) Create(_ context.Context, rec Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.records[rec.ID]; exists {
		return fmt.Errorf("id %s: %w", rec.ID, ErrDuplicateID)
	}

	if len(s.order) >= s.maxRecords {
		oldest := s.order[0]
		s.order = s.order[1:]
		delete(s.records, oldest)
		metrics.RecordStoreEviction()
	}

	s.records[rec.ID] = rec
	s.order = append(s.order, rec.ID)
	metrics.UpdateStoreRecords(len(s.records))
	return nil
}

// Complete marks a job done and attaches its series.
func (s *MemStore) Complete(_ context.Context, id string, points []types.Point) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, exists := s.records[id]
	if !exists {
		return fmt.Errorf("id %s: %w", id, ErrNotFound)
	}
	rec.Status = StatusDone
	rec.Points = points
	rec.CompletedAt = time.Now()
	s.records[id] = rec
	return nil
}

// Fail marks a job failed with the cause.
func (s *MemStore) Fail(_ context.Context, id string, cause error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, exists := s.records[id]
	if !exists {
		return fmt.Errorf("id %s: %w", id, ErrNotFound)
	}
	rec.Status = StatusFailed
	if cause != nil {
		rec.Error = cause.Error()
	}
	rec.CompletedAt = time.Now()
	s.records[id] = rec
	return nil
}

// Get returns the record for id.
func (s *MemStore) Get(_ context.Context, id string) (Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, exists := s.records[id]
	if !exists {
		return Record{}, fmt.Errorf("id %s: %w", id, ErrNotFound)
	}
	return rec, nil
}

// Count returns the number of records currently held.
func (s *MemStore) Count(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}
