// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/google/uuid"

	jobqueue "github.com/yan-jin/CyclingCalculator/internal/adapters/mq/queue"
	workerpool "github.com/yan-jin/CyclingCalculator/internal/adapters/mq/worker"
	"github.com/yan-jin/CyclingCalculator/internal/adapters/repository"
	"github.com/yan-jin/CyclingCalculator/internal/domain/dedupe"
	"github.com/yan-jin/CyclingCalculator/internal/domain/model"
	"github.com/yan-jin/CyclingCalculator/internal/domain/solver"
	"github.com/yan-jin/CyclingCalculator/internal/domain/sweep"
	"github.com/yan-jin/CyclingCalculator/internal/domain/types"
	"github.com/yan-jin/CyclingCalculator/pkg/logger"
	"github.com/yan-jin/CyclingCalculator/pkg/metrics"
)

// SubmitResult reports where a submitted request landed.
type SubmitResult struct {
	JobID     string
	Duplicate bool
}

// Service wires the sweep engine, job queue, workers, result store, and
// fingerprint tracker behind the API's dependency interfaces.
type Service struct {
	mu sync.RWMutex

	// Core components
	engine   *sweep.Engine
	store    repository.Store
	tracker  dedupe.Tracker
	jobQueue jobqueue.Queue
	pool     *workerpool.Pool

	// Configuration
	workerCount      int
	queueSize        int
	storeSize        int
	dedupeSize       int
	sweepParallelism int
	solverOpts       []solver.Option

	// State
	started bool

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithWorkerCount sets the number of sweep workers.
func WithWorkerCount(count int) Option {
	return func(s *Service) {
		if count > 0 {
			s.workerCount = count
		}
	}
}

// WithQueueSize sets the maximum size of the job queue.
func WithQueueSize(size int) Option {
	return func(s *Service) {
		if size > 0 {
			s.queueSize = size
		}
	}
}

// WithStoreSize bounds the number of retained sweep results.
func WithStoreSize(size int) Option {
	return func(s *Service) {
		if size > 0 {
			s.storeSize = size
		}
	}
}

// WithDedupeSize bounds the request-fingerprint tracker.
func WithDedupeSize(size int) Option {
	return func(s *Service) {
		if size > 0 {
			s.dedupeSize = size
		}
	}
}

// WithSweepParallelism bounds concurrent power points within one sweep.
func WithSweepParallelism(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.sweepParallelism = n
		}
	}
}

// WithSolverOptions forwards options to the velocity solver.
func WithSolverOptions(opts ...solver.Option) Option {
	return func(s *Service) {
		s.solverOpts = append(s.solverOpts, opts...)
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// New constructs a Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		workerCount:      runtime.NumCPU(),
		queueSize:        1000,
		storeSize:        10000,
		dedupeSize:       10000,
		sweepParallelism: 1,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start initializes and starts the service components.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.logger.Info(ctx, "starting calculator service...")

	s.engine = sweep.New(
		sweep.WithInverter(solver.New(s.solverOpts...)),
		sweep.WithParallelism(s.sweepParallelism),
	)
	s.store = repository.NewMemStore(
		repository.WithMaxRecords(s.storeSize),
	)
	s.tracker = dedupe.NewInMemoryTracker(
		dedupe.WithMaxSize(s.dedupeSize),
	)
	s.jobQueue = jobqueue.NewInMemoryQueue(
		jobqueue.WithCapacity(s.queueSize),
	)

	s.pool = workerpool.NewPool(s.workerCount, s.jobQueue, s.runJob, s.store)
	s.pool.Start(ctx)

	s.started = true
	s.logger.Info(ctx, "calculator service started",
		logger.Int("workers", s.workerCount),
		logger.Int("queueSize", s.queueSize),
		logger.Int("storeSize", s.storeSize),
	)
	return nil
}

// Stop gracefully shuts down the service.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}

	s.logger.Info(context.Background(), "stopping calculator service...")

	if s.jobQueue != nil {
		_ = s.jobQueue.Close()
	}
	if s.pool != nil {
		s.pool.Stop()
	}

	s.started = false
	s.logger.Info(context.Background(), "calculator service stopped")
}

// runJob is the computation each worker runs per dequeued job.
func (s *Service) runJob(ctx context.Context, j jobqueue.Job) ([]types.Point, error) {
	return s.engine.Sweep(ctx, j.Request.FTP, j.Request.RaceDistanceKm, j.Request.Profile)
}

// Submit registers a sweep request for asynchronous computation. Identical
// requests collapse onto the job already covering them.
func (s *Service) Submit(ctx context.Context, req model.SweepRequest) (SubmitResult, error) {
	fp := req.Fingerprint()

	if id, ok := s.tracker.Lookup(ctx, fp); ok {
		if _, err := s.store.Get(ctx, id); err == nil {
			metrics.RecordJobDuplicate()
			s.logger.Debug(ctx, "duplicate submission collapsed",
				logger.String("jobID", id),
				logger.String("fingerprint", fp),
			)
			return SubmitResult{JobID: id, Duplicate: true}, nil
		}
		// The tracked job was evicted from the store; recompute.
		s.tracker.Forget(ctx, fp)
	}

	id := uuid.NewString()
	rec := repository.Record{
		ID:        id,
		Status:    repository.StatusPending,
		Request:   req,
		CreatedAt: time.Now(),
	}
	if err := s.store.Create(ctx, rec); err != nil {
		return SubmitResult{}, fmt.Errorf("creating job record: %w", err)
	}

	if !s.jobQueue.Enqueue(ctx, jobqueue.Job{ID: id, Request: req}) {
		_ = s.store.Fail(ctx, id, ErrBackpressure)
		return SubmitResult{}, ErrBackpressure
	}

	s.tracker.Record(ctx, fp, id)
	metrics.RecordJobSubmitted()
	metrics.UpdateQueueSize(s.jobQueue.Len(ctx))
	return SubmitResult{JobID: id}, nil
}

// Result returns the current state of a submitted job.
func (s *Service) Result(ctx context.Context, id string) (repository.Record, error) {
	return s.store.Get(ctx, id)
}

// SweepNow computes a sweep synchronously, bypassing the job queue.
func (s *Service) SweepNow(ctx context.Context, req model.SweepRequest) ([]types.Point, error) {
	return s.engine.Sweep(ctx, req.FTP, req.RaceDistanceKm, req.Profile)
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ctx := context.Background()
	stats := map[string]interface{}{
		"started":     s.started,
		"workerCount": s.workerCount,
		"queueSize":   s.queueSize,
	}

	if s.started {
		queueLen := s.jobQueue.Len(ctx)
		storedJobs := s.store.Count(ctx)

		stats["queueLength"] = queueLen
		stats["storedJobs"] = storedJobs
		stats["trackedFingerprints"] = s.tracker.Size()

		metrics.UpdateQueueSize(queueLen)
		metrics.UpdateStoreRecords(storedJobs)
		metrics.UpdateWorkerCount(s.workerCount)
	}

	return stats
}
