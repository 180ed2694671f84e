// Package worker runs queued sweep jobs and writes their results.
package worker

import (
	"context"
	"fmt"
	"runtime"
	"strconv"
	"sync"
	"time"

	"github.com/yan-jin/CyclingCalculator/internal/adapters/mq/queue"
	"github.com/yan-jin/CyclingCalculator/internal/domain/types"
	"github.com/yan-jin/CyclingCalculator/pkg/logger"
	"github.com/yan-jin/CyclingCalculator/pkg/metrics"
)

// Default worker configuration constants.
const (
	defaultWorkerMultiplier = 2 // multiplier for runtime.NumCPU()
	workerShutdownTimeout   = 5 * time.Second
)

// Results records the outcome of a job.
type Results interface {
	Complete(ctx context.Context, id string, points []types.Point) error
	Fail(ctx context.Context, id string, cause error) error
}

// Jobs defines how workers receive work.
type Jobs interface {
	Dequeue(ctx context.Context) <-chan queue.Job
}

// Worker consumes jobs from the queue until stopped.
type Worker struct {
	jobs    Jobs
	engine  SweepFunc
	results Results
	name    string

	// Shutdown control
	shutdown chan struct{}
	stopOnce sync.Once
	done     chan struct{}

	// Logging
	logger logger.Logger
}

// SweepFunc is the computation a worker runs per job.
type SweepFunc func(ctx context.Context, j queue.Job) ([]types.Point, error)

// NewWorker creates a worker reading from jobs and writing to results.
func NewWorker(jobs Jobs, engine SweepFunc, results Results, opts ...Option) *Worker {
	w := &Worker{
		jobs:     jobs,
		engine:   engine,
		results:  results,
		name:     "worker",
		shutdown: make(chan struct{}),
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.logger == nil {
		w.logger = logger.Get().Named(w.name)
	}
	return w
}

// Run starts the worker loop until ctx is canceled or the queue closes.
func (w *Worker) Run(ctx context.Context) {
	defer close(w.done)

	jobChan := w.jobs.Dequeue(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-w.shutdown:
			return
		case job, ok := <-jobChan:
			if !ok {
				return
			}
			if err := w.process(ctx, job); err != nil {
				w.logger.Error(ctx, "job processing failed",
					logger.String("jobID", job.ID),
					logger.Error(err),
				)
			}
		}
	}
}

// Shutdown gracefully stops the worker. Safe to call more than once.
func (w *Worker) Shutdown(ctx context.Context) error {
	w.stopOnce.Do(func() { close(w.shutdown) })

	select {
	case <-w.done:
		return nil
	case <-ctx.Done():
		w.logger.Warn(ctx, "shutdown timed out")
		return fmt.Errorf("shutdown timed out: %w", ctx.Err())
	}
}

// process runs one sweep job and records its outcome.
func (w *Worker) process(ctx context.Context, job queue.Job) error {
	start := time.Now()
	defer func() {
		metrics.RecordWorkerProcessingLatency(float64(time.Since(start).Milliseconds()))
	}()

	points, err := w.engine(ctx, job)
	if err != nil {
		metrics.RecordWorkerError()
		if failErr := w.results.Fail(ctx, job.ID, err); failErr != nil {
			return fmt.Errorf("recording failure of job %s: %w", job.ID, failErr)
		}
		return fmt.Errorf("sweep for job %s: %w", job.ID, err)
	}

	if err := w.results.Complete(ctx, job.ID, points); err != nil {
		metrics.RecordWorkerError()
		return fmt.Errorf("recording result of job %s: %w", job.ID, err)
	}

	w.logger.Debug(ctx, "job completed",
		logger.String("jobID", job.ID),
		logger.Int("points", len(points)),
	)
	return nil
}

// Pool manages a fixed set of workers reading from one queue.
type Pool struct {
	workers []*Worker
}

// NewPool creates workerCount workers (NumCPU-scaled when non-positive).
func NewPool(workerCount int, jobs Jobs, engine SweepFunc, results Results) *Pool {
	if workerCount < 1 {
		workerCount = runtime.NumCPU() * defaultWorkerMultiplier
	}

	p := &Pool{
		workers: make([]*Worker, workerCount),
	}
	for i := range p.workers {
		p.workers[i] = NewWorker(jobs, engine, results,
			WithName("worker-"+strconv.Itoa(i)),
		)
	}

	metrics.UpdateWorkerCount(workerCount)
	return p
}

// Start launches all workers.
func (p *Pool) Start(ctx context.Context) {
	for _, w := range p.workers {
		go w.Run(ctx)
	}
}

// Size returns the number of workers in the pool.
func (p *Pool) Size() int {
	return len(p.workers)
}

// Stop signals all workers and waits briefly for them to finish. Workers
// already shut down individually are skipped.
func (p *Pool) Stop() {
	ctx, cancel := context.WithTimeout(context.Background(), workerShutdownTimeout)
	defer cancel()

	for _, w := range p.workers {
		w.stopOnce.Do(func() { close(w.shutdown) })
	}
	for _, w := range p.workers {
		select {
		case <-w.done:
		case <-ctx.Done():
		}
	}
}
