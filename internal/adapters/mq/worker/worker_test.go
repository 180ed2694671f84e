package worker_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/yan-jin/CyclingCalculator/internal/adapters/mq/queue"
	"github.com/yan-jin/CyclingCalculator/internal/adapters/mq/worker"
	"github.com/yan-jin/CyclingCalculator/internal/domain/model"
	"github.com/yan-jin/CyclingCalculator/internal/domain/types"
	"github.com/yan-jin/CyclingCalculator/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

// recordingResults captures Complete/Fail calls for assertions.
type recordingResults struct {
	mu        sync.Mutex
	completed map[string][]types.Point
	failed    map[string]error
}

func newRecordingResults() *recordingResults {
	return &recordingResults{
		completed: make(map[string][]types.Point),
		failed:    make(map[string]error),
	}
}

func (r *recordingResults) Complete(_ context.Context, id string, points []types.Point) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.completed[id] = points
	return nil
}

func (r *recordingResults) Fail(_ context.Context, id string, cause error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failed[id] = cause
	return nil
}

func (r *recordingResults) snapshot() (int, int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.completed), len(r.failed)
}

func waitFor(cond func() bool) bool {
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return true
		}
		time.Sleep(5 * time.Millisecond)
	}
	return cond()
}

func TestWorker(t *testing.T) {
	if err := logger.Init(); err != nil {
		t.Fatalf("logger init: %v", err)
	}

	Convey("Given a worker over a queue of jobs", t, func() {
		q := queue.NewInMemoryQueue(queue.WithCapacity(10))
		results := newRecordingResults()
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		Convey("When the sweep succeeds", func() {
			engine := func(_ context.Context, j queue.Job) ([]types.Point, error) {
				return []types.Point{{Power: 120}}, nil
			}
			w := worker.NewWorker(q, engine, results, worker.WithName("test-worker"))
			go w.Run(ctx)

			So(q.Enqueue(ctx, queue.Job{ID: "ok-1", Request: model.DefaultSweepRequest()}), ShouldBeTrue)

			Convey("Then the result is recorded as complete", func() {
				So(waitFor(func() bool { done, _ := results.snapshot(); return done == 1 }), ShouldBeTrue)
				So(results.completed["ok-1"], ShouldHaveLength, 1)
				So(w.Shutdown(context.Background()), ShouldBeNil)
			})
		})

		Convey("When the worker is shut down twice", func() {
			engine := func(_ context.Context, j queue.Job) ([]types.Point, error) {
				return nil, nil
			}
			w := worker.NewWorker(q, engine, results)
			go w.Run(ctx)

			Convey("Then the second call is a harmless no-op", func() {
				So(w.Shutdown(context.Background()), ShouldBeNil)
				So(func() { _ = w.Shutdown(context.Background()) }, ShouldNotPanic)
			})
		})

		Convey("When the sweep fails", func() {
			boom := errors.New("zero velocity")
			engine := func(_ context.Context, j queue.Job) ([]types.Point, error) {
				return nil, boom
			}
			w := worker.NewWorker(q, engine, results)
			go w.Run(ctx)

			So(q.Enqueue(ctx, queue.Job{ID: "bad-1"}), ShouldBeTrue)

			Convey("Then the failure is recorded with its cause", func() {
				So(waitFor(func() bool { _, failed := results.snapshot(); return failed == 1 }), ShouldBeTrue)
				So(errors.Is(results.failed["bad-1"], boom), ShouldBeTrue)
				So(w.Shutdown(context.Background()), ShouldBeNil)
			})
		})
	})

	Convey("Given a pool of workers", t, func() {
		q := queue.NewInMemoryQueue(queue.WithCapacity(100))
		results := newRecordingResults()
		engine := func(_ context.Context, j queue.Job) ([]types.Point, error) {
			return []types.Point{}, nil
		}
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		pool := worker.NewPool(4, q, engine, results)
		pool.Start(ctx)

		Convey("When many jobs are enqueued", func() {
			for i := 0; i < 20; i++ {
				So(q.Enqueue(ctx, queue.Job{ID: "job-" + string(rune('a'+i))}), ShouldBeTrue)
			}

			Convey("Then every job completes", func() {
				So(pool.Size(), ShouldEqual, 4)
				So(waitFor(func() bool { done, _ := results.snapshot(); return done == 20 }), ShouldBeTrue)
				pool.Stop()
			})

			Convey("And stopping the pool twice does not panic", func() {
				So(waitFor(func() bool { done, _ := results.snapshot(); return done == 20 }), ShouldBeTrue)
				pool.Stop()
				So(pool.Stop, ShouldNotPanic)
			})
		})
	})
}
