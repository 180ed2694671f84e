package queue_test

import (
	"context"
	"testing"

	"github.com/yan-jin/CyclingCalculator/internal/adapters/mq/queue"
	"github.com/yan-jin/CyclingCalculator/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestInMemoryQueue(t *testing.T) {
	Convey("Given a queue with capacity two", t, func() {
		q := queue.NewInMemoryQueue(queue.WithCapacity(2))
		ctx := context.Background()
		job := queue.Job{ID: "job-1", Request: model.DefaultSweepRequest()}

		Convey("When enqueuing within capacity", func() {
			So(q.Enqueue(ctx, job), ShouldBeTrue)
			So(q.Enqueue(ctx, queue.Job{ID: "job-2"}), ShouldBeTrue)

			Convey("Then the length reflects the queued jobs", func() {
				So(q.Len(ctx), ShouldEqual, 2)
			})

			Convey("And a third enqueue reports backpressure", func() {
				So(q.Enqueue(ctx, queue.Job{ID: "job-3"}), ShouldBeFalse)
			})

			Convey("And dequeue yields jobs in order", func() {
				jobs := q.Dequeue(ctx)
				first := <-jobs
				So(first.ID, ShouldEqual, "job-1")
				second := <-jobs
				So(second.ID, ShouldEqual, "job-2")
			})
		})

		Convey("When the queue is closed", func() {
			So(q.Close(), ShouldBeNil)

			Convey("Then enqueues are rejected", func() {
				So(q.IsClosed(), ShouldBeTrue)
				So(q.Enqueue(ctx, job), ShouldBeFalse)
			})

			Convey("And closing again returns the sentinel", func() {
				So(q.Close(), ShouldEqual, queue.ErrAlreadyClosed)
			})

			Convey("And the dequeue channel drains then closes", func() {
				_, open := <-q.Dequeue(ctx)
				So(open, ShouldBeFalse)
			})
		})
	})
}
