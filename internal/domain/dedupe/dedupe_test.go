package dedupe_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/yan-jin/CyclingCalculator/internal/domain/dedupe"
	. "github.com/smartystreets/goconvey/convey"
)

func TestTracker(t *testing.T) {
	Convey("Given a fresh in-memory tracker", t, func() {
		tracker := dedupe.NewInMemoryTracker()
		ctx := context.Background()

		Convey("When looking up an unknown fingerprint", func() {
			_, ok := tracker.Lookup(ctx, "missing")

			Convey("Then nothing is found", func() {
				So(ok, ShouldBeFalse)
				So(tracker.Size(), ShouldEqual, 0)
			})
		})

		Convey("When recording a fingerprint", func() {
			tracker.Record(ctx, "fp-1", "job-1")

			Convey("Then lookups return its job id", func() {
				id, ok := tracker.Lookup(ctx, "fp-1")
				So(ok, ShouldBeTrue)
				So(id, ShouldEqual, "job-1")
				So(tracker.Size(), ShouldEqual, 1)
			})

			Convey("And re-recording replaces the job id", func() {
				tracker.Record(ctx, "fp-1", "job-2")
				id, _ := tracker.Lookup(ctx, "fp-1")
				So(id, ShouldEqual, "job-2")
				So(tracker.Size(), ShouldEqual, 1)
			})

			Convey("And forgetting removes it", func() {
				tracker.Forget(ctx, "fp-1")
				_, ok := tracker.Lookup(ctx, "fp-1")
				So(ok, ShouldBeFalse)
			})
		})
	})

	Convey("Given a tracker bounded to three fingerprints", t, func() {
		tracker := dedupe.NewInMemoryTracker(dedupe.WithMaxSize(3))
		ctx := context.Background()

		Convey("When recording four distinct fingerprints", func() {
			for i := 1; i <= 4; i++ {
				tracker.Record(ctx, fmt.Sprintf("fp-%d", i), fmt.Sprintf("job-%d", i))
			}

			Convey("Then the oldest fingerprint was evicted", func() {
				_, ok := tracker.Lookup(ctx, "fp-1")
				So(ok, ShouldBeFalse)
				So(tracker.Size(), ShouldEqual, 3)
			})

			Convey("And the newer ones survive", func() {
				for i := 2; i <= 4; i++ {
					_, ok := tracker.Lookup(ctx, fmt.Sprintf("fp-%d", i))
					So(ok, ShouldBeTrue)
				}
			})
		})

		Convey("When a fingerprint is forgotten and recorded again before the ring fills", func() {
			tracker.Record(ctx, "fp-1", "job-1")
			tracker.Forget(ctx, "fp-1")
			tracker.Record(ctx, "fp-1", "job-2")
			tracker.Record(ctx, "fp-2", "job-3")
			tracker.Record(ctx, "fp-3", "job-4")

			Convey("Then it occupies a single slot and is not evicted early", func() {
				id, ok := tracker.Lookup(ctx, "fp-1")
				So(ok, ShouldBeTrue)
				So(id, ShouldEqual, "job-2")
				So(tracker.Size(), ShouldEqual, 3)
			})

			Convey("And a fourth fingerprint evicts it exactly once", func() {
				tracker.Record(ctx, "fp-4", "job-5")
				_, ok := tracker.Lookup(ctx, "fp-1")
				So(ok, ShouldBeFalse)
				So(tracker.Size(), ShouldEqual, 3)
				for i := 2; i <= 4; i++ {
					_, ok := tracker.Lookup(ctx, fmt.Sprintf("fp-%d", i))
					So(ok, ShouldBeTrue)
				}
			})
		})
	})
}
