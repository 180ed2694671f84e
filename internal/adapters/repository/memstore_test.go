package repository_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/yan-jin/CyclingCalculator/internal/adapters/repository"
	"github.com/yan-jin/CyclingCalculator/internal/domain/model"
	"github.com/yan-jin/CyclingCalculator/internal/domain/types"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMemStore(t *testing.T) {
	Convey("Given an empty store", t, func() {
		store := repository.NewMemStore()
		ctx := context.Background()

		Convey("When fetching an unknown id", func() {
			_, err := store.Get(ctx, "nope")

			Convey("Then ErrNotFound is returned", func() {
				So(errors.Is(err, repository.ErrNotFound), ShouldBeTrue)
			})
		})

		Convey("When creating a pending record", func() {
			rec := repository.Record{
				ID:        "job-1",
				Status:    repository.StatusPending,
				Request:   model.DefaultSweepRequest(),
				CreatedAt: time.Now(),
			}
			So(store.Create(ctx, rec), ShouldBeNil)

			Convey("Then it is retrievable as pending", func() {
				got, err := store.Get(ctx, "job-1")
				So(err, ShouldBeNil)
				So(got.Status, ShouldEqual, repository.StatusPending)
				So(store.Count(ctx), ShouldEqual, 1)
			})

			Convey("And creating the same id again fails", func() {
				err := store.Create(ctx, rec)
				So(errors.Is(err, repository.ErrDuplicateID), ShouldBeTrue)
			})

			Convey("And completing it attaches the series", func() {
				points := []types.Point{{Power: 120, SpeedKmh: 25}}
				So(store.Complete(ctx, "job-1", points), ShouldBeNil)

				got, err := store.Get(ctx, "job-1")
				So(err, ShouldBeNil)
				So(got.Status, ShouldEqual, repository.StatusDone)
				So(got.Points, ShouldResemble, points)
				So(got.CompletedAt.IsZero(), ShouldBeFalse)
			})

			Convey("And failing it records the cause", func() {
				So(store.Fail(ctx, "job-1", errors.New("solver blew up")), ShouldBeNil)

				got, err := store.Get(ctx, "job-1")
				So(err, ShouldBeNil)
				So(got.Status, ShouldEqual, repository.StatusFailed)
				So(got.Error, ShouldContainSubstring, "solver blew up")
			})
		})

		Convey("When completing or failing unknown ids", func() {
			So(errors.Is(store.Complete(ctx, "ghost", nil), repository.ErrNotFound), ShouldBeTrue)
			So(errors.Is(store.Fail(ctx, "ghost", errors.New("x")), repository.ErrNotFound), ShouldBeTrue)
		})
	})

	Convey("Given a store bounded to two records", t, func() {
		store := repository.NewMemStore(repository.WithMaxRecords(2))
		ctx := context.Background()

		Convey("When creating three records", func() {
			for i := 1; i <= 3; i++ {
				rec := repository.Record{ID: fmt.Sprintf("job-%d", i), Status: repository.StatusPending}
				So(store.Create(ctx, rec), ShouldBeNil)
			}

			Convey("Then the oldest record was evicted", func() {
				_, err := store.Get(ctx, "job-1")
				So(errors.Is(err, repository.ErrNotFound), ShouldBeTrue)
				So(store.Count(ctx), ShouldEqual, 2)
			})
		})
	})
}
