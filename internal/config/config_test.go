package config_test

import (
	"context"
	"errors"
	"testing"

	"github.com/yan-jin/CyclingCalculator/internal/config"
	"github.com/yan-jin/CyclingCalculator/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestConfigDefaults(t *testing.T) {
	Convey("Given a default config", t, func() {
		cfg := config.New()

		Convey("Then the documented calculator defaults are present", func() {
			So(cfg.DefaultFTP, ShouldEqual, 300)
			So(cfg.DefaultDistanceKm, ShouldEqual, 180)
			So(cfg.RiderWeight, ShouldEqual, 75)
			So(cfg.BikeWeight, ShouldEqual, 10)
			So(cfg.FrontalArea, ShouldEqual, 0.5)
			So(cfg.DragCoefficient, ShouldEqual, 0.51)
			So(cfg.DrivetrainLossPct, ShouldEqual, 2)
			So(cfg.RollingResistanceCoeff, ShouldEqual, 0.005)
			So(cfg.AirDensity, ShouldEqual, 1.22)
		})

		Convey("And the solver defaults match the search contract", func() {
			So(cfg.SolverMaxIterations, ShouldEqual, 100)
			So(cfg.SolverEpsilon, ShouldEqual, 1e-6)
			So(cfg.SolverBoundKmh, ShouldEqual, 1000)
		})

		Convey("And Profile mirrors the configured fields", func() {
			So(cfg.Profile(), ShouldResemble, model.DefaultProfile())
		})
	})
}

func TestLoad(t *testing.T) {
	Convey("Given environment overrides", t, func() {
		t.Setenv("CYCLECALC_ADDR", ":8080")
		t.Setenv("CYCLECALC_QUEUE_SIZE", "50")
		t.Setenv("CYCLECALC_WORKER_COUNT", "3")
		t.Setenv("CYCLECALC_DEFAULT_FTP", "250")

		Convey("When loading", func() {
			cfg, err := config.Load(context.Background())

			Convey("Then env values win over defaults", func() {
				So(err, ShouldBeNil)
				So(cfg.Addr, ShouldEqual, ":8080")
				So(cfg.QueueSize, ShouldEqual, 50)
				So(cfg.WorkerCount, ShouldEqual, 3)
				So(cfg.DefaultFTP, ShouldEqual, 250)
			})

			Convey("And untouched fields keep their defaults", func() {
				So(err, ShouldBeNil)
				So(cfg.DefaultDistanceKm, ShouldEqual, 180)
				So(cfg.StoreSize, ShouldEqual, 10000)
			})
		})
	})

	Convey("Given an invalid queue size", t, func() {
		t.Setenv("CYCLECALC_QUEUE_SIZE", "-1")

		Convey("When loading", func() {
			_, err := config.Load(context.Background())

			Convey("Then validation rejects the config", func() {
				So(errors.Is(err, config.ErrInvalidConfig), ShouldBeTrue)
			})
		})
	})
}
