package physics_test

import (
	"math"
	"testing"

	"github.com/yan-jin/CyclingCalculator/internal/domain/model"
	"github.com/yan-jin/CyclingCalculator/internal/domain/physics"
	. "github.com/smartystreets/goconvey/convey"
)

func TestForces(t *testing.T) {
	Convey("Given the default rider profile", t, func() {
		profile := model.DefaultProfile()

		Convey("When the rider is stationary on flat ground with no wind", func() {
			forces := physics.Forces(0, profile)

			Convey("Then gravity and drag vanish and only rolling resistance remains", func() {
				So(forces.Gravity, ShouldEqual, 0)
				So(forces.Drag, ShouldEqual, 0)
				So(forces.Rolling, ShouldAlmostEqual, 9.8067*85*0.005, 1e-9)
			})
		})

		Convey("When the grade and headwind are zero and the rider is stationary with zero rolling resistance", func() {
			profile.RollingResistanceCoeff = 0
			forces := physics.Forces(0, profile)

			Convey("Then all three forces are exactly zero", func() {
				So(forces.Gravity, ShouldEqual, 0)
				So(forces.Rolling, ShouldEqual, 0)
				So(forces.Drag, ShouldEqual, 0)
				So(forces.Total(), ShouldEqual, 0)
			})
		})

		Convey("When riding at 30 km/h", func() {
			forces := physics.Forces(30, profile)

			Convey("Then drag matches the quadratic airspeed term", func() {
				airspeed := 30.0 * 1000.0 / 3600.0
				want := 0.5 * 0.5 * 0.51 * 1.22 * airspeed * airspeed
				So(forces.Drag, ShouldAlmostEqual, want, 1e-9)
			})

			Convey("And rolling resistance opposes forward motion", func() {
				So(forces.Rolling, ShouldBeGreaterThan, 0)
			})
		})

		Convey("When rolling backwards", func() {
			forward := physics.Forces(10, profile)
			backward := physics.Forces(-10, profile)

			Convey("Then rolling resistance flips sign to oppose travel", func() {
				So(backward.Rolling, ShouldAlmostEqual, -forward.Rolling, 1e-12)
			})
		})

		Convey("When a tailwind exceeds the ground speed", func() {
			profile.Headwind = -20 // m/s pushing the rider
			forces := physics.Forces(10, profile)

			Convey("Then drag assists instead of resisting", func() {
				So(forces.Drag, ShouldBeLessThan, 0)
			})
		})

		Convey("When climbing a 10% grade", func() {
			profile.HillGradePct = 10
			forces := physics.Forces(20, profile)

			Convey("Then gravity resists proportionally to sin(atan(grade))", func() {
				want := 9.8067 * 85 * math.Sin(math.Atan(0.10))
				So(forces.Gravity, ShouldAlmostEqual, want, 1e-9)
			})
		})

		Convey("When descending a 10% grade", func() {
			profile.HillGradePct = -10
			forces := physics.Forces(20, profile)

			Convey("Then gravity assists", func() {
				So(forces.Gravity, ShouldBeLessThan, 0)
			})
		})
	})
}

func TestPower(t *testing.T) {
	Convey("Given the default rider profile", t, func() {
		profile := model.DefaultProfile()

		Convey("When riding at a speed that requires propulsion", func() {
			breakdown := physics.Power(30, profile)

			Convey("Then the driving branch is populated and braking is zero", func() {
				So(breakdown.LegPower, ShouldBeGreaterThan, 0)
				So(breakdown.WheelPower, ShouldBeGreaterThan, 0)
				So(breakdown.BrakingPower, ShouldEqual, 0)
			})

			Convey("And drivetrain loss is the leg/wheel gap under a 2% loss", func() {
				So(breakdown.LegPower, ShouldAlmostEqual, breakdown.WheelPower/0.98, 1e-9)
				So(breakdown.DrivetrainLoss, ShouldAlmostEqual, breakdown.LegPower-breakdown.WheelPower, 1e-12)
				So(breakdown.DrivetrainLoss, ShouldBeGreaterThan, 0)
			})

			Convey("And the effective scalar equals the leg power", func() {
				So(breakdown.Effective(), ShouldEqual, breakdown.LegPower)
			})
		})

		Convey("When coasting down a steep descent", func() {
			profile.HillGradePct = -10
			breakdown := physics.Power(40, profile)

			Convey("Then only braking power is reported, as a non-negative quantity", func() {
				So(breakdown.BrakingPower, ShouldBeGreaterThan, 0)
				So(breakdown.LegPower, ShouldEqual, 0)
				So(breakdown.WheelPower, ShouldEqual, 0)
				So(breakdown.DrivetrainLoss, ShouldEqual, 0)
			})

			Convey("And the effective scalar is the negated braking power", func() {
				So(breakdown.Effective(), ShouldAlmostEqual, -breakdown.BrakingPower, 1e-12)
			})
		})

		Convey("When stationary", func() {
			breakdown := physics.Power(0, profile)

			Convey("Then no power is required in either regime", func() {
				So(breakdown.LegPower, ShouldEqual, 0)
				So(breakdown.BrakingPower, ShouldEqual, 0)
				So(breakdown.Effective(), ShouldEqual, 0)
			})
		})

		Convey("When sampling the effective power across increasing velocities", func() {
			prev := math.Inf(-1)
			monotonic := true
			for v := 0.0; v <= 1000.0; v += 10.0 {
				got := physics.Power(v, profile).Effective()
				if got < prev {
					monotonic = false
					break
				}
				prev = got
			}

			Convey("Then the scalar is non-decreasing over forward velocities", func() {
				So(monotonic, ShouldBeTrue)
			})
		})

		Convey("When pedaling backwards on flat ground", func() {
			slow := physics.Power(-5, profile).Effective()
			fast := physics.Power(-10, profile).Effective()

			// Rolling resistance and drag both oppose backward travel, so
			// leg power is positive and grows with backward speed. The
			// effective scalar therefore decreases as velocity rises
			// through the negatives, which is why the monotonicity above
			// only holds on the forward half.
			Convey("Then effective power is positive and rises with backward speed", func() {
				So(slow, ShouldBeGreaterThan, 0)
				So(fast, ShouldBeGreaterThan, slow)
			})
		})
	})
}
