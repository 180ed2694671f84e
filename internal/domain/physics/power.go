package physics

import (
	"github.com/yan-jin/CyclingCalculator/internal/domain/model"
)

// Power converts a ground velocity into the power required to sustain it.
//
// The drivetrain is modeled as lossy only while propelling: when the wheel
// power is positive, the legs must produce wheelPower / (1 - loss%) to
// deliver it. When the wheel power is zero or negative the rider is
// coasting or braking, the drivetrain is assumed loss-free, and the
// negative leg power is reported as a non-negative braking power instead.
//
// The two branches encode a real regime switch (driving vs. braking), not
// an implementation detail; the required-power curve has a kink, not a
// smooth joint, at zero power. Do not "simplify" the sign handling.
func Power(velocityKmh float64, p model.RiderProfile) model.PowerBreakdown {
	totalForce := Forces(velocityKmh, p).Total()

	wheelPower := totalForce * velocityKmh * kmhToMs

	drivetrainFrac := 1.0
	if wheelPower > 0 {
		drivetrainFrac -= p.DrivetrainLossPct / 100.0
	}
	legPower := wheelPower / drivetrainFrac

	if legPower > 0 {
		return model.PowerBreakdown{
			LegPower:       legPower,
			WheelPower:     wheelPower,
			DrivetrainLoss: legPower - wheelPower,
		}
	}
	return model.PowerBreakdown{
		BrakingPower: -legPower,
	}
}
