// Package physics implements the steady-state force and power model for a
// cyclist riding a fixed grade into a fixed headwind.
//
// Everything here is pure arithmetic: no validation, no side effects. A
// physically nonsensical profile (zero mass, negative drag coefficient)
// yields NaN/Inf or non-monotonic results which propagate to the caller.
package physics

import (
	"math"

	"github.com/yan-jin/CyclingCalculator/internal/domain/model"
)

const (
	// gravityAccel is the standard gravitational acceleration in m/s^2.
	gravityAccel = 9.8067

	// kmhToMs converts velocities from km/h to m/s.
	kmhToMs = 1000.0 / 3600.0
)

// Forces computes the three resistive/assistive forces acting on the rider
// at the given ground velocity.
//
// Gravity depends only on the grade. Rolling resistance has constant
// magnitude but always opposes the direction of travel, so it flips sign
// for negative velocities. Drag grows with the square of the effective
// airspeed (ground velocity plus headwind) and opposes the relative
// airflow, so it flips sign when the effective airspeed is negative.
func Forces(velocityKmh float64, p model.RiderProfile) model.ForceTriple {
	slope := math.Atan(p.HillGradePct / 100.0)

	gravity := gravityAccel * p.TotalWeight() * math.Sin(slope)

	rolling := gravityAccel * p.TotalWeight() * math.Cos(slope) * p.RollingResistanceCoeff
	if velocityKmh < 0 {
		rolling = -rolling
	}

	airspeed := (velocityKmh + p.Headwind) * kmhToMs
	drag := 0.5 * p.FrontalArea * p.DragCoefficient * p.AirDensity * airspeed * airspeed
	if airspeed < 0 {
		drag = -drag
	}

	return model.ForceTriple{
		Gravity: gravity,
		Rolling: rolling,
		Drag:    drag,
	}
}
