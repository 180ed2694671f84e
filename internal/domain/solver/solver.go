// Package solver inverts the power model: given a target power it finds the
// velocity that requires exactly that power, via bisection over the
// effective-power scalar.
package solver

import (
	"math"

	"github.com/yan-jin/CyclingCalculator/internal/domain/model"
	"github.com/yan-jin/CyclingCalculator/internal/domain/physics"
)

// Default search configuration constants.
const (
	// defaultBoundKmh is the half-width of the velocity search interval.
	defaultBoundKmh = 1000.0

	// defaultEpsilon is the convergence tolerance on the power scalar, Watts.
	defaultEpsilon = 1e-6

	// defaultMaxIterations caps the number of refinements. The loop aborts
	// once the counter exceeds this value, bounding the search at
	// maxIterations+1 power evaluations after the initial one.
	defaultMaxIterations = 100
)

// Result carries the solved velocity together with search diagnostics.
type Result struct {
	VelocityKmh float64
	Iterations  int
	Converged   bool
}

// Solver performs the bisection search. The zero value is not usable;
// construct with New.
type Solver struct {
	lowerKmh      float64
	upperKmh      float64
	epsilon       float64
	maxIterations int
}

// New creates a Solver with the default bounds, tolerance, and iteration cap.
func New(opts ...Option) *Solver {
	s := &Solver{
		lowerKmh:      -defaultBoundKmh,
		upperKmh:      defaultBoundKmh,
		epsilon:       defaultEpsilon,
		maxIterations: defaultMaxIterations,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Solve finds the velocity whose effective power matches targetPower.
//
// The search assumes the effective-power scalar is non-decreasing in
// velocity over the positive half of the interval, which holds for
// physically sensible profiles. Non-convergence within the iteration cap is
// not an error: the best current midpoint is returned with Converged false,
// and callers must treat it as approximate. The same applies near
// targetPower = 0 and to pathological profiles (e.g. a negative drag
// coefficient) where monotonicity breaks down.
func (s *Solver) Solve(targetPower float64, p model.RiderProfile) Result {
	lower := s.lowerKmh
	upper := s.upperKmh

	mid := (lower + upper) / 2.0
	breakdown := physics.Power(mid, p)

	iterations := 0
	for {
		if math.Abs(breakdown.Effective()-targetPower) < s.epsilon {
			return Result{VelocityKmh: mid, Iterations: iterations, Converged: true}
		}

		if breakdown.Effective() > targetPower {
			upper = mid
		} else {
			lower = mid
		}

		mid = (upper + lower) / 2.0
		breakdown = physics.Power(mid, p)

		iterations++
		if iterations > s.maxIterations {
			return Result{VelocityKmh: mid, Iterations: iterations, Converged: false}
		}
	}
}

// VelocityFor is the plain inversion: the velocity in km/h that produces
// targetPower, approximate when the search does not converge.
func (s *Solver) VelocityFor(targetPower float64, p model.RiderProfile) float64 {
	return s.Solve(targetPower, p).VelocityKmh
}
