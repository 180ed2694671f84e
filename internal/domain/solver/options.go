// Package solver inverts the power model via bisection.
package solver

// Option applies a configuration option to the Solver.
type Option func(*Solver)

// WithBounds sets the velocity search interval in km/h.
func WithBounds(lowerKmh, upperKmh float64) Option {
	return func(s *Solver) {
		if lowerKmh < upperKmh {
			s.lowerKmh = lowerKmh
			s.upperKmh = upperKmh
		}
	}
}

// WithEpsilon sets the convergence tolerance on the power scalar, in Watts.
func WithEpsilon(epsilon float64) Option {
	return func(s *Solver) {
		if epsilon > 0 {
			s.epsilon = epsilon
		}
	}
}

// WithMaxIterations caps the number of bisection refinements. Small caps
// make non-convergence deterministic, which the tests rely on.
func WithMaxIterations(n int) Option {
	return func(s *Solver) {
		if n > 0 {
			s.maxIterations = n
		}
	}
}
