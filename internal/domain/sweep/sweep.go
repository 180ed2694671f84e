// Package sweep drives the velocity solver across a power range and derives
// the race duration and training stress for each integer power value.
package sweep

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/yan-jin/CyclingCalculator/internal/domain/model"
	"github.com/yan-jin/CyclingCalculator/internal/domain/solver"
	"github.com/yan-jin/CyclingCalculator/internal/domain/types"
	"github.com/yan-jin/CyclingCalculator/pkg/metrics"
)

// Sweep range constants. The range runs from 40% of FTP up to, but not
// including, 130% of FTP, both ends rounded up to whole Watts.
const (
	lowPowerFraction  = 0.4
	highPowerFraction = 1.3

	// tssScale converts IF^2 * hours into Training Stress Score points.
	tssScale = 100.0
)

// Inverter finds the velocity that produces a target power. Satisfied by
// *solver.Solver.
type Inverter interface {
	Solve(targetPower float64, p model.RiderProfile) solver.Result
}

// Engine computes sweep series. Each invocation allocates fresh transient
// results, so one Engine may serve concurrent sweeps.
type Engine struct {
	inverter    Inverter
	parallelism int
}

// New creates an Engine backed by a default solver.
func New(opts ...Option) *Engine {
	e := &Engine{
		inverter:    solver.New(),
		parallelism: 1,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Sweep produces the ordered-by-power series of (power, velocity, duration,
// TSS) tuples for powers in [ceil(0.4*ftp), ceil(1.3*ftp)).
//
// A solved velocity of exactly zero makes the race duration undefined; the
// sweep fails loudly with a wrapped ErrZeroVelocity naming the power point
// rather than emitting a non-finite duration. Negative velocities (possible
// for implausible profiles) yield negative durations that propagate
// unmodified.
//
// Power points are independent, so they may be computed concurrently; the
// output always preserves ascending power order.
func (e *Engine) Sweep(ctx context.Context, ftp, raceDistanceKm float64, profile model.RiderProfile) ([]types.Point, error) {
	start := time.Now()

	first := int(math.Ceil(lowPowerFraction * ftp))
	last := int(math.Ceil(highPowerFraction * ftp)) // half-open upper bound
	if last <= first {
		return []types.Point{}, nil
	}
	n := last - first

	points := make([]types.Point, n)
	errs := make([]error, n)

	sem := make(chan struct{}, e.parallelism)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			wg.Wait()
			return nil, fmt.Errorf("sweep canceled: %w", err)
		}
		wg.Add(1)
		sem <- struct{}{}
		go func(i int) {
			defer wg.Done()
			defer func() { <-sem }()
			points[i], errs[i] = e.point(first+i, ftp, raceDistanceKm, profile)
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			metrics.RecordSweepFailed()
			return nil, err
		}
	}

	metrics.RecordSweepComputed()
	metrics.RecordSweepDuration(float64(time.Since(start).Milliseconds()))
	return points, nil
}

// point computes a single sweep entry.
func (e *Engine) point(power int, ftp, raceDistanceKm float64, profile model.RiderProfile) (types.Point, error) {
	result := e.inverter.Solve(float64(power), profile)

	metrics.RecordSolverIterations(float64(result.Iterations))
	if !result.Converged {
		metrics.RecordSolverNonConvergence()
	}

	if result.VelocityKmh == 0 {
		return types.Point{}, fmt.Errorf("power %d W: %w", power, ErrZeroVelocity)
	}

	intensityFactor := float64(power) / ftp
	durationHours := raceDistanceKm / result.VelocityKmh

	return types.Point{
		Power:         power,
		SpeedKmh:      result.VelocityKmh,
		DurationHours: durationHours,
		DurationText:  FormatDuration(durationHours),
		TSS:           intensityFactor * intensityFactor * durationHours * tssScale,
	}, nil
}
