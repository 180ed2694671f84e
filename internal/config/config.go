// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults; Load layers file and env.
// - External errors must be wrapped via this package's error helpers.
package config

import (
	"runtime"

	"github.com/yan-jin/CyclingCalculator/internal/domain/model"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// QueueSize bounds the in-memory sweep job queue.
	QueueSize int `koanf:"queue_size"`

	// WorkerCount sets the number of sweep workers.
	WorkerCount int `koanf:"worker_count"`

	// StoreSize bounds the number of retained sweep results.
	StoreSize int `koanf:"store_size"`

	// DedupeSize bounds the request-fingerprint tracker.
	DedupeSize int `koanf:"dedupe_size"`

	// SweepParallelism bounds concurrent power points within one sweep.
	SweepParallelism int `koanf:"sweep_parallelism"`

	// SolverMaxIterations caps bisection refinements per solve.
	SolverMaxIterations int `koanf:"solver_max_iterations"`

	// SolverEpsilon is the convergence tolerance on power, Watts.
	SolverEpsilon float64 `koanf:"solver_epsilon"`

	// SolverBoundKmh is the half-width of the velocity search interval.
	SolverBoundKmh float64 `koanf:"solver_bound_kmh"`

	// DefaultFTP and DefaultDistanceKm fill absent request fields.
	DefaultFTP        float64 `koanf:"default_ftp"`
	DefaultDistanceKm float64 `koanf:"default_distance_km"`

	// Default rider profile values, also used to fill absent request fields.
	RiderWeight            float64 `koanf:"rider_weight"`
	BikeWeight             float64 `koanf:"bike_weight"`
	FrontalArea            float64 `koanf:"frontal_area"`
	DragCoefficient        float64 `koanf:"drag_coefficient"`
	DrivetrainLossPct      float64 `koanf:"drivetrain_loss_pct"`
	RollingResistanceCoeff float64 `koanf:"rolling_resistance_coeff"`
	HillGradePct           float64 `koanf:"hill_grade_pct"`
	Headwind               float64 `koanf:"headwind"`
	AirDensity             float64 `koanf:"air_density"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:            "info",
		Addr:                ":9080",
		QueueSize:           1000,
		WorkerCount:         runtime.NumCPU(),
		StoreSize:           10000,
		DedupeSize:          10000,
		SweepParallelism:    1,
		SolverMaxIterations: 100,
		SolverEpsilon:       1e-6,
		SolverBoundKmh:      1000,

		DefaultFTP:        model.DefaultFTPWatts,
		DefaultDistanceKm: model.DefaultRaceDistanceKm,

		RiderWeight:            model.DefaultRiderWeightKg,
		BikeWeight:             model.DefaultBikeWeightKg,
		FrontalArea:            model.DefaultFrontalAreaM2,
		DragCoefficient:        model.DefaultDragCoefficient,
		DrivetrainLossPct:      model.DefaultDrivetrainLossPct,
		RollingResistanceCoeff: model.DefaultRollingResistanceCoeff,
		HillGradePct:           model.DefaultHillGradePct,
		Headwind:               model.DefaultHeadwindMs,
		AirDensity:             model.DefaultAirDensityKgM3,
	}
}

// Profile builds the default rider profile from the configured values.
func (c *Config) Profile() model.RiderProfile {
	return model.RiderProfile{
		RiderWeight:            c.RiderWeight,
		BikeWeight:             c.BikeWeight,
		FrontalArea:            c.FrontalArea,
		DragCoefficient:        c.DragCoefficient,
		DrivetrainLossPct:      c.DrivetrainLossPct,
		RollingResistanceCoeff: c.RollingResistanceCoeff,
		HillGradePct:           c.HillGradePct,
		Headwind:               c.Headwind,
		AirDensity:             c.AirDensity,
	}
}
