// Package model contains domain models passed between layers.
package model

// Default rider and environment parameters. These mirror the values the
// parameter form pre-fills for a typical triathlon effort.
const (
	DefaultRiderWeightKg          = 75.0
	DefaultBikeWeightKg           = 10.0
	DefaultFrontalAreaM2          = 0.5
	DefaultDragCoefficient        = 0.51
	DefaultDrivetrainLossPct      = 2.0
	DefaultRollingResistanceCoeff = 0.005
	DefaultHillGradePct           = 0.0
	DefaultHeadwindMs             = 0.0
	DefaultAirDensityKgM3         = 1.22

	DefaultFTPWatts       = 300.0
	DefaultRaceDistanceKm = 180.0
)

// RiderProfile holds the fixed physical parameters for one calculation
// session. It is a value object: callers construct a fresh profile per
// computation and never mutate one that is in flight.
//
// The model does not validate physical plausibility. Non-positive weights,
// areas, or densities produce NaN/Inf results that propagate to the caller
// rather than being silently corrected.
type RiderProfile struct {
	RiderWeight            float64 // kg
	BikeWeight             float64 // kg
	FrontalArea            float64 // m^2
	DragCoefficient        float64
	DrivetrainLossPct      float64 // percent lost between legs and wheel while driving
	RollingResistanceCoeff float64
	HillGradePct           float64 // percent grade; negative on descents
	Headwind               float64 // m/s; positive blows against the rider
	AirDensity             float64 // kg/m^3
}

// DefaultProfile returns a profile populated with the documented defaults.
func DefaultProfile() RiderProfile {
	return RiderProfile{
		RiderWeight:            DefaultRiderWeightKg,
		BikeWeight:             DefaultBikeWeightKg,
		FrontalArea:            DefaultFrontalAreaM2,
		DragCoefficient:        DefaultDragCoefficient,
		DrivetrainLossPct:      DefaultDrivetrainLossPct,
		RollingResistanceCoeff: DefaultRollingResistanceCoeff,
		HillGradePct:           DefaultHillGradePct,
		Headwind:               DefaultHeadwindMs,
		AirDensity:             DefaultAirDensityKgM3,
	}
}

// TotalWeight returns the combined rider and bike mass in kg.
func (p RiderProfile) TotalWeight() float64 {
	return p.RiderWeight + p.BikeWeight
}
