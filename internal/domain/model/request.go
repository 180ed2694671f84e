package model

import (
	"encoding/binary"
	"hash/fnv"
	"math"
	"strconv"
)

// SweepRequest is the full parameter set for one sweep computation.
type SweepRequest struct {
	FTP            float64 // Watts
	RaceDistanceKm float64
	Profile        RiderProfile
}

// DefaultSweepRequest returns a request populated with the documented
// defaults (FTP 300 W, 180 km, default profile).
func DefaultSweepRequest() SweepRequest {
	return SweepRequest{
		FTP:            DefaultFTPWatts,
		RaceDistanceKm: DefaultRaceDistanceKm,
		Profile:        DefaultProfile(),
	}
}

// Fingerprint returns a stable identifier derived from every field of the
// request, in canonical order. Two requests with identical parameters share
// a fingerprint, which lets the service collapse duplicate submissions.
func (r SweepRequest) Fingerprint() string {
	h := fnv.New64a()
	buf := make([]byte, 8)
	for _, v := range []float64{
		r.FTP,
		r.RaceDistanceKm,
		r.Profile.RiderWeight,
		r.Profile.BikeWeight,
		r.Profile.FrontalArea,
		r.Profile.DragCoefficient,
		r.Profile.DrivetrainLossPct,
		r.Profile.RollingResistanceCoeff,
		r.Profile.HillGradePct,
		r.Profile.Headwind,
		r.Profile.AirDensity,
	} {
		binary.BigEndian.PutUint64(buf, math.Float64bits(v))
		_, _ = h.Write(buf)
	}
	return strconv.FormatUint(h.Sum64(), 16)
}
