// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/yan-jin/CyclingCalculator/internal/domain/model"
	"github.com/yan-jin/CyclingCalculator/internal/domain/types"
)

// SyncSweepDependencies defines the interface for the synchronous sweep.
type SyncSweepDependencies interface {
	SweepNow(ctx context.Context, req model.SweepRequest) ([]types.Point, error)
}

// SweepHandler handles synchronous sweep requests.
type SweepHandler struct {
	deps SyncSweepDependencies
}

// NewSweepHandler creates a new synchronous sweep handler.
func NewSweepHandler(deps SyncSweepDependencies) *SweepHandler {
	return &SweepHandler{deps: deps}
}

// HandleSweep handles GET /sweep requests. All parameters arrive as query
// values and fall back to the documented defaults when omitted.
func (h *SweepHandler) HandleSweep(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	req, err := sweepRequestFromQuery(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}

	points, err := h.deps.SweepNow(r.Context(), req.toModel())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}
	writeJSON(w, http.StatusOK, points)
}

// sweepRequestFromQuery reads the same parameter set POST /sweeps accepts
// as JSON, but from URL query values.
func sweepRequestFromQuery(q url.Values) (sweepRequest, error) {
	var req sweepRequest
	fields := []struct {
		key string
		dst **float64
	}{
		{"ftp", &req.FTP},
		{"race_distance_km", &req.RaceDistanceKm},
		{"rider_weight_kg", &req.RiderWeightKg},
		{"bike_weight_kg", &req.BikeWeightKg},
		{"frontal_area_m2", &req.FrontalAreaM2},
		{"drag_coefficient", &req.DragCoefficient},
		{"drivetrain_loss_pct", &req.DrivetrainLossPct},
		{"rolling_resistance_coeff", &req.RollingResistanceCoeff},
		{"hill_grade_pct", &req.HillGradePct},
		{"headwind_ms", &req.HeadwindMs},
		{"air_density_kg_m3", &req.AirDensityKgM3},
	}
	for _, f := range fields {
		raw := q.Get(f.key)
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return sweepRequest{}, fmt.Errorf("invalid %s: %w", f.key, err)
		}
		*f.dst = &v
	}
	return req, nil
}
