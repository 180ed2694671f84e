// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/yan-jin/CyclingCalculator/internal/adapters/repository"
	service "github.com/yan-jin/CyclingCalculator/internal/app"
	"github.com/yan-jin/CyclingCalculator/internal/domain/model"
	"github.com/yan-jin/CyclingCalculator/internal/domain/types"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// Submit registers a sweep request for async computation.
	Submit(ctx context.Context, req model.SweepRequest) (service.SubmitResult, error)

	// Result returns the state of a previously submitted job.
	Result(ctx context.Context, id string) (repository.Record, error)

	// SweepNow computes a sweep synchronously.
	SweepNow(ctx context.Context, req model.SweepRequest) ([]types.Point, error)
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler *HealthHandler
	statsHandler  *StatsHandler
	sweepsHandler *SweepsHandler
	sweepHandler  *SweepHandler
	zonesHandler  *ZonesHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		healthHandler: NewHealthHandler(),
		statsHandler:  NewStatsHandler(statsProvider),
		sweepsHandler: NewSweepsHandler(deps),
		sweepHandler:  NewSweepHandler(deps),
		zonesHandler:  NewZonesHandler(),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	// Specific paths first (most specific to least specific)
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/sweeps", MetricsMiddleware(s.sweepsHandler.HandlePostSweep, "sweeps"))
	mux.HandleFunc("/sweeps/", MetricsMiddleware(s.sweepsHandler.HandleGetSweep, "sweeps_get"))
	mux.HandleFunc("/sweep", MetricsMiddleware(s.sweepHandler.HandleSweep, "sweep"))
	mux.HandleFunc("/zones", MetricsMiddleware(s.zonesHandler.HandleZones, "zones"))
}

// sweepRequest mirrors the JSON schema for POST /sweeps. Omitted fields
// fall back to the documented defaults, so pointers distinguish "absent"
// from an explicit zero.
type sweepRequest struct {
	FTP                    *float64 `json:"ftp"`
	RaceDistanceKm         *float64 `json:"race_distance_km"`
	RiderWeightKg          *float64 `json:"rider_weight_kg"`
	BikeWeightKg           *float64 `json:"bike_weight_kg"`
	FrontalAreaM2          *float64 `json:"frontal_area_m2"`
	DragCoefficient        *float64 `json:"drag_coefficient"`
	DrivetrainLossPct      *float64 `json:"drivetrain_loss_pct"`
	RollingResistanceCoeff *float64 `json:"rolling_resistance_coeff"`
	HillGradePct           *float64 `json:"hill_grade_pct"`
	HeadwindMs             *float64 `json:"headwind_ms"`
	AirDensityKgM3         *float64 `json:"air_density_kg_m3"`
}

func orDefault(v *float64, def float64) float64 {
	if v != nil {
		return *v
	}
	return def
}

// toModel converts the wire request to a domain request, filling defaults.
func (r sweepRequest) toModel() model.SweepRequest {
	return model.SweepRequest{
		FTP:            orDefault(r.FTP, model.DefaultFTPWatts),
		RaceDistanceKm: orDefault(r.RaceDistanceKm, model.DefaultRaceDistanceKm),
		Profile: model.RiderProfile{
			RiderWeight:            orDefault(r.RiderWeightKg, model.DefaultRiderWeightKg),
			BikeWeight:             orDefault(r.BikeWeightKg, model.DefaultBikeWeightKg),
			FrontalArea:            orDefault(r.FrontalAreaM2, model.DefaultFrontalAreaM2),
			DragCoefficient:        orDefault(r.DragCoefficient, model.DefaultDragCoefficient),
			DrivetrainLossPct:      orDefault(r.DrivetrainLossPct, model.DefaultDrivetrainLossPct),
			RollingResistanceCoeff: orDefault(r.RollingResistanceCoeff, model.DefaultRollingResistanceCoeff),
			HillGradePct:           orDefault(r.HillGradePct, model.DefaultHillGradePct),
			Headwind:               orDefault(r.HeadwindMs, model.DefaultHeadwindMs),
			AirDensity:             orDefault(r.AirDensityKgM3, model.DefaultAirDensityKgM3),
		},
	}
}

func (r sweepRequest) validate() error {
	switch {
	case r.FTP != nil && *r.FTP <= 0:
		return errors.New("ftp must be positive")
	case r.RaceDistanceKm != nil && *r.RaceDistanceKm <= 0:
		return errors.New("race_distance_km must be positive")
	case r.RiderWeightKg != nil && *r.RiderWeightKg <= 0:
		return errors.New("rider_weight_kg must be positive")
	case r.BikeWeightKg != nil && *r.BikeWeightKg < 0:
		return errors.New("bike_weight_kg must not be negative")
	case r.AirDensityKgM3 != nil && *r.AirDensityKgM3 <= 0:
		return errors.New("air_density_kg_m3 must be positive")
	}
	return nil
}

// submitResponse acknowledges an async submission.
type submitResponse struct {
	JobID     string `json:"job_id"`
	Status    string `json:"status"`
	Duplicate bool   `json:"duplicate"`
}

// jobResponse is the read shape for GET /sweeps/{id}.
type jobResponse struct {
	JobID       string        `json:"job_id"`
	Status      string        `json:"status"`
	Points      []types.Point `json:"points,omitempty"`
	Error       string        `json:"error,omitempty"`
	CreatedAt   string        `json:"created_at"`
	CompletedAt string        `json:"completed_at,omitempty"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}
