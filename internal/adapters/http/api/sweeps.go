// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/yan-jin/CyclingCalculator/internal/adapters/repository"
	service "github.com/yan-jin/CyclingCalculator/internal/app"
	"github.com/yan-jin/CyclingCalculator/internal/domain/model"
)

// SweepDependencies defines the interface for async sweep operations.
type SweepDependencies interface {
	Submit(ctx context.Context, req model.SweepRequest) (service.SubmitResult, error)
	Result(ctx context.Context, id string) (repository.Record, error)
}

// SweepsHandler handles async sweep submission and retrieval.
type SweepsHandler struct {
	deps SweepDependencies
}

// NewSweepsHandler creates a new sweeps handler.
func NewSweepsHandler(deps SweepDependencies) *SweepsHandler {
	return &SweepsHandler{deps: deps}
}

// HandlePostSweep handles POST /sweeps requests.
func (h *SweepsHandler) HandlePostSweep(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req sweepRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}

	res, err := h.deps.Submit(r.Context(), req.toModel())
	if err != nil {
		if errors.Is(err, service.ErrBackpressure) {
			writeError(w, http.StatusTooManyRequests, "backpressure", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}
	if res.Duplicate {
		writeJSON(w, http.StatusOK, submitResponse{
			JobID:     res.JobID,
			Status:    "duplicate",
			Duplicate: true,
		})
		return
	}
	writeJSON(w, http.StatusAccepted, submitResponse{
		JobID:  res.JobID,
		Status: "accepted",
	})
}

// HandleGetSweep handles GET /sweeps/{id} requests.
func (h *SweepsHandler) HandleGetSweep(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	// Extract path parameter after /sweeps/
	id := strings.TrimPrefix(r.URL.Path, "/sweeps/")
	if id == "" || strings.Contains(id, "/") {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}

	rec, err := h.deps.Result(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "not_found", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}

	resp := jobResponse{
		JobID:     rec.ID,
		Status:    string(rec.Status),
		Points:    rec.Points,
		Error:     rec.Error,
		CreatedAt: rec.CreatedAt.Format(time.RFC3339Nano),
	}
	if !rec.CompletedAt.IsZero() {
		resp.CompletedAt = rec.CompletedAt.Format(time.RFC3339Nano)
	}
	writeJSON(w, http.StatusOK, resp)
}
