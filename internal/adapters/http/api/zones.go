// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/yan-jin/CyclingCalculator/internal/domain/model"
	"github.com/yan-jin/CyclingCalculator/internal/domain/sweep"
)

// ZonesHandler handles training-zone requests.
type ZonesHandler struct{}

// NewZonesHandler creates a new zones handler.
func NewZonesHandler() *ZonesHandler {
	return &ZonesHandler{}
}

// HandleZones handles GET /zones requests. The ftp query parameter
// defaults to the documented FTP when omitted.
func (h *ZonesHandler) HandleZones(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	ftp := model.DefaultFTPWatts
	if raw := r.URL.Query().Get("ftp"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", fmt.Errorf("invalid ftp: %w", err))
			return
		}
		if v <= 0 {
			writeError(w, http.StatusBadRequest, "bad_request", fmt.Errorf("ftp must be positive"))
			return
		}
		ftp = v
	}
	writeJSON(w, http.StatusOK, sweep.Zones(ftp))
}
