package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/interntrack/interntrack-backend/internal/services"
)

// Handler holds the injected services behind the API routes. Construct with
// NewHandler; there is no package-level state.
type Handler struct {
	provisioner  *services.Provisioner
	stats        *services.Stats
	roster       *services.Roster
	requirePhone bool
}

func NewHandler(provisioner *services.Provisioner, stats *services.Stats, roster *services.Roster, requireInternPhone bool) *Handler {
	return &Handler{
		provisioner:  provisioner,
		stats:        stats,
		roster:       roster,
		requirePhone: requireInternPhone,
	}
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// Health reports liveness. No dependencies are checked, so it answers even
// when the upstream services are down.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"message": "InternTrack API is running",
	})
}
