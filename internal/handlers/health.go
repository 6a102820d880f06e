package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/Thegreatvegan/Qura/internal/config"
	"github.com/Thegreatvegan/Qura/internal/version"
)

// HealthHandler answers liveness checks.
type HealthHandler struct {
	cfg     *config.Config
	startAt time.Time
}

func NewHealthHandler(cfg *config.Config) *HealthHandler {
	return &HealthHandler{cfg: cfg, startAt: time.Now()}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status      string `json:"status"`
	Timestamp   string `json:"timestamp"`
	Uptime      string `json:"uptime"`
	Environment string `json:"environment"`
	version.VersionInfo
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	resp := HealthResponse{
		Status:      "ok",
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
		Uptime:      time.Since(h.startAt).Round(time.Second).String(),
		Environment: h.cfg.Environment,
		VersionInfo: version.Info(),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(resp)
}
