package handlers

import (
	"net/http"

	"github.com/nutrilens/nutrilens-be/internal/monitoring"
)

// HealthHandler serves the cached host/process sample.
type HealthHandler struct {
	stats *monitoring.StatUpdater
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(stats *monitoring.StatUpdater) *HealthHandler {
	return &HealthHandler{stats: stats}
}

// Get handles GET /health.
func (h *HealthHandler) Get(w http.ResponseWriter, r *http.Request) {
	snap := h.stats.Snapshot()
	writeJSON(w, http.StatusOK, map[string]any{
		"status":       "ok",
		"uptime":       snap.Uptime,
		"cpuPercent":   snap.CPUPercent,
		"memoryUsedMb": snap.MemoryUsedMb,
		"goroutines":   snap.Goroutines,
		"sampledAt":    snap.SampledAt,
	})
}
