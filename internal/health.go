package internal

import (
	"accelerator-hub/domain"
	"accelerator-hub/domain/event"
	"accelerator-hub/observability"
	"encoding/json"
	"net/http"
	"time"
)

type RegistrySizer interface {
	Stats() domain.RegistryStats
}

type PresenceReader interface {
	Online() []string
}

type HealthResponse struct {
	Status    string  `json:"status"`
	Timestamp string  `json:"timestamp"`
	Uptime    float64 `json:"uptime"`
	domain.RegistryStats
	OnlineUsers []string                      `json:"onlineUsers"`
	Monitoring  observability.MonitoringStats `json:"monitoring"`
}

// HealthHandler answers GET /api/health with live registry numbers, the
// users currently online and the last monitoring snapshot.
type HealthHandler struct {
	started    time.Time
	registry   RegistrySizer
	presence   PresenceReader
	monitoring *observability.MonitoringManager
}

func NewHealthHandler(started time.Time, registry RegistrySizer, presence PresenceReader,
	monitoring *observability.MonitoringManager) *HealthHandler {
	return &HealthHandler{started: started, registry: registry, presence: presence, monitoring: monitoring}
}

func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	now := time.Now()
	resp := HealthResponse{
		Status:        "healthy",
		Timestamp:     event.FormatTimestamp(now),
		Uptime:        now.Sub(h.started).Seconds(),
		RegistryStats: h.registry.Stats(),
		OnlineUsers:   h.presence.Online(),
		Monitoring:    h.monitoring.GetLatest(),
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	_ = json.NewEncoder(w).Encode(resp)
}
