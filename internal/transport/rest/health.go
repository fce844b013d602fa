package rest

import (
	"context"
	"net/http"
	"time"
)

const probeTimeout = 3 * time.Second

// dbPinger is the slice of the connection pool the probes need.
type dbPinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves the liveness, readiness, and health endpoints.
type HealthHandler struct {
	db      dbPinger
	version string
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(db dbPinger, version string) *HealthHandler {
	return &HealthHandler{db: db, version: version}
}

// HealthResponse is the JSON body for the probe endpoints.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus reports one dependency's state.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

// Live answers the liveness probe. It never touches dependencies: a
// wedged database must not get the process restarted.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: time.Now()})
}

// Ready answers the readiness probe: 200 when the database responds,
// 503 otherwise.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), probeTimeout)
	defer cancel()

	status, code := "ok", http.StatusOK
	if err := h.db.Ping(ctx); err != nil {
		status, code = "down", http.StatusServiceUnavailable
	}

	writeJSON(w, code, HealthResponse{Status: status, Timestamp: time.Now()})
}

// Health is the detailed check: per-component status with latency, plus
// the build version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), probeTimeout)
	defer cancel()

	dbStatus, ok := h.checkDB(ctx)

	status, code := "ok", http.StatusOK
	if !ok {
		status, code = "down", http.StatusServiceUnavailable
	}

	writeJSON(w, code, HealthResponse{
		Status:     status,
		Version:    h.version,
		Components: map[string]CompStatus{"database": dbStatus},
		Timestamp:  time.Now(),
	})
}

func (h *HealthHandler) checkDB(ctx context.Context) (CompStatus, bool) {
	start := time.Now()
	if err := h.db.Ping(ctx); err != nil {
		return CompStatus{Status: "down"}, false
	}
	return CompStatus{Status: "ok", Latency: time.Since(start).String()}, true
}
