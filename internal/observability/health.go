package observability

import (
	"encoding/json"
	"net/http"
	"sync/atomic"
	"time"
)

// HealthChecker tracks process health for the /healthz and /readyz
// endpoints. Liveness is unconditional once the process is up; readiness
// flips on only after event replay completes and the ingestion consumers
// are attached, and flips off again during shutdown so load balancers
// drain traffic before the core loop stops.
type HealthChecker struct {
	ready       atomic.Bool
	startTime   time.Time
	readySinceUs atomic.Int64
}

type healthStatus struct {
	Status     string `json:"status"`
	Uptime     string `json:"uptime,omitempty"`
	ReadySince string `json:"ready_since,omitempty"`
}

func NewHealthChecker() *HealthChecker {
	return &HealthChecker{startTime: time.Now()}
}

// SetReady marks the service as ready (or not) to accept traffic.
func (h *HealthChecker) SetReady(ready bool) {
	if ready && !h.ready.Load() {
		h.readySinceUs.Store(time.Now().UnixMicro())
	}
	h.ready.Store(ready)
}

// IsReady reports whether the service is accepting traffic.
func (h *HealthChecker) IsReady() bool {
	return h.ready.Load()
}

// LivenessHandler answers 200 as long as the process can serve HTTP.
func (h *HealthChecker) LivenessHandler(w http.ResponseWriter, r *http.Request) {
	h.writeStatus(w, http.StatusOK, healthStatus{
		Status: "alive",
		Uptime: time.Since(h.startTime).String(),
	})
}

// ReadinessHandler answers 200 once replay has finished and consumers
// are attached, 503 otherwise.
func (h *HealthChecker) ReadinessHandler(w http.ResponseWriter, r *http.Request) {
	if !h.ready.Load() {
		h.writeStatus(w, http.StatusServiceUnavailable, healthStatus{Status: "not_ready"})
		return
	}
	status := healthStatus{Status: "ready"}
	if us := h.readySinceUs.Load(); us > 0 {
		status.ReadySince = time.UnixMicro(us).UTC().Format(time.RFC3339Nano)
	}
	h.writeStatus(w, http.StatusOK, status)
}

func (h *HealthChecker) writeStatus(w http.ResponseWriter, code int, s healthStatus) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(s)
}
