// Package healthprobe exposes liveness and readiness endpoints for the
// monitor process.
package healthprobe

import (
	"net/http"
	"sync/atomic"
	"time"

	json "github.com/goccy/go-json"
)

// Probe tracks process readiness. Liveness is implied by the process
// answering at all; readiness flips on once startup wiring completes.
type Probe struct {
	started time.Time
	ready   atomic.Bool
}

// New creates a Probe that reports not-ready until SetReady(true).
func New() *Probe {
	return &Probe{
		started: time.Now(),
	}
}

// SetReady marks the application as ready to serve traffic.
func (p *Probe) SetReady(ready bool) {
	p.ready.Store(ready)
}

type probeResponse struct {
	Status  string `json:"status"`
	Uptime  string `json:"uptime"`
	Message string `json:"message,omitempty"`
}

// Health returns an HTTP handler for liveness checks.
// Always answers 200 while the process is running.
func (p *Probe) Health() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeProbe(w, http.StatusOK, probeResponse{
			Status: "healthy",
			Uptime: time.Since(p.started).String(),
		})
	}
}

// Ready returns an HTTP handler for readiness checks.
// Answers 200 once the application finished startup, 503 before.
func (p *Probe) Ready() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !p.ready.Load() {
			writeProbe(w, http.StatusServiceUnavailable, probeResponse{
				Status:  "not_ready",
				Message: "application is starting",
			})
			return
		}

		writeProbe(w, http.StatusOK, probeResponse{
			Status: "ready",
			Uptime: time.Since(p.started).String(),
		})
	}
}

func writeProbe(w http.ResponseWriter, code int, resp probeResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(resp)
}
