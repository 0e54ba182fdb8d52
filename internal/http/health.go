package httpserver

import (
	"net/http"
	"time"

	"go.uber.org/zap"
)

type healthResponse struct {
	Status          string `json:"status"`
	Version         string `json:"version"`
	UptimeSeconds   *int64 `json:"uptime_seconds,omitempty"`
	Database        string `json:"database,omitempty"`
	DecisionsLogged int    `json:"decisions_logged"`
}

// handleHome handles GET /: a plain liveness banner.
func (a *API) handleHome(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("QuantumPod Alpha is online"))
}

// handleHealth handles GET /health. A reachable store reports ok; a durable
// backend that cannot be pinged degrades the status instead of failing the
// process.
func (a *API) handleHealth(w http.ResponseWriter, r *http.Request) {
	resp := healthResponse{Status: "ok", Version: a.version}

	if a.durable {
		resp.Database = "ok"
		if err := a.store.Ping(r.Context()); err != nil {
			a.log.Warn("health ping", zap.Error(err))
			resp.Status = "degraded"
			resp.Database = "unreachable"
		}
	} else {
		uptime := int64(time.Since(a.started).Seconds())
		resp.UptimeSeconds = &uptime
	}

	if n, err := a.store.Count(r.Context()); err == nil {
		resp.DecisionsLogged = n
	} else {
		a.log.Warn("health count", zap.Error(err))
		resp.Status = "degraded"
	}

	writeJSON(w, http.StatusOK, resp)
}
