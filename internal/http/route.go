package httpserver

import (
	"errors"
	"io"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/QuantumPodLabs/quantumpod/internal/decision"
	"github.com/QuantumPodLabs/quantumpod/internal/logstore"
	"github.com/QuantumPodLabs/quantumpod/internal/policy"
)

// maxRouteBody caps /route request bodies; the payload is two small fields.
const maxRouteBody = 1 << 20

type routeResponse struct {
	Task       string       `json:"task"`
	Complexity float64      `json:"complexity"`
	Decision   policy.Label `json:"decision"`
	ID         string       `json:"id"`
	Ts         time.Time    `json:"ts"`
}

// handleRoute handles POST /route: validate, decide, append, echo.
// Validation failures never reach the store; append failures are surfaced
// to the caller so no decision is silently lost.
func (a *API) handleRoute(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxRouteBody))
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read request body")
		return
	}

	in, err := decision.ParseRouteRequest(body)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	rec := decision.NewRecord(in, decision.Provenance{
		ClientIP:  clientIP(r),
		UserAgent: r.UserAgent(),
		Path:      r.URL.Path,
	})

	if err := a.store.Append(r.Context(), rec); err != nil {
		a.log.Error("append decision", zap.String("id", rec.ID), zap.Error(err))
		if errors.Is(err, logstore.ErrUnavailable) {
			writeError(w, http.StatusInternalServerError, "log store unavailable")
		} else {
			writeError(w, http.StatusInternalServerError, "failed to persist decision")
		}
		return
	}

	a.log.Info("decision routed",
		zap.String("id", rec.ID),
		zap.String("task", rec.Task),
		zap.Float64("complexity", rec.Complexity),
		zap.String("decision", string(rec.Decision)),
	)

	writeJSON(w, http.StatusOK, routeResponse{
		Task:       rec.Task,
		Complexity: rec.Complexity,
		Decision:   rec.Decision,
		ID:         rec.ID,
		Ts:         rec.Timestamp,
	})
}

// clientIP strips the port from RemoteAddr; middleware.RealIP has already
// folded X-Forwarded-For / X-Real-IP into it when present.
func clientIP(r *http.Request) string {
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}
