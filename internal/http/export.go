package httpserver

import (
	"encoding/csv"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/QuantumPodLabs/quantumpod/internal/decision"
)

var csvHeader = []string{"ts", "id", "task", "complexity", "decision", "client_ip", "user_agent", "path"}

// handleExport handles GET /log: the full retained log as a CSV download,
// newest first, streamed row by row. encoding/csv quotes fields containing
// the delimiter or quote character and doubles embedded quotes (RFC 4180).
func (a *API) handleExport(w http.ResponseWriter, r *http.Request) {
	// Probe reachability before committing response headers; once streaming
	// starts the status code is no longer ours to change.
	if err := a.store.Ping(r.Context()); err != nil {
		a.log.Error("export ping", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "log store unavailable")
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="quantumpod_decisions.csv"`)

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		a.log.Error("export header", zap.Error(err))
		return
	}

	err := a.store.StreamAll(r.Context(), func(rec decision.Record) error {
		return cw.Write([]string{
			rec.Timestamp.Format(time.RFC3339Nano),
			rec.ID,
			rec.Task,
			strconv.FormatFloat(rec.Complexity, 'f', -1, 64),
			string(rec.Decision),
			rec.ClientIP,
			rec.UserAgent,
			rec.Path,
		})
	})
	if err != nil {
		// Headers are committed; truncation is all we can signal.
		a.log.Error("export stream", zap.Error(err))
		return
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		a.log.Error("export flush", zap.Error(err))
	}
}
