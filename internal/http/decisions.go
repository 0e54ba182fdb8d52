package httpserver

import (
	"html/template"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/QuantumPodLabs/quantumpod/internal/decision"
	"github.com/QuantumPodLabs/quantumpod/internal/logstore"
)

const (
	defaultListLimit = 50
	minListLimit     = 1
	maxListLimit     = 200
)

type decisionsResponse struct {
	Count int               `json:"count"`
	Items []decision.Record `json:"items"`
}

// handleDecisions handles GET /decisions. Browsing favors availability:
// malformed limit or since values fall back to defaults instead of erroring.
func (a *API) handleDecisions(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	f := logstore.Filter{
		Limit: parseListLimit(q.Get("limit")),
		Task:  q.Get("task"),
	}
	if raw := q.Get("since"); raw != "" {
		if t, err := time.Parse(time.RFC3339, raw); err == nil {
			f.Since = t.UTC()
		}
	}

	items, err := a.store.Query(r.Context(), f)
	if err != nil {
		a.log.Error("query decisions", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "log store unavailable")
		return
	}

	if q.Get("format") == "html" {
		renderDecisionsHTML(w, items)
		return
	}
	writeJSON(w, http.StatusOK, decisionsResponse{Count: len(items), Items: items})
}

// parseListLimit clamps the limit into [1, 200]; anything non-numeric
// (including empty) falls back to the default of 50.
func parseListLimit(raw string) int {
	if raw == "" {
		return defaultListLimit
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return defaultListLimit
	}
	if n < minListLimit {
		return minListLimit
	}
	if n > maxListLimit {
		return maxListLimit
	}
	return n
}

var decisionsTmpl = template.Must(template.New("decisions").Parse(`<!DOCTYPE html>
<html>
<head><title>QuantumPod decisions</title>
<style>
body { font-family: monospace; margin: 2rem; }
table { border-collapse: collapse; }
th, td { border: 1px solid #999; padding: 4px 10px; text-align: left; }
th { background: #eee; }
</style>
</head>
<body>
<h1>Decision log ({{len .}})</h1>
<table>
<tr><th>ts</th><th>id</th><th>task</th><th>complexity</th><th>decision</th><th>client_ip</th></tr>
{{range .}}<tr><td>{{.Timestamp.Format "2006-01-02T15:04:05Z07:00"}}</td><td>{{.ID}}</td><td>{{.Task}}</td><td>{{printf "%.3f" .Complexity}}</td><td>{{.Decision}}</td><td>{{.ClientIP}}</td></tr>
{{end}}</table>
</body>
</html>
`))

func renderDecisionsHTML(w http.ResponseWriter, items []decision.Record) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_ = decisionsTmpl.Execute(w, items)
}
