package httpserver

import (
	"fmt"
	"net/http"

	openapi "github.com/QuantumPodLabs/quantumpod/api/openapi"
	"github.com/QuantumPodLabs/quantumpod/web"
)

// handleDemo handles GET /test: the embedded interactive demo page.
func (a *API) handleDemo(w http.ResponseWriter, r *http.Request) {
	data, err := web.FS.ReadFile("demo.html")
	if err != nil {
		http.Error(w, fmt.Sprintf("failed to read demo page: %v", err), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(data)
}

func serveOpenAPIStaticAsset(w http.ResponseWriter, r *http.Request) {
	data, err := openapi.FS.ReadFile("v1/quantumpod.yaml")
	if err != nil {
		http.Error(w, fmt.Sprintf("failed to read spec: %v", err), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/yaml; charset=utf-8")
	_, _ = w.Write(data)
}
