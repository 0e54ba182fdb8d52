package httpserver

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"

	"github.com/QuantumPodLabs/quantumpod/internal/buildinfo"
	"github.com/QuantumPodLabs/quantumpod/internal/logstore"
)

// API bundles the dependencies the handlers need. The store is injected at
// construction; handlers never reach for ambient globals.
type API struct {
	store   logstore.Store
	log     *zap.Logger
	durable bool
	started time.Time
	version string
}

// NewAPI wires the handler set to a log store. durable selects the /health
// reporting shape: uptime for the in-memory backend, reachability for the
// database-backed one.
func NewAPI(store logstore.Store, log *zap.Logger, durable bool) *API {
	if log == nil {
		log = zap.NewNop()
	}
	return &API{
		store:   store,
		log:     log,
		durable: durable,
		started: time.Now().UTC(),
		version: buildinfo.Version,
	}
}

// NewServer builds the root router with global middlewares and all routes.
func NewServer(api *API) http.Handler {
	r := chi.NewRouter()

	// Global middlewares
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Get("/", api.handleHome)
	r.Get("/health", api.handleHealth)
	r.Post("/route", api.handleRoute)
	r.Get("/decisions", api.handleDecisions)
	r.Get("/log", api.handleExport)
	r.Get("/test", api.handleDemo)

	// API docs (Swagger UI) over the embedded OpenAPI document
	r.Get("/docs/*", httpSwagger.Handler(
		httpSwagger.URL("/openapi.yaml"),
	))
	r.Get("/openapi.yaml", serveOpenAPIStaticAsset)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not found")
	})

	return r
}
