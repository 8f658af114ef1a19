// Package web binds a built schema and its handler registry to HTTP.
// Two stateless operations define the wire contract: fetching the full
// schema once at client bootstrap, and invoking one action with a
// snapshot of input values. A minimal browser client is embedded and
// served from the same router.
package web

import (
	"embed"
	"io/fs"
	"net/http"
	"time"

	"github.com/artpar/pagekit/adapters/metrics"
	"github.com/artpar/pagekit/core/runtime"
	"github.com/artpar/pagekit/core/schema"
	"github.com/artpar/pagekit/ports"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

//go:embed static/*
var assets embed.FS

// Handler serves the schema synchronization endpoints.
type Handler struct {
	schema   schema.Schema
	registry *runtime.Registry
	logger   zerolog.Logger
	metrics  *metrics.Collector
	audit    ports.AuditStore
	ids      ports.IDGenerator
	clock    ports.Clock
}

// Deps contains dependencies for the web handler.
// Metrics and Audit are optional; the rest are required.
type Deps struct {
	Schema   schema.Schema
	Registry *runtime.Registry
	Logger   zerolog.Logger
	Metrics  *metrics.Collector
	Audit    ports.AuditStore
	IDs      ports.IDGenerator
	Clock    ports.Clock
}

// NewHandler creates a new schema server handler.
func NewHandler(deps Deps) *Handler {
	return &Handler{
		schema:   deps.Schema,
		registry: deps.Registry,
		logger:   deps.Logger,
		metrics:  deps.Metrics,
		audit:    deps.Audit,
		ids:      deps.IDs,
		clock:    deps.Clock,
	}
}

// Router returns the schema server router.
func (h *Handler) Router() chi.Router {
	r := chi.NewRouter()

	r.Use(h.logRequests)

	r.Get("/schema", h.Schema)
	r.Post("/action", h.Action)
	r.Get("/health", h.Health)

	// Embedded browser client
	staticFS, _ := fs.Sub(assets, "static")
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))
	r.Get("/", h.Index)

	return r
}

// Index serves the embedded browser client page.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	data, err := assets.ReadFile("static/index.html")
	if err != nil {
		http.Error(w, "client not available", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(data)
}

func (h *Handler) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.metrics != nil {
			h.metrics.RequestsInFlight.Inc()
			defer h.metrics.RequestsInFlight.Dec()
		}

		start := h.now()
		next.ServeHTTP(w, r)

		h.logger.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Dur("elapsed", h.now().Sub(start)).
			Msg("request")
	})
}

func (h *Handler) now() time.Time {
	if h.clock != nil {
		return h.clock.Now()
	}
	return time.Now()
}

func (h *Handler) requestID() string {
	if h.ids != nil {
		return h.ids.New()
	}
	return ""
}
