package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/lazypower/nexus/internal/crm"
	"github.com/lazypower/nexus/internal/engine"
)

// Server is the nexus HTTP API server.
type Server struct {
	state    *crm.State
	enricher *engine.Enricher
	router   chi.Router
	version  string
	driver   string
	started  time.Time
}

// New creates a new Server. enricher may be nil when no LLM is configured;
// the AI routes then answer 503.
func New(state *crm.State, enricher *engine.Enricher, version, driver string) *Server {
	s := &Server{
		state:    state,
		enricher: enricher,
		version:  version,
		driver:   driver,
		started:  time.Now(),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", s.handleHealth)

		r.Get("/contacts", s.handleListContacts)
		r.Post("/contacts", s.handleCreateContact)
		r.Get("/contacts/{contactID}", s.handleGetContact)
		r.Put("/contacts/{contactID}", s.handleUpdateContact)
		r.Post("/contacts/{contactID}/status", s.handleUpdateStatus)
		r.Get("/contacts/{contactID}/interactions", s.handleContactInteractions)

		r.Post("/interactions", s.handleRecordInteraction)

		r.Get("/followups", s.handleFollowUps)
		r.Get("/dashboard", s.handleDashboard)
		r.Get("/pipeline", s.handlePipeline)

		r.Post("/contacts/{contactID}/enrich", s.handleEnrich)
		r.Post("/contacts/{contactID}/suggest", s.handleSuggest)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"version": s.version,
		"uptime":  time.Since(s.started).Seconds(),
		"store":   s.driver,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
