package api

import (
	"log/slog"
	"net/http"

	"github.com/dgallion1/docsight/internal/analyze"
	"github.com/dgallion1/docsight/internal/config"
	"github.com/dgallion1/docsight/internal/session"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Server is the HTTP shell: it drives parse -> analyze per uploaded file and
// serves the accumulated session results.
type Server struct {
	router   chi.Router
	analyzer *analyze.Analyzer
	backend  analyze.Backend
	stats    *analyze.Stats
	store    *session.Store
	log      *slog.Logger
	cfg      config.Config
}

// NewServer creates and configures the HTTP server.
func NewServer(analyzer *analyze.Analyzer, backend analyze.Backend, stats *analyze.Stats, store *session.Store, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		analyzer: analyzer,
		backend:  backend,
		stats:    stats,
		store:    store,
		log:      log,
		cfg:      cfg,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	r.Get("/health", s.handleHealth)

	r.Post("/api/analyze", s.handleAnalyze)
	r.Get("/api/results", s.handleListResults)
	r.Delete("/api/results", s.handleClearResults)
	r.Get("/api/stats/categories", s.handleCategoryStats)
	r.Get("/api/stats/llm", s.handleLLMStats)

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
