// Package api exposes the analysis pipeline over HTTP for the browser
// frontend.
package api

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/prepsage/examlens/internal/exam"
	"github.com/prepsage/examlens/internal/store"
)

// Analyzer runs one full exam analysis. Satisfied by analysis.Analyzer.
type Analyzer interface {
	Analyze(ctx context.Context, task string, questions []exam.Question, references []string) (exam.State, error)
}

// Server handles the analysis API. The event repo is optional; with a nil
// repo runs are simply not recorded.
type Server struct {
	analyzer Analyzer
	events   store.EventRepo
	log      *zap.Logger
}

// NewServer creates an API server. A nil logger disables request logging.
func NewServer(analyzer Analyzer, events store.EventRepo, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{analyzer: analyzer, events: events, log: log}
}

// Router builds the HTTP routes.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/healthz", s.handleHealth)
	r.Post("/api/analyze_exam", s.handleAnalyzeExam)

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
