package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dgallion1/cvtwin/internal/respond"
)

// Responder answers chat messages about the loaded documents.
type Responder interface {
	Answer(ctx context.Context, message, cvPath string) respond.Result
}

// Server is the HTTP surface for the digital twin.
type Server struct {
	router    chi.Router
	responder Responder
	log       *slog.Logger
	apiKey    string
}

// NewServer creates and configures the HTTP server. An empty apiKey leaves
// the chat endpoint unauthenticated, matching the tool surface.
func NewServer(responder Responder, log *slog.Logger, apiKey string) *Server {
	s := &Server{
		responder: responder,
		log:       log,
		apiKey:    apiKey,
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

	r.Group(func(r chi.Router) {
		if s.apiKey != "" {
			r.Use(AuthMiddleware(s.apiKey))
		}
		r.Post("/api/chat", s.handleChat)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
