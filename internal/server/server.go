package server

import (
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/claude/fitgen/internal/catalog"
	"github.com/claude/fitgen/internal/routine"
	"github.com/go-chi/chi/v5"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	gen    *routine.Generator
	cat    *catalog.Catalog
	log    *slog.Logger
	router chi.Router
}

// New creates a new Server with all routes configured.
func New(gen *routine.Generator, cat *catalog.Catalog, log *slog.Logger) *Server {
	s := &Server{
		gen:    gen,
		cat:    cat,
		log:    log,
		router: chi.NewRouter(),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(RequestLogging(s.log))
	s.router.Use(CORS)

	s.router.Post("/api/v1/routines", s.handleGenerateRoutine)
	s.router.Post("/api/v1/routines/swap", s.handleSwapExercise)
	s.router.Get("/api/v1/options", s.handleOptions)
}

// SetFrontend mounts the embedded SPA filesystem.
// Unmatched routes serve index.html for client-side routing.
func (s *Server) SetFrontend(webFS fs.FS) {
	fileServer := http.FileServerFS(webFS)

	s.router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		// Try to serve the exact file first
		f, err := webFS.Open(r.URL.Path[1:]) // strip leading /
		if err == nil {
			f.Close()
			fileServer.ServeHTTP(w, r)
			return
		}
		// Fallback to index.html for SPA routing
		r.URL.Path = "/"
		fileServer.ServeHTTP(w, r)
	})
}
