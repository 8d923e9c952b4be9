package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"uptime-report/internal/application"
)

// Server exposes the report engine over HTTP.
type Server struct {
	router  *chi.Mux
	reports *application.ReportService
	loc     *time.Location
}

// NewServer creates a new HTTP server. The location is the reference
// timezone for calendar period boundaries.
func NewServer(reports *application.ReportService, loc *time.Location) *Server {
	s := &Server{
		router:  chi.NewRouter(),
		reports: reports,
		loc:     loc,
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	// Middleware
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.RealIP)

	// Swagger documentation
	s.router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	// REST API routes
	s.router.Route("/api", func(r chi.Router) {
		r.Use(jsonContentType)

		r.Get("/monitors", s.apiGetMonitors)
		r.Get("/monitors/{id}/report", s.apiGetMonitorReport)
		r.Get("/report", s.apiGetReport)
	})
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}
