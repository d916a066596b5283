package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/Canishack/Financial-Data-Extraction-Project/internal/api/handlers"
	"github.com/Canishack/Financial-Data-Extraction-Project/internal/config"
	"github.com/Canishack/Financial-Data-Extraction-Project/internal/core/analysis"
)


// Server wraps the HTTP server instance and its handlers.
type Server struct {
	httpServer *http.Server
	logger     *slog.Logger
}

// NewServer builds and wires all routes.
func NewServer(cfg *config.Config, upload *handlers.UploadHandler, analyze *handlers.AnalysisHandler, logger *slog.Logger) *Server {
	httpSrv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           newRouter(cfg, upload, analyze),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return &Server{httpServer: httpSrv, logger: logger}
}

func newRouter(cfg *config.Config, upload *handlers.UploadHandler, analyze *handlers.AnalysisHandler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.With(middleware.Timeout(cfg.RequestTimeout)).Get("/", handlers.Health)

	r.Route("/api", func(api chi.Router) {
		api.With(middleware.Timeout(cfg.RequestTimeout)).Post("/upload", upload.UploadDocument)
		api.With(middleware.Timeout(analyzeTimeout(cfg))).Post("/analyze", analyze.Analyze)
	})

	return r
}

// analyzeTimeout never cuts an analysis short of its retry schedule.
func analyzeTimeout(cfg *config.Config) time.Duration {
	budget := analysis.RetryBudget(cfg.LLMTimeout) + 10*time.Second
	return max(cfg.RequestTimeout, budget)
}

// Start runs the HTTP server until Shutdown is called.
func (s *Server) Start() error {
	s.logger.Info("http.listening", "addr", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("http.shutting_down")
	return s.httpServer.Shutdown(ctx)
}
