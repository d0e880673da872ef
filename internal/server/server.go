// Package server assembles the router, middleware and HTTP listener.
package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/exolab/exoplanet-api/internal/api"
	"github.com/exolab/exoplanet-api/internal/config"
	"github.com/exolab/exoplanet-api/internal/predict"
)

// Server holds the wired HTTP components of the application.
type Server struct {
	cfg        config.Config
	httpServer *http.Server
	handler    http.Handler
	logger     *slog.Logger
}

// New creates a Server with all routes and middleware installed.
func New(cfg config.Config, predictor predict.Predictor, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	router := mux.NewRouter()

	apiRouter := router.PathPrefix("/api/v1").Subrouter()
	apiHandler := api.NewHandler(predictor, logger)
	apiHandler.RegisterRoutes(apiRouter)

	router.Handle("/metrics", promhttp.Handler()).Methods("GET")

	// The chain wraps the whole router so preflight requests and panics in
	// unmatched routes are still covered.
	chain := api.Chain(
		api.RecoveryMiddleware(logger),
		api.LoggingMiddleware(logger),
		api.CORSMiddleware(cfg.Server.AllowedOrigins),
	)

	return &Server{
		cfg:     cfg,
		handler: chain(router),
		logger:  logger,
	}
}

// Handler exposes the fully wrapped handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Start begins listening for HTTP connections.
func (s *Server) Start() error {
	s.httpServer = &http.Server{
		Addr:         s.cfg.Server.Addr(),
		Handler:      s.handler,
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	s.logger.Info("server listening", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Stop gracefully shuts down the server.
func (s *Server) Stop() error {
	if s.httpServer == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.GracefulTimeout)
	defer cancel()

	return s.httpServer.Shutdown(ctx)
}
