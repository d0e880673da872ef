package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/exolab/exoplanet-api/internal/config"
	"github.com/exolab/exoplanet-api/internal/metrics"
	"github.com/exolab/exoplanet-api/internal/predict"
	"github.com/exolab/exoplanet-api/internal/server"
	"github.com/exolab/exoplanet-api/internal/utils"
)

var version = "dev"

func main() {
	configPath := flag.String("config", "", "Path to YAML configuration file")
	showVersion := flag.Bool("version", false, "Show version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("Exoplanet Detection API v%s\n", version)
		os.Exit(0)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", slog.String("path", *configPath), slog.Any("error", err))
		os.Exit(1)
	}

	logger := utils.NewLogger(cfg.Logging.Level, cfg.Logging.JSON)
	logger.Info("exoplanet detection api starting",
		slog.String("version", version),
		slog.String("addr", cfg.Server.Addr()))

	if err := metrics.Register(prometheus.DefaultRegisterer); err != nil {
		logger.Error("failed to register metrics", slog.Any("error", err))
		os.Exit(1)
	}

	// No trained model artifact is wired in yet; predictions are mocked
	// until a real model is supplied to predict.New.
	predictor := predict.New(nil)
	logger.Info("using mock predictions", slog.Bool("model_loaded", predictor.ModelLoaded()))

	srv := server.New(*cfg, predictor, logger)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			os.Exit(1)
		}
	case sig := <-stop:
		logger.Info("shutting down", slog.String("signal", sig.String()))
		if err := srv.Stop(); err != nil {
			logger.Error("error during shutdown", slog.Any("error", err))
		}
	}

	logger.Info("exoplanet detection api stopped")
}
