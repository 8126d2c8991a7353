// HTTP API server entry point for the disclosure note tagging service.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/turtacn/FinNote-Intelligence/internal/application/tagging"
	"github.com/turtacn/FinNote-Intelligence/internal/config"
	"github.com/turtacn/FinNote-Intelligence/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/FinNote-Intelligence/internal/infrastructure/monitoring/metrics"
	"github.com/turtacn/FinNote-Intelligence/internal/intelligence/notetag"
	httpiface "github.com/turtacn/FinNote-Intelligence/internal/interfaces/http"
	"github.com/turtacn/FinNote-Intelligence/internal/interfaces/http/handlers"
)

// Build-time variables injected via ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		cfg *config.Config
		err error
	)
	if path := os.Getenv("FINTAG_CONFIG"); path != "" {
		cfg, err = config.Load(path)
	} else {
		cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return err
	}

	logger, err := logging.NewLogger(cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	taggingMetrics := metrics.NewTaggingMetrics()
	rec := notetag.NewRecognizer(cfg.Tagger.Recognizer, logger)
	tagger, err := notetag.New(cfg.Tagger, rec, taggingMetrics, logger)
	if err != nil {
		return err
	}
	service := tagging.NewService(tagger, logger)

	// Hot-reload the concept list when a file-backed dictionary is configured.
	if cfg.Tagger.ConceptsPath != "" {
		stop, err := notetag.WatchConceptsFile(cfg.Tagger.ConceptsPath, tagger, logger)
		if err != nil {
			logger.Warn("concept file watch disabled", logging.Err(err))
		} else {
			defer stop()
		}
	}

	router := httpiface.NewRouter(httpiface.RouterConfig{
		TagHandler:     handlers.NewTagHandler(service),
		HealthHandler:  handlers.NewHealthHandler(service, version),
		MetricsHandler: taggingMetrics.Handler(),
		Logger:         logger,
		Mode:           cfg.Server.Mode,
	})
	server := httpiface.NewServer(cfg.Server, router, logger)

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	logger.Info("service started",
		logging.String("version", version),
		logging.String("mode", string(service.Mode())),
		logging.Int("port", cfg.Server.Port),
	)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		logger.Info("shutdown signal received", logging.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Stop(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	logger.Info("service stopped")
	return nil
}
