package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/dripvault/storefront/internal/config"
	"github.com/dripvault/storefront/internal/repository"
	"github.com/dripvault/storefront/internal/routes"
	"github.com/dripvault/storefront/internal/session"
	"github.com/dripvault/storefront/pkg/logger"
	"github.com/dripvault/storefront/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func main() {
	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize structured logger
	log := logger.New(logger.Options{
		ServiceName: "storefront",
		Level:       cfg.LogLevel,
		Format:      cfg.LogFormat,
	})

	log.Info().
		Str("address", cfg.Server.Addr()).
		Str("storefront", cfg.Storefront.Name).
		Str("log_level", cfg.LogLevel).
		Msg("starting storefront api server")

	// Load the catalog, failing fast on invalid product data
	catalog := repository.NewSeededProductRepository()
	if cfg.Storefront.CatalogFile != "" {
		catalog, err = repository.LoadFile(cfg.Storefront.CatalogFile)
		if err != nil {
			log.Error().Err(err).Str("file", cfg.Storefront.CatalogFile).Msg("failed to load catalog")
			os.Exit(1)
		}
	}
	log.Info().Int("products", catalog.Len()).Msg("catalog loaded")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sessions := session.NewStore(cfg.Session.TTL, log)
	go sessions.Run(ctx, cfg.Session.SweepInterval)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.NewStorefront(reg)
	metrics.RegisterSessionGauge(reg, func() float64 { return float64(sessions.Len()) })

	handler := routes.New(routes.Deps{
		Config:   cfg,
		Log:      log,
		Catalog:  catalog,
		Sessions: sessions,
		Metrics:  m,
		Gatherer: reg,
	})

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		log.Info().Str("address", srv.Addr).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("server failed to start")
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	<-ctx.Done()

	log.Info().Msg("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
		os.Exit(1)
	}

	log.Info().Msg("server stopped gracefully")
}
