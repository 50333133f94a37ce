// Steamlens - Storefront Listing Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/tomtom215/steamlens/internal/api"
	"github.com/tomtom215/steamlens/internal/cache"
	"github.com/tomtom215/steamlens/internal/config"
	"github.com/tomtom215/steamlens/internal/dataset"
	"github.com/tomtom215/steamlens/internal/logging"
	"github.com/tomtom215/steamlens/internal/metrics"
	"github.com/tomtom215/steamlens/internal/models"
	"github.com/tomtom215/steamlens/internal/pipeline"
	"github.com/tomtom215/steamlens/internal/supervisor"
	"github.com/tomtom215/steamlens/internal/supervisor/services"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	// A .env file is optional; real environment variables take precedence.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		logging.Warn().Err(err).Msg("Failed to read .env file")
	}

	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
	})
	metrics.SetAppInfo(version, runtime.Version())

	logging.Info().
		Str("version", version).
		Str("dataset", cfg.Dataset.Path).
		Str("reader", cfg.Dataset.Reader).
		Msg("Starting Steamlens")

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	engine, stats, err := loadEngine(ctx, cfg)
	if err != nil {
		cancel()
		logging.Fatal().Err(err).Str("path", cfg.Dataset.Path).Msg("Failed to load dataset")
	}

	if cfg.Security.RateLimitDisabled {
		logging.Warn().Msg("Rate limiting is DISABLED (DISABLE_RATE_LIMIT=true)")
	}
	if cfg.HasWildcardCORS() {
		logging.Warn().Msg("CORS allows any origin (CORS_ORIGINS=*). Set explicit origins for public deployments.")
	}

	// CACHE_TTL=0 turns result caching off.
	var resultCache *cache.Cache
	if cfg.Analytics.CacheTTL > 0 {
		resultCache = cache.New("analytics", cfg.Analytics.CacheTTL)
	}
	handler := api.NewHandler(engine, resultCache, cfg, stats, version)
	router := api.NewRouter(handler, api.NewChiMiddleware(api.ChiMiddlewareConfigFrom(cfg.Security)))

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router.SetupChi(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
		cancel()
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	// Data layer
	if resultCache != nil {
		tree.AddDataService(cache.NewJanitor(resultCache, cfg.Analytics.CacheTTL))
	}

	// API layer
	tree.AddAPIService(services.NewHTTPServerService(server, server.Addr, services.DefaultShutdownTimeout))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	logging.Info().Msg("Starting supervisor tree...")
	errCh := tree.ServeBackground(ctx)

	// The tree's error channel delivers exactly one value and is never closed.
	var treeErr error
	select {
	case <-ctx.Done():
		logging.Info().Msg("Shutdown signal received, waiting for supervisor to finish...")
		treeErr = <-errCh
	case treeErr = <-errCh:
	}
	if treeErr != nil && !errors.Is(treeErr, context.Canceled) {
		logging.Error().Err(treeErr).Msg("Supervisor tree error")
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	if len(unstopped) > 0 {
		logging.Warn().Int("count", len(unstopped)).Msg("Services failed to stop within timeout")
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
		}
	}

	logging.Info().Msg("Application stopped gracefully")
}

// loadEngine reads the dataset, preprocesses it once and wraps it in an
// engine configured from the analytics section.
func loadEngine(ctx context.Context, cfg *config.Config) (*pipeline.Engine, models.DatasetStats, error) {
	start := time.Now()

	loader, err := dataset.NewLoader(cfg.Dataset.Reader, dataset.DuckDBOptions{
		MaxMemory: cfg.Dataset.DuckDBMaxMemory,
		Threads:   cfg.Dataset.DuckDBThreads,
	})
	if err != nil {
		return nil, models.DatasetStats{}, err
	}

	records, err := dataset.LoadFile(ctx, loader, cfg.Dataset.Path)
	if err != nil {
		return nil, models.DatasetStats{}, err
	}

	table := pipeline.Preprocess(records)
	engine := pipeline.NewEngine(table, pipeline.Options{
		TopN:         cfg.Analytics.TopN,
		DensityBins:  cfg.Analytics.DensityBins,
		RecentCutoff: cfg.Analytics.RecentCutoffYear,
	})

	ts := engine.Stats()
	metrics.SetDatasetRows("listings", ts.Rows)
	metrics.SetDatasetRows("exploded", ts.ExplodedRows)
	metrics.SetDatasetRows("undated", ts.UndatedRows)

	logging.Info().
		Int("rows", ts.Rows).
		Int("exploded_rows", ts.ExplodedRows).
		Int("genres", ts.DistinctGenres).
		Int("undated", ts.UndatedRows).
		Int("unpriced", ts.UnpricedRows).
		Int("unparsed_owners", ts.UnparsedOwners).
		Dur("duration", time.Since(start)).
		Msg("Dataset preprocessed")

	return engine, api.DatasetStatsFrom(cfg.Dataset.Path, cfg.Dataset.Reader, ts, time.Since(start)), nil
}
