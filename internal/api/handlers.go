// Steamlens - Storefront Listing Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package api

import (
	"time"

	"github.com/tomtom215/steamlens/internal/cache"
	"github.com/tomtom215/steamlens/internal/config"
	"github.com/tomtom215/steamlens/internal/logging"
	"github.com/tomtom215/steamlens/internal/models"
	"github.com/tomtom215/steamlens/internal/pipeline"
)

// Handler serves the analytics API over one loaded dataset.
type Handler struct {
	engine    *pipeline.Engine
	cache     *cache.Cache
	config    *config.Config
	stats     models.DatasetStats
	version   string
	startTime time.Time
	executor  *AnalyticsQueryExecutor
}

// NewHandler creates a handler. resultCache may be nil to disable caching.
func NewHandler(engine *pipeline.Engine, resultCache *cache.Cache, cfg *config.Config, stats models.DatasetStats, version string) *Handler {
	h := &Handler{
		engine:    engine,
		cache:     resultCache,
		config:    cfg,
		stats:     stats,
		version:   version,
		startTime: time.Now(),
	}
	h.executor = NewAnalyticsQueryExecutor(h)
	return h
}

// ClearCache drops every cached query result.
func (h *Handler) ClearCache() {
	if h.cache != nil {
		h.cache.Clear()
		logging.Info().Msg("Analytics cache cleared")
	}
}

// DatasetStatsFrom describes a loaded table for the /dataset endpoint.
func DatasetStatsFrom(source, reader string, s pipeline.TableStats, loadTime time.Duration) models.DatasetStats {
	return models.DatasetStats{
		Source:         source,
		Reader:         reader,
		Rows:           s.Rows,
		ExplodedRows:   s.ExplodedRows,
		UndatedRows:    s.UndatedRows,
		UnpricedRows:   s.UnpricedRows,
		UnratedRows:    s.UnratedRows,
		UnparsedOwners: s.UnparsedOwners,
		DistinctGenres: s.DistinctGenres,
		EarliestYear:   s.EarliestYear,
		LatestYear:     s.LatestYear,
		LoadTimeMS:     loadTime.Milliseconds(),
	}
}
