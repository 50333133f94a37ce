// Steamlens - Storefront Listing Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package api

import (
	"net/http"

	"github.com/tomtom215/steamlens/internal/pipeline"
)

// Summary handles GET /api/v1/dashboard/summary: games, publishers, top genre and
// mean price, with deltas against the previous window.
func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	h.executor.Execute(w, r, pipeline.StageSummary, stageFunc(h.engine.Summary))
}

// Trend handles GET /api/v1/dashboard/trend: releases per year.
func (h *Handler) Trend(w http.ResponseWriter, r *http.Request) {
	h.executor.Execute(w, r, pipeline.StageTrend, stageFunc(h.engine.Trend))
}

// TopGames handles GET /api/v1/dashboard/top-games: games ranked by positive ratings.
func (h *Handler) TopGames(w http.ResponseWriter, r *http.Request) {
	h.executor.Execute(w, r, pipeline.StageTopGames, stageFunc(h.engine.TopGames))
}

// TopGenres handles GET /api/v1/dashboard/top-genres: genres ranked by game count.
func (h *Handler) TopGenres(w http.ResponseWriter, r *http.Request) {
	h.executor.Execute(w, r, pipeline.StageTopGenres, stageFunc(h.engine.TopGenres))
}

// TopPublishers handles GET /api/v1/dashboard/top-publishers: publishers ranked by
// mean positive ratings.
func (h *Handler) TopPublishers(w http.ResponseWriter, r *http.Request) {
	h.executor.Execute(w, r, pipeline.StageTopPublishers, stageFunc(h.engine.TopPublishers))
}

// Prices handles GET /api/v1/dashboard/price-categories: Free versus Paid counts.
func (h *Handler) Prices(w http.ResponseWriter, r *http.Request) {
	h.executor.Execute(w, r, pipeline.StagePrices, stageFunc(h.engine.Prices))
}

// Density handles GET /api/v1/dashboard/review-density: the review ratio by price grid for
// the selected bracket.
func (h *Handler) Density(w http.ResponseWriter, r *http.Request) {
	h.executor.Execute(w, r, pipeline.StageDensity, stageFunc(h.engine.Density))
}

// Ownership handles GET /api/v1/dashboard/ownership: owners against average playtime
// on the genre polar chart.
func (h *Handler) Ownership(w http.ResponseWriter, r *http.Request) {
	h.executor.Execute(w, r, pipeline.StageOwnership, stageFunc(h.engine.Ownership))
}

// MedianPlaytime handles GET /api/v1/dashboard/median-playtime: as Ownership with
// median playtime.
func (h *Handler) MedianPlaytime(w http.ResponseWriter, r *http.Request) {
	h.executor.Execute(w, r, pipeline.StageMedianPlaytime, stageFunc(h.engine.MedianPlaytime))
}

// RatioScatter handles GET /api/v1/dashboard/ratio-scatter: per-genre review ratio against
// price up to max_price.
func (h *Handler) RatioScatter(w http.ResponseWriter, r *http.Request) {
	h.executor.Execute(w, r, pipeline.StageRatioScatter, stageFunc(h.engine.RatioScatter))
}

// Dashboard handles GET /api/v1/dashboard: every chart for one selection.
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	h.executor.Execute(w, r, pipeline.StageDashboard, stageFunc(h.engine.Dashboard))
}

// Filters handles GET /api/v1/options: the values each control accepts.
func (h *Handler) Filters(w http.ResponseWriter, r *http.Request) {
	if !requireGET(w, r) {
		return
	}
	if h.engine == nil {
		respondError(w, r, http.StatusServiceUnavailable, CodeService, "Dataset not loaded", nil)
		return
	}
	respondSuccess(w, r, h.engine.FilterOptions(), 0, false)
}

// Dataset handles GET /api/v1/dataset: row counts and load statistics.
func (h *Handler) Dataset(w http.ResponseWriter, r *http.Request) {
	if !requireGET(w, r) {
		return
	}
	if h.engine == nil {
		respondError(w, r, http.StatusServiceUnavailable, CodeService, "Dataset not loaded", nil)
		return
	}
	respondSuccess(w, r, h.stats, 0, false)
}
