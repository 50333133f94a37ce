// Steamlens - Storefront Listing Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/steamlens/internal/metrics"
	"github.com/tomtom215/steamlens/internal/models"
)

// HealthStatus is the body of GET /health.
type HealthStatus struct {
	Status        string  `json:"status"`
	Version       string  `json:"version"`
	DatasetLoaded bool    `json:"dataset_loaded"`
	Rows          int     `json:"rows"`
	CacheEntries  int64   `json:"cache_entries"`
	CacheHitRate  float64 `json:"cache_hit_rate"`
	Uptime        float64 `json:"uptime"`
}

// Health handles GET /api/v1/health: overall status, dataset size and
// cache effectiveness.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if !requireGET(w, r) {
		return
	}

	health := HealthStatus{
		Status:        "healthy",
		Version:       h.version,
		DatasetLoaded: h.engine != nil,
		Rows:          h.stats.Rows,
		Uptime:        time.Since(h.startTime).Seconds(),
	}
	if !health.DatasetLoaded {
		health.Status = "degraded"
	}
	metrics.SetUptime(h.startTime)
	if h.cache != nil {
		health.CacheEntries = h.cache.GetStats().TotalKeys
		health.CacheHitRate = h.cache.HitRate()
	}

	respondJSON(w, r, http.StatusOK, &models.APIResponse{
		Status:   models.StatusSuccess,
		Data:     health,
		Metadata: models.Metadata{Timestamp: time.Now()},
	})
}

// HealthLive handles the liveness probe. It answers 200 whenever the
// process can serve HTTP.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	if !requireGET(w, r) {
		return
	}
	respondJSON(w, r, http.StatusOK, &models.APIResponse{
		Status: models.StatusSuccess,
		Data: map[string]interface{}{
			"alive":  true,
			"uptime": time.Since(h.startTime).Seconds(),
		},
		Metadata: models.Metadata{Timestamp: time.Now()},
	})
}

// HealthReady handles the readiness probe. It answers 503 until a dataset
// is loaded, and reports the load statistics once it is.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	if !requireGET(w, r) {
		return
	}

	ready := h.engine != nil
	statusCode := http.StatusOK
	status := "ready"
	if !ready {
		statusCode = http.StatusServiceUnavailable
		status = "not_ready"
	}

	respondJSON(w, r, statusCode, &models.APIResponse{
		Status: status,
		Data: map[string]interface{}{
			"dataset_loaded": ready,
			"dataset":        h.stats,
			"uptime":         time.Since(h.startTime).Seconds(),
		},
		Metadata: models.Metadata{Timestamp: time.Now()},
	})
}
