// Steamlens - Storefront Listing Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/tomtom215/steamlens/internal/cache"
	"github.com/tomtom215/steamlens/internal/models"
	"github.com/tomtom215/steamlens/internal/pipeline"
)

// AnalyticsQueryExecutor runs the cache-first flow shared by every
// analytics handler:
//
//  1. Reject non-GET methods and a missing dataset
//  2. Parse and validate the query parameters
//  3. Serve a cached result for the canonical query if one exists
//  4. Otherwise run the stage and cache its result
//  5. Respond with query time and cache status in the metadata
type AnalyticsQueryExecutor struct {
	handler *Handler
}

// NewAnalyticsQueryExecutor creates an executor bound to h's engine and cache.
func NewAnalyticsQueryExecutor(h *Handler) *AnalyticsQueryExecutor {
	return &AnalyticsQueryExecutor{handler: h}
}

// AnalyticsQueryFunc computes one stage for a validated query. The result
// must be JSON-serializable and is shared between requests once cached, so
// it must not be modified after return.
type AnalyticsQueryFunc func(q pipeline.Query) (interface{}, error)

// stageFunc adapts a typed engine method to AnalyticsQueryFunc.
func stageFunc[T any](fn func(pipeline.Query) (*T, error)) AnalyticsQueryFunc {
	return func(q pipeline.Query) (interface{}, error) {
		v, err := fn(q)
		if err != nil {
			return nil, err
		}
		return v, nil
	}
}

// Execute answers one analytics request. stage names the cache key prefix.
func (e *AnalyticsQueryExecutor) Execute(w http.ResponseWriter, r *http.Request, stage string, queryFunc AnalyticsQueryFunc) {
	if !requireGET(w, r) {
		return
	}
	h := e.handler
	if h.engine == nil {
		respondError(w, r, http.StatusServiceUnavailable, CodeService, "Dataset not loaded", nil)
		return
	}

	req, apiErr := parseAnalyticsRequest(r)
	if apiErr != nil {
		respondAPIError(w, r, http.StatusBadRequest, apiErr, nil)
		return
	}
	q := req.Query()
	cacheKey := cache.GenerateKey(stage, q)

	if h.cache != nil {
		if cached, found := h.cache.Get(cacheKey); found {
			respondSuccess(w, r, cached, 0, true)
			return
		}
	}

	start := time.Now()
	data, err := queryFunc(q)
	if err != nil {
		if errors.Is(err, pipeline.ErrUnknownPeriod) || errors.Is(err, pipeline.ErrUnknownBracket) {
			respondAPIError(w, r, http.StatusBadRequest, &models.APIError{Code: CodeValidation, Message: err.Error()}, nil)
			return
		}
		respondError(w, r, http.StatusInternalServerError, CodeQuery, "Failed to compute "+stage, err)
		return
	}

	if h.cache != nil {
		h.cache.Set(cacheKey, data)
	}
	respondSuccess(w, r, data, time.Since(start), false)
}
