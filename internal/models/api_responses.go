// Steamlens - Storefront Listing Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package models

import (
	"time"
)

// Response status values.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// APIResponse wraps every JSON body the server returns.
//
// Example successful response:
//
//	{
//	  "status": "success",
//	  "data": {"period": "last5", "games": 4012, ...},
//	  "metadata": {"timestamp": "2026-03-01T12:00:00Z", "query_time_ms": 3}
//	}
//
// Example error response:
//
//	{
//	  "status": "error",
//	  "data": null,
//	  "error": {"code": "VALIDATION_ERROR", "message": "period must be one of: all, last5, 2010s, 2000s"},
//	  "metadata": {"timestamp": "2026-03-01T12:00:00Z"}
//	}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata reports when a response was built and whether it came from cache.
// QueryTimeMS is 0 for cache hits.
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	QueryTimeMS int64     `json:"query_time_ms,omitempty"`
	Cached      bool      `json:"cached,omitempty"`
}

// APIError is the machine-readable part of an error response.
//
// Codes:
//   - VALIDATION_ERROR: a query parameter was rejected
//   - QUERY_ERROR: the pipeline could not answer the query
//   - METHOD_NOT_ALLOWED: wrong HTTP method
//   - NOT_FOUND: no such route
//   - SERVICE_ERROR: the dataset is not loaded
//   - RATE_LIMIT_EXCEEDED: too many requests from one client
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
