// Steamlens - Storefront Listing Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

/*
Package metrics provides Prometheus metrics for the dataset, the
aggregation pipeline and the HTTP API.

Metrics are registered on the default registry with promauto and exposed
at /metrics in Prometheus text format:

	curl http://localhost:3857/metrics

# Available Metrics

Dataset:
  - dataset_load_duration_seconds: time to read and parse the source (histogram)
  - dataset_rows: rows per view of the working table (gauge)
    Labels: view (loaded, exploded, undated, unpriced, unrated, unparsed_owners)

Pipeline:
  - pipeline_stage_duration_seconds: aggregation stage latency (histogram)
    Labels: stage
  - pipeline_stage_errors_total: queries rejected by a stage (counter)
    Labels: stage

API:
  - api_requests_total: requests served (counter)
    Labels: method, endpoint, status_code
  - api_request_duration_seconds: request latency (histogram)
    Labels: method, endpoint
  - api_active_requests: in-flight requests (gauge)

Cache:
  - cache_hits_total, cache_misses_total, cache_evictions_total (counters)
  - cache_entries (gauge)
    Labels: cache_type

Application:
  - app_info: version labels (gauge, always 1)
  - app_uptime_seconds (gauge)

# Usage

	start := time.Now()
	grid, unrated := pipeline.ReviewDensity(rows, bracket, bins)
	metrics.ObserveStage("density", start)
*/
package metrics
