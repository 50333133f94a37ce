// Steamlens - Storefront Listing Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

/*
Package middleware provides HTTP instrumentation shared by every API route.

  - PrometheusMetrics: api_requests_total, api_request_duration_seconds and
    api_active_requests, labelled by chi route pattern
  - AccessLog: one structured log line per request, at warn when slow

Both take http.HandlerFunc; the api package adapts them to chi with r.Use.
Request IDs, CORS, panic recovery and rate limiting come from chi,
go-chi/cors and go-chi/httprate and are wired in the api package.
*/
package middleware
