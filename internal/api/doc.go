// Steamlens - Storefront Listing Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

/*
Package api serves the storefront analytics over a read-only JSON REST API.

Every analytics endpoint answers GET with the standard envelope:

	{
	  "status": "success",
	  "data": { ... },
	  "metadata": {"timestamp": "...", "query_time_ms": 3, "cached": false}
	}

Errors use the same envelope with status "error" and an error object
carrying one of the codes in errors.go.

# Endpoints

	GET /api/v1/dashboard                   every chart in one response
	GET /api/v1/dashboard/summary           KPIs with deltas against the previous window
	GET /api/v1/dashboard/trend             releases per year
	GET /api/v1/dashboard/top-games         top games by positive ratings
	GET /api/v1/dashboard/top-genres        top genres by game count
	GET /api/v1/dashboard/top-publishers    top publishers by mean positive ratings
	GET /api/v1/dashboard/price-categories  Free versus Paid
	GET /api/v1/dashboard/review-density    review ratio by price grid for one bracket
	GET /api/v1/dashboard/ownership         owners against average playtime per genre
	GET /api/v1/dashboard/median-playtime   owners against median playtime per genre
	GET /api/v1/dashboard/ratio-scatter     review ratio against price per genre
	GET /api/v1/options                     accepted values for each control
	GET /api/v1/dataset                     load statistics
	GET /api/v1/health[/live|/ready]
	GET /metrics                  Prometheus exposition

# Query Parameters

Analytics endpoints share one parameter set (see AnalyticsRequest): period,
bracket, genre, limit and max_price. Parameters are validated with
go-playground/validator before any computation, and canonicalised so that
spellings such as "2010S" and "2010s" share one cache entry.

# Caching

Results are cached per stage and canonical query for the configured TTL.
Success responses also carry an ETag over the data, so a client revalidating
with If-None-Match gets 304 Not Modified.

# Middleware

Global: request ID with log correlation, RealIP, panic recovery, CORS and
access logging. The /api/v1 group adds per-IP rate limiting (httprate),
security headers, Prometheus request metrics and gzip compression. Health
probes are never rate limited.
*/
package api
