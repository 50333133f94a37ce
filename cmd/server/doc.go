// Steamlens - Storefront Listing Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

/*
Package main is the entry point for the Steamlens server.

Steamlens loads one storefront listing table at startup, preprocesses it
once and serves dashboard analytics (KPIs, release trends, rankings, price
categories, review density and ownership charts) over a JSON API.

# Application Architecture

The server runs under a Suture v4 supervisor tree:

	RootSupervisor ("steamlens")
	├── DataSupervisor ("data-layer")
	│   └── Cache janitor (TTL sweeps)
	└── APISupervisor ("api-layer")
	    └── HTTP Server

Startup order:

 1. .env file (optional, godotenv)
 2. Configuration: Koanf v2 with defaults, config file and environment
 3. Logging: zerolog with JSON or console output
 4. Dataset: CSV or DuckDB reader; a missing file is fatal
 5. Pipeline: preprocessing and engine construction
 6. Result cache and HTTP router
 7. Supervisor tree

# Configuration

Priority: environment variables > config file > defaults.

	DATASET_PATH=data/steam.csv   # listing table
	DATASET_READER=csv            # csv or duckdb
	HTTP_PORT=3857
	LOG_LEVEL=info                # trace, debug, info, warn, error
	LOG_FORMAT=json               # json or console
	CACHE_TTL=5m                  # 0 disables result caching
	TOP_N=5                       # default ranking size
	DENSITY_BINS=40               # bins per density axis
	RECENT_CUTOFF_YEAR=2014       # first year of "Last 5 years"
	CORS_ORIGINS=*                # comma-separated
	RATE_LIMIT_REQUESTS=100
	RATE_LIMIT_WINDOW=1m

See package config for the full list and the config.yaml layout.

# Signal Handling

SIGINT and SIGTERM cancel the root context. The HTTP service drains
in-flight requests for up to 10 seconds, and any service that fails to stop
in time is logged before exit.

# Example Usage

	DATASET_PATH=./steam.csv LOG_FORMAT=console ./steamlens
	curl 'http://localhost:3857/api/v1/dashboard?period=2010s&genre=Indie'
*/
package main
