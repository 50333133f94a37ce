// Steamlens - Storefront Listing Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

/*
Package config loads and validates Steamlens configuration.

Configuration is layered with koanf, each layer overriding the previous one:

 1. Built-in defaults (defaultConfig)
 2. A YAML file: CONFIG_PATH, else config.yaml, config.yml or
    /etc/steamlens/config.yaml
 3. Environment variables

Only the variables listed below are read from the environment; anything
else in the process environment is ignored.

Dataset:
  - DATASET_PATH: listing CSV (default: data/steam.csv)
  - DATASET_READER: csv or duckdb (default: csv)
  - DUCKDB_MAX_MEMORY: memory cap for the duckdb reader (default: 1GB)
  - DUCKDB_THREADS: duckdb worker threads (default: DuckDB's own)

HTTP server:
  - HTTP_HOST: bind address (default: 0.0.0.0)
  - HTTP_PORT: listen port (default: 3857)
  - SERVER_TIMEOUT: read/write timeout (default: 30s)

Logging:
  - LOG_LEVEL: trace, debug, info, warn, error (default: info)
  - LOG_FORMAT: json or console (default: json)
  - LOG_CALLER: add file:line to entries (default: false)

Analytics:
  - CACHE_TTL: lifetime of cached query results (default: 5m)
  - TOP_N: default ranking size, 1-50 (default: 5)
  - DENSITY_BINS: bins per histogram axis, 2-500 (default: 40)
  - RECENT_CUTOFF_YEAR: first year of the "recent" period (default: 2014)

Security:
  - CORS_ORIGINS: comma-separated origins (default: *)
  - RATE_LIMIT_REQUESTS: requests per window (default: 100)
  - RATE_LIMIT_WINDOW: window length (default: 1m)
  - DISABLE_RATE_LIMIT: turn rate limiting off (default: false)

Example config.yaml:

	dataset:
	  path: /data/steam.csv
	  reader: duckdb
	analytics:
	  top_n: 10
	security:
	  cors_origins:
	    - https://dash.example.com

Load returns an error if any value is out of range, so the server never
starts with a configuration it cannot honour.
*/
package config
