// Steamlens - Storefront Listing Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package config

import "time"

// Config holds all application configuration.
type Config struct {
	Dataset   DatasetConfig   `koanf:"dataset"`
	Server    ServerConfig    `koanf:"server"`
	Logging   LoggingConfig   `koanf:"logging"`
	Analytics AnalyticsConfig `koanf:"analytics"`
	Security  SecurityConfig  `koanf:"security"`
}

// DatasetConfig locates the listing file and selects how it is read.
type DatasetConfig struct {
	// Path is the CSV file holding one row per storefront listing.
	Path string `koanf:"path"`

	// Reader is "csv" for the streaming reader or "duckdb" to let
	// read_csv_auto parse the file in-process.
	Reader string `koanf:"reader"`

	// DuckDBMaxMemory caps the in-memory DuckDB instance (e.g. "1GB").
	DuckDBMaxMemory string `koanf:"duckdb_max_memory"`

	// DuckDBThreads limits DuckDB worker threads. Zero uses DuckDB's default.
	DuckDBThreads int `koanf:"duckdb_threads"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port    int           `koanf:"port"`
	Host    string        `koanf:"host"`
	Timeout time.Duration `koanf:"timeout"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	// Default: json
	Format string `koanf:"format"`

	// Caller adds file:line to each log entry.
	Caller bool `koanf:"caller"`
}

// AnalyticsConfig tunes the aggregation pipeline and its result cache.
type AnalyticsConfig struct {
	CacheTTL         time.Duration `koanf:"cache_ttl"`
	TopN             int           `koanf:"top_n"`
	DensityBins      int           `koanf:"density_bins"`
	RecentCutoffYear int           `koanf:"recent_cutoff_year"`
}

// SecurityConfig holds CORS and rate limit settings
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// Load reads configuration from defaults, an optional YAML file and the
// environment, in increasing order of priority.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
