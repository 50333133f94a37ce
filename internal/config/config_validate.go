// Steamlens - Storefront Listing Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/tomtom215/steamlens/internal/logging"
)

// Validate checks that required configuration is present and valid
func (c *Config) Validate() error {
	if err := c.validateDataset(); err != nil {
		return err
	}
	if err := c.validateServer(); err != nil {
		return err
	}
	if err := c.validateAnalytics(); err != nil {
		return err
	}
	if err := c.validateRateLimits(); err != nil {
		return err
	}
	return c.validateLogging()
}

// validReaders defines the allowed dataset readers
var validReaders = map[string]bool{
	"csv":    true,
	"duckdb": true,
}

func (c *Config) validateDataset() error {
	if strings.TrimSpace(c.Dataset.Path) == "" {
		return fmt.Errorf("DATASET_PATH is required")
	}
	if !validReaders[c.Dataset.Reader] {
		return fmt.Errorf("DATASET_READER must be one of: csv, duckdb")
	}
	if c.Dataset.DuckDBThreads < 0 {
		return fmt.Errorf("DUCKDB_THREADS must not be negative")
	}
	return nil
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("SERVER_TIMEOUT must be positive")
	}
	return nil
}

// Analytics bounds
const (
	minTopN        = 1
	maxTopN        = 50
	minDensityBins = 2
	maxDensityBins = 500
	minCutoffYear  = 1970
	maxCutoffYear  = 2100
)

func (c *Config) validateAnalytics() error {
	a := c.Analytics
	if a.TopN < minTopN || a.TopN > maxTopN {
		return fmt.Errorf("TOP_N must be between %d and %d", minTopN, maxTopN)
	}
	if a.DensityBins < minDensityBins || a.DensityBins > maxDensityBins {
		return fmt.Errorf("DENSITY_BINS must be between %d and %d", minDensityBins, maxDensityBins)
	}
	if a.RecentCutoffYear < minCutoffYear || a.RecentCutoffYear > maxCutoffYear {
		return fmt.Errorf("RECENT_CUTOFF_YEAR must be between %d and %d", minCutoffYear, maxCutoffYear)
	}
	if a.CacheTTL < 0 {
		return fmt.Errorf("CACHE_TTL must not be negative")
	}
	return nil
}

// Rate limit constants
const (
	minRateLimitRequests = 1
	maxRateLimitRequests = 100000
	minRateLimitWindow   = 1 * time.Second
	maxRateLimitWindow   = time.Hour
)

// validateRateLimits skips the bounds when rate limiting is disabled.
func (c *Config) validateRateLimits() error {
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs < minRateLimitRequests || c.Security.RateLimitReqs > maxRateLimitRequests {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be between %d and %d", minRateLimitRequests, maxRateLimitRequests)
	}
	if c.Security.RateLimitWindow < minRateLimitWindow || c.Security.RateLimitWindow > maxRateLimitWindow {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be between %v and %v", minRateLimitWindow, maxRateLimitWindow)
	}
	return nil
}

func (c *Config) validateLogging() error {
	if !logging.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("LOG_LEVEL %q is not a known level (trace, debug, info, warn, error)", c.Logging.Level)
	}
	if c.Logging.Format != "" && !logging.ValidFormat(c.Logging.Format) {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}

// HasWildcardCORS reports whether any allowed origin is "*".
func (c *Config) HasWildcardCORS() bool {
	for _, origin := range c.Security.CORSOrigins {
		if origin == "*" {
			return true
		}
	}
	return false
}
