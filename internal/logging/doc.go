// Steamlens - Storefront Listing Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

// Package logging provides the process-wide zerolog logger.
//
// Initialize once at startup from configuration:
//
//	logging.Init(logging.Config{
//	    Level:     cfg.Logging.Level,
//	    Format:    cfg.Logging.Format,
//	    Caller:    cfg.Logging.Caller,
//	    Timestamp: true,
//	})
//
// Log with structured fields and terminate every chain with Msg or Send:
//
//	logging.Info().Int("rows", n).Msg("Dataset loaded")
//	logging.Ctx(r.Context()).Warn().Err(err).Msg("Rejected query")
//
// Ctx adds the request_id and correlation_id carried by a request context.
// NewSlogLogger bridges the same output to libraries that take *slog.Logger.
package logging
