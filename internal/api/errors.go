// Steamlens - Storefront Listing Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package api

import "github.com/tomtom215/steamlens/internal/validation"

// Error codes carried in models.APIError.Code.
const (
	CodeValidation       = validation.CodeValidation
	CodeQuery            = "QUERY_ERROR"
	CodeMethodNotAllowed = "METHOD_NOT_ALLOWED"
	CodeNotFound         = "NOT_FOUND"
	CodeService          = "SERVICE_ERROR"
	CodeRateLimited      = "RATE_LIMIT_EXCEEDED"
)
