// Steamlens - Storefront Listing Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

// Package validation provides struct validation using go-playground/validator v10.
//
// A single validator instance is built on first use and shared. On top of
// the built-in tags it registers:
//   - period: a known analysis period key (all, last5, 2010s, 2000s)
//   - bracket: a known price bracket key (all, free, cheap, ...)
//
// Both accept the empty string, which selects the default.
//
// Errors name fields by their `query` or `json` tag so that messages match
// the request parameters:
//
//	type dashboardRequest struct {
//	    Period string `query:"period" validate:"period"`
//	    Limit  int    `query:"limit" validate:"omitempty,min=1,max=50"`
//	}
//
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    respondAPIError(w, r, http.StatusBadRequest, verr.ToAPIError(), nil)
//	    return
//	}
//
// ToAPIError always reports code VALIDATION_ERROR. A single failure carries
// field, tag and value in Details; several failures are listed under
// Details["fields"].
package validation
