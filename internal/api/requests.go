// Steamlens - Storefront Listing Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/tomtom215/steamlens/internal/models"
	"github.com/tomtom215/steamlens/internal/pipeline"
)

// AnalyticsRequest holds the query parameters shared by every analytics
// endpoint. Parameters an endpoint does not use are validated but ignored.
//
//   - period: all, last5, 2010s or 2000s (default all)
//   - bracket: all, free, cheap, mid, high or premium (default all)
//   - genre: a genre name or "All" (default All)
//   - limit: ranking size, 1-50 (default from config)
//   - max_price: scatter price cap, above 0 (default 100)
type AnalyticsRequest struct {
	Period   string  `query:"period" validate:"period"`
	Bracket  string  `query:"bracket" validate:"bracket"`
	Genre    string  `query:"genre" validate:"max=100"`
	Limit    int     `query:"limit" validate:"omitempty,min=1,max=50"`
	MaxPrice float64 `query:"max_price" validate:"omitempty,gt=0,lte=100000"`
}

// parseAnalyticsRequest reads and validates the query string.
func parseAnalyticsRequest(r *http.Request) (AnalyticsRequest, *models.APIError) {
	q := r.URL.Query()
	req := AnalyticsRequest{
		Period:  strings.TrimSpace(q.Get("period")),
		Bracket: strings.TrimSpace(q.Get("bracket")),
		Genre:   strings.TrimSpace(q.Get("genre")),
	}

	if v := strings.TrimSpace(q.Get("limit")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return req, paramError("limit", "limit must be an integer", v)
		}
		req.Limit = n
	}
	if v := strings.TrimSpace(q.Get("max_price")); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return req, paramError("max_price", "max_price must be a number", v)
		}
		req.MaxPrice = f
	}

	if apiErr := validateRequest(&req); apiErr != nil {
		return req, apiErr
	}
	return req, nil
}

func paramError(field, message, value string) *models.APIError {
	return &models.APIError{
		Code:    CodeValidation,
		Message: message,
		Details: map[string]interface{}{"field": field, "value": value},
	}
}

// Query converts a validated request into a canonical pipeline query, so
// that equivalent spellings share one cache entry.
func (req AnalyticsRequest) Query() pipeline.Query {
	period, err := pipeline.ParsePeriod(req.Period)
	if err != nil {
		period = pipeline.Period(req.Period)
	}
	bracket := pipeline.Bracket(req.Bracket)
	if spec, err := pipeline.LookupBracket(bracket); err == nil {
		bracket = spec.Key
	}
	genre := req.Genre
	if strings.EqualFold(genre, pipeline.AllGenres) {
		genre = ""
	}
	return pipeline.Query{
		Period:   period,
		Bracket:  bracket,
		Genre:    genre,
		Limit:    req.Limit,
		MaxPrice: req.MaxPrice,
	}
}
