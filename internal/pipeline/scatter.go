// Steamlens - Storefront Listing Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package pipeline

import (
	"github.com/shopspring/decimal"

	"github.com/tomtom215/steamlens/internal/models"
)

// RatioByGenre lists one point per (listing, genre) pair with a defined
// review ratio and a price no greater than maxPrice. A non-positive
// maxPrice falls back to DefaultScatterMaxPrice.
func RatioByGenre(rows []Listing, maxPrice float64) []models.RatioPoint {
	if maxPrice <= 0 {
		maxPrice = DefaultScatterMaxPrice
	}
	limit := decimal.NewFromFloat(maxPrice)

	points := make([]models.RatioPoint, 0)
	for _, row := range Explode(rows) {
		l := row.Listing
		if !l.HasRatio() || l.Price == nil || l.Price.GreaterThan(limit) {
			continue
		}
		points = append(points, models.RatioPoint{
			Name:          l.Name,
			Genre:         row.Genre,
			Price:         l.Price.InexactFloat64(),
			PositiveRatio: l.PositiveRatio,
		})
	}
	return points
}
