// Steamlens - Storefront Listing Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package pipeline

import "github.com/tomtom215/steamlens/internal/models"

// BuildFilterOptions lists the selectable periods and brackets in display
// order, and the genre choices: AllGenres followed by every distinct genre
// of the full exploded view.
func BuildFilterOptions(periods PeriodTable, exploded []GenreRow) *models.FilterOptions {
	specs := periods.Specs()
	out := &models.FilterOptions{
		Periods:  make([]models.FilterOption, len(specs)),
		Brackets: make([]models.FilterOption, len(bracketTable)),
	}
	for i, p := range specs {
		out.Periods[i] = models.FilterOption{Key: string(p.Key), Label: p.Label}
	}
	for i, b := range bracketTable {
		out.Brackets[i] = models.FilterOption{Key: string(b.Key), Label: b.Label}
	}
	out.Genres = append([]string{AllGenres}, DistinctGenres(exploded)...)
	return out
}
