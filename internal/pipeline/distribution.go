// Steamlens - Storefront Listing Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package pipeline

import (
	"sort"

	"github.com/tomtom215/steamlens/internal/models"
)

// YearlyReleases counts releases per year in ascending year order. Rows
// without a year are left out of the line and counted in the second result.
func YearlyReleases(rows []Listing) ([]models.YearCount, int) {
	counts := make(map[int]int)
	undated := 0
	for i := range rows {
		if !rows[i].HasYear {
			undated++
			continue
		}
		counts[rows[i].ReleaseYear]++
	}
	years := make([]models.YearCount, 0, len(counts))
	for year, n := range counts {
		years = append(years, models.YearCount{Year: year, Games: n})
	}
	sort.Slice(years, func(i, j int) bool { return years[i].Year < years[j].Year })
	return years, undated
}

// PriceCategories counts Free and Paid rows; the two always sum to
// len(rows). The second result is how many of the Paid rows had no price.
func PriceCategories(rows []Listing) ([]models.CategoryCount, int) {
	var free, paid, unpriced int
	for i := range rows {
		if rows[i].Category == PriceFree {
			free++
			continue
		}
		paid++
		if rows[i].Price == nil {
			unpriced++
		}
	}
	share := func(n int) float64 {
		if len(rows) == 0 {
			return 0
		}
		return float64(n) / float64(len(rows))
	}
	return []models.CategoryCount{
		{Category: string(PriceFree), Games: free, Share: share(free)},
		{Category: string(PricePaid), Games: paid, Share: share(paid)},
	}, unpriced
}
