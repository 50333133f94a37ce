// Steamlens - Storefront Listing Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package pipeline

import (
	"github.com/shopspring/decimal"

	"github.com/tomtom215/steamlens/internal/models"
)

// Summarize computes the KPI record for a period's subsets.
func Summarize(s Subsets) *models.Summary {
	out := &models.Summary{
		Period:     string(s.Period),
		Games:      len(s.Current),
		Publishers: DistinctPublishers(s.Current),
		TopGenre:   ModalGenre(Explode(s.Current)),
	}

	current, hasCurrent := MeanPrice(s.Current)
	if hasCurrent {
		out.MeanPrice = floatPtr(current.InexactFloat64())
	}

	if !s.Comparable() {
		return out
	}

	delta := models.SummaryDelta{Available: true}
	prevGames := len(s.Previous)
	gamesDelta := len(s.Current) - prevGames
	delta.PreviousGames = &prevGames
	delta.GamesDelta = &gamesDelta

	previous, hasPrevious := MeanPrice(s.Previous)
	if hasPrevious {
		delta.PreviousMeanPrice = floatPtr(previous.InexactFloat64())
	}
	if hasCurrent && hasPrevious {
		diff := current.Sub(previous)
		delta.MeanPriceDelta = floatPtr(diff.InexactFloat64())
		if !previous.IsZero() {
			pct := diff.Div(previous).Mul(hundred)
			delta.MeanPriceDeltaPct = floatPtr(pct.InexactFloat64())
		}
	}
	out.Comparison = delta
	return out
}

// DistinctPublishers counts distinct non-empty publishers.
func DistinctPublishers(rows []Listing) int {
	seen := make(map[string]struct{})
	for i := range rows {
		if p := rows[i].Publisher; p != "" {
			seen[p] = struct{}{}
		}
	}
	return len(seen)
}

// ModalGenre returns the most frequent genre of an exploded view, with the
// first-seen genre winning ties, or UnknownGenre when the view is empty.
func ModalGenre(exploded []GenreRow) string {
	counts := countGenres(exploded)
	if len(counts) == 0 {
		return UnknownGenre
	}
	best := counts[0]
	for _, c := range counts[1:] {
		if c.Games > best.Games {
			best = c
		}
	}
	return best.Genre
}

// MeanPrice is the arithmetic mean of every priced row. The second result
// is false when no row has a price.
func MeanPrice(rows []Listing) (decimal.Decimal, bool) {
	sum := decimal.Zero
	n := int64(0)
	for i := range rows {
		if rows[i].Price == nil {
			continue
		}
		sum = sum.Add(*rows[i].Price)
		n++
	}
	if n == 0 {
		return decimal.Zero, false
	}
	return sum.Div(decimal.NewFromInt(n)), true
}

// countGenres returns genre frequencies in first-seen order.
func countGenres(exploded []GenreRow) []models.GenreCount {
	index := make(map[string]int)
	var counts []models.GenreCount
	for _, row := range exploded {
		i, ok := index[row.Genre]
		if !ok {
			i = len(counts)
			index[row.Genre] = i
			counts = append(counts, models.GenreCount{Genre: row.Genre})
		}
		counts[i].Games++
	}
	return counts
}

func floatPtr(v float64) *float64 {
	return &v
}
