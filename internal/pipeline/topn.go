// Steamlens - Storefront Listing Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package pipeline

import (
	"sort"

	"github.com/tomtom215/steamlens/internal/models"
)

// DefaultTopN is the ranking size used when a query leaves Limit unset.
const DefaultTopN = 5

// Review types of the long-form review bars.
const (
	ReviewPositive = "positive_ratings"
	ReviewNegative = "negative_ratings"
)

// TopGamesByPositive ranks rows by positive ratings, highest first. Ties
// keep row order. Bars lists every positive bar before every negative bar.
func TopGamesByPositive(rows []Listing, n int) ([]models.GameReviews, []models.ReviewBar) {
	order := make([]int, len(rows))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return rows[order[a]].PositiveRatings > rows[order[b]].PositiveRatings
	})
	n = clampLimit(n, len(order))

	games := make([]models.GameReviews, n)
	bars := make([]models.ReviewBar, 0, 2*n)
	for rank, idx := range order[:n] {
		l := &rows[idx]
		games[rank] = models.GameReviews{
			Rank:     rank + 1,
			Name:     l.Name,
			Positive: l.PositiveRatings,
			Negative: l.NegativeRatings,
		}
	}
	for _, g := range games {
		bars = append(bars, models.ReviewBar{Name: g.Name, ReviewType: ReviewPositive, Count: g.Positive})
	}
	for _, g := range games {
		bars = append(bars, models.ReviewBar{Name: g.Name, ReviewType: ReviewNegative, Count: g.Negative})
	}
	return games, bars
}

// TopGenresByFrequency ranks genres of an exploded view by row count.
// Ties keep first-seen order.
func TopGenresByFrequency(exploded []GenreRow, n int) []models.GenreCount {
	counts := countGenres(exploded)
	sort.SliceStable(counts, func(a, b int) bool { return counts[a].Games > counts[b].Games })
	return counts[:clampLimit(n, len(counts))]
}

// TopPublishersByMeanPositive ranks publishers by the unweighted mean of
// their rows' positive ratings. Rows without a publisher are skipped.
// Ties keep first-seen order.
func TopPublishersByMeanPositive(rows []Listing, n int) []models.PublisherScore {
	type acc struct {
		publisher string
		sum       float64
		games     int
	}
	index := make(map[string]int)
	var groups []acc
	for i := range rows {
		p := rows[i].Publisher
		if p == "" {
			continue
		}
		g, ok := index[p]
		if !ok {
			g = len(groups)
			index[p] = g
			groups = append(groups, acc{publisher: p})
		}
		groups[g].sum += float64(rows[i].PositiveRatings)
		groups[g].games++
	}

	scores := make([]models.PublisherScore, len(groups))
	for i, g := range groups {
		scores[i] = models.PublisherScore{
			Publisher:           g.publisher,
			MeanPositiveRatings: g.sum / float64(g.games),
			Games:               g.games,
		}
	}
	sort.SliceStable(scores, func(a, b int) bool {
		return scores[a].MeanPositiveRatings > scores[b].MeanPositiveRatings
	})
	return scores[:clampLimit(n, len(scores))]
}

// clampLimit bounds a ranking size to [0, size].
func clampLimit(n, size int) int {
	if n < 0 {
		return 0
	}
	if n > size {
		return size
	}
	return n
}
