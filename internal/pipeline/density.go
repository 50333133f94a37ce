// Steamlens - Storefront Listing Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package pipeline

import (
	"math"

	"github.com/tomtom215/steamlens/internal/models"
)

// DefaultDensityBins is the bin count on each histogram axis.
const DefaultDensityBins = 40

// Histogram2D is an equal-width 2-D histogram.
type Histogram2D struct {
	XEdges []float64
	YEdges []float64
	Counts [][]int
	Total  int
}

// ReviewDensity bins (positive_ratio, price) for rows in the bracket.
// Rows without ratings or without a price never enter the grid; the number
// of rows dropped for missing ratings is returned as the second result.
func ReviewDensity(rows []Listing, bracket BracketSpec, bins int) (Histogram2D, int) {
	xs := make([]float64, 0, len(rows))
	ys := make([]float64, 0, len(rows))
	unrated := 0
	for i := range rows {
		l := &rows[i]
		if l.Price == nil || !bracket.Contains(*l.Price) {
			continue
		}
		if !l.HasRatio() {
			unrated++
			continue
		}
		xs = append(xs, l.PositiveRatio)
		ys = append(ys, l.Price.InexactFloat64())
	}
	return BinGrid(xs, ys, bins), unrated
}

// BinGrid builds a bins×bins histogram over the data's own extent on each
// axis. The last bin on each axis includes its upper edge. An empty input
// spans [0, 1]; a constant axis is widened by 0.5 on each side.
func BinGrid(xs, ys []float64, bins int) Histogram2D {
	if bins < 1 {
		bins = 1
	}
	xMin, xMax := extent(xs)
	yMin, yMax := extent(ys)

	h := Histogram2D{
		XEdges: edges(xMin, xMax, bins),
		YEdges: edges(yMin, yMax, bins),
		Counts: make([][]int, bins),
	}
	for i := range h.Counts {
		h.Counts[i] = make([]int, bins)
	}
	for i := range xs {
		xi := binIndex(xs[i], xMin, xMax, bins)
		yi := binIndex(ys[i], yMin, yMax, bins)
		h.Counts[xi][yi]++
		h.Total++
	}
	return h
}

func extent(values []float64) (float64, float64) {
	if len(values) == 0 {
		return 0, 1
	}
	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if lo == hi {
		return lo - 0.5, hi + 0.5
	}
	return lo, hi
}

func edges(lo, hi float64, bins int) []float64 {
	out := make([]float64, bins+1)
	width := (hi - lo) / float64(bins)
	for i := range out {
		out[i] = lo + float64(i)*width
	}
	out[bins] = hi
	return out
}

func binIndex(v, lo, hi float64, bins int) int {
	if v >= hi {
		return bins - 1
	}
	i := int((v - lo) / (hi - lo) * float64(bins))
	if i < 0 {
		return 0
	}
	if i >= bins {
		return bins - 1
	}
	return i
}

// densityGrid wraps a histogram in its response shape.
func densityGrid(period Period, bracket BracketSpec, bins int, h Histogram2D, unrated int) *models.DensityGrid {
	return &models.DensityGrid{
		Period:       string(period),
		Bracket:      string(bracket.Key),
		BracketLabel: bracket.Label,
		Bins:         bins,
		RatioEdges:   h.XEdges,
		PriceEdges:   h.YEdges,
		Counts:       h.Counts,
		Total:        h.Total,
		Unrated:      unrated,
	}
}
