// Steamlens - Storefront Listing Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package pipeline

import (
	"math"

	"github.com/tomtom215/steamlens/internal/models"
)

// PlaytimeMetric selects the playtime column joined with owners.
type PlaytimeMetric string

const (
	PlaytimeAverage PlaytimeMetric = "average_playtime"
	PlaytimeMedian  PlaytimeMetric = "median_playtime"
)

// Marker size bounds for the polar chart, in hours of playtime.
const (
	MinMarkerSize = 5.0
	MaxMarkerSize = 20.0
)

// OwnershipPolarTable joins imputed owners with playtime per (listing,
// genre) pair and projects genres onto evenly spaced angles.
//
// Owners are imputed over the whole of rows before the genre filter so the
// fill value does not depend on the selected genre. An empty genre keeps
// every genre. Pairs still missing owners or playtime are dropped and
// counted in Dropped.
func OwnershipPolarTable(rows []Listing, genre string, metric PlaytimeMetric) *models.OwnershipPolar {
	owners := ImputeOwners(rows)
	index := make(map[*Listing]int, len(rows))
	for i := range rows {
		index[&rows[i]] = i
	}

	var pairs []GenreRow
	for _, row := range Explode(rows) {
		if genre != "" && row.Genre != genre {
			continue
		}
		pairs = append(pairs, row)
	}

	genres := DistinctGenres(pairs)
	theta := make(map[string]float64, len(genres))
	angles := make([]models.GenreAngle, len(genres))
	for i, g := range genres {
		t := float64(i) * 360 / float64(len(genres))
		theta[g] = t
		angles[i] = models.GenreAngle{Genre: g, Theta: t}
	}

	out := &models.OwnershipPolar{
		Genre:    genre,
		Playtime: string(metric),
		Angles:   angles,
		Points:   make([]models.PolarPoint, 0, len(pairs)),
	}
	if owners.HasMean {
		out.ImputedOwners = floatPtr(owners.Mean)
	}

	for _, row := range pairs {
		i := index[row.Listing]
		v := owners.Values[i]
		minutes := playtime(row.Listing, metric)
		if math.IsNaN(v) || minutes == nil {
			out.Dropped++
			continue
		}
		out.Points = append(out.Points, models.PolarPoint{
			Name:          row.Listing.Name,
			Genre:         row.Genre,
			Theta:         theta[row.Genre],
			Owners:        v,
			OwnersImputed: owners.Imputed[i],
			Playtime:      *minutes,
			MarkerSize:    MarkerSize(*minutes),
		})
	}
	return out
}

// MarkerSize converts playtime minutes to hours clamped to the marker bounds.
func MarkerSize(minutes float64) float64 {
	return math.Min(MaxMarkerSize, math.Max(MinMarkerSize, minutes/60))
}

func playtime(l *Listing, metric PlaytimeMetric) *float64 {
	if metric == PlaytimeMedian {
		return l.MedianPlaytime
	}
	return l.AveragePlaytime
}
