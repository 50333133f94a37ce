// Steamlens - Storefront Listing Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package pipeline

import (
	"math"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tomtom215/steamlens/internal/dataset"
)

// game is a compact fixture description. A zero year means undated, an
// empty price means missing and a negative playtime means missing.
type game struct {
	name      string
	publisher string
	year      int
	genres    string
	price     string
	positive  int64
	negative  int64
	owners    string
	avgPlay   float64
	medPlay   float64
}

func (g game) record(t *testing.T) dataset.Record {
	t.Helper()
	rec := dataset.Record{
		Name:            g.name,
		Publisher:       g.publisher,
		Genres:          g.genres,
		PositiveRatings: g.positive,
		NegativeRatings: g.negative,
		Owners:          g.owners,
	}
	if g.year != 0 {
		d := time.Date(g.year, time.June, 1, 0, 0, 0, 0, time.UTC)
		rec.ReleaseDate = &d
	}
	if g.price != "" {
		p, err := decimal.NewFromString(g.price)
		if err != nil {
			t.Fatalf("bad fixture price %q: %v", g.price, err)
		}
		rec.Price = &p
	}
	if g.avgPlay >= 0 {
		v := g.avgPlay
		rec.AveragePlaytime = &v
	}
	if g.medPlay >= 0 {
		v := g.medPlay
		rec.MedianPlaytime = &v
	}
	return rec
}

func buildTable(t *testing.T, games ...game) *Table {
	t.Helper()
	records := make([]dataset.Record, len(games))
	for i, g := range games {
		records[i] = g.record(t)
	}
	return Preprocess(records)
}

// fixtureGames spans every period window and exercises missing values.
func fixtureGames() []game {
	return []game{
		{name: "Counter-Strike", publisher: "Valve", year: 2000, genres: "Action", price: "7.19", positive: 124534, negative: 3339, owners: "10,000,000-20,000,000", avgPlay: 17612, medPlay: 317},
		{name: "Half-Life", publisher: "Valve", year: 1998, genres: "Action", price: "7.19", positive: 27755, negative: 1100, owners: "5,000,000-10,000,000", avgPlay: 187, medPlay: 34},
		{name: "Dota 2", publisher: "Valve", year: 2013, genres: "Action;Free to Play;Strategy", price: "0", positive: 863507, negative: 142079, owners: "100,000,000-200,000,000", avgPlay: 23944, medPlay: 801},
		{name: "Stardew Valley", publisher: "ConcernedApe", year: 2016, genres: "Indie;RPG;Simulation", price: "10.99", positive: 140000, negative: 3000, owners: "5,000,000-10,000,000", avgPlay: 3000, medPlay: 2000},
		{name: "Celeste", publisher: "Matt Makes Games", year: 2018, genres: "Action;Adventure;indie", price: "14.99", positive: 50000, negative: 1000, owners: "1,000,000-2,000,000", avgPlay: 600, medPlay: 400},
		{name: "Unrated Thing", publisher: "Nobody", year: 2017, genres: "INDIE", price: "129.99", positive: 0, negative: 0, owners: "bogus", avgPlay: -1, medPlay: -1},
		{name: "Undated", publisher: "", year: 0, genres: "Strategy", price: "", positive: 10, negative: 5, owners: "20000-50000", avgPlay: 60, medPlay: 30},
	}
}

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
