// Steamlens - Storefront Listing Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package pipeline

import (
	"testing"
)

func TestRatioByGenre(t *testing.T) {
	table := buildTable(t,
		game{name: "cheap", genres: "RPG;Action", price: "5", positive: 3, negative: 1, avgPlay: -1, medPlay: -1},
		game{name: "pricey", genres: "RPG", price: "150", positive: 3, negative: 1, avgPlay: -1, medPlay: -1},
		game{name: "unrated", genres: "RPG", price: "5", avgPlay: -1, medPlay: -1},
		game{name: "unpriced", genres: "RPG", positive: 1, avgPlay: -1, medPlay: -1},
		game{name: "at cap", genres: "Puzzle", price: "100", positive: 1, negative: 1, avgPlay: -1, medPlay: -1},
	)

	points := RatioByGenre(table.Rows, 0)
	if len(points) != 3 {
		t.Fatalf("len(points) = %d, want 3", len(points))
	}
	if points[0].Genre != "RPG" || points[1].Genre != "Action" || points[2].Name != "at cap" {
		t.Errorf("points = %+v", points)
	}
	if !approxEqual(points[0].PositiveRatio, 0.75) || points[0].Price != 5 {
		t.Errorf("points[0] = %+v", points[0])
	}

	if got := RatioByGenre(table.Rows, 200); len(got) != 4 {
		t.Errorf("cap 200: len = %d, want 4", len(got))
	}
}

func TestBuildFilterOptions(t *testing.T) {
	table := buildTable(t, fixtureGames()...)
	opts := BuildFilterOptions(NewPeriodTable(DefaultRecentCutoff), table.Exploded)

	if len(opts.Periods) != 4 || opts.Periods[0].Key != "all" || opts.Periods[1].Label != "Last 5 years" {
		t.Errorf("Periods = %+v", opts.Periods)
	}
	if len(opts.Brackets) != 6 || opts.Brackets[5].Label != "$100+" {
		t.Errorf("Brackets = %+v", opts.Brackets)
	}
	want := []string{AllGenres, "Action", "Adventure", "Free to Play", "RPG", "Simulation", "Strategy"}
	if !equalStrings(opts.Genres, want) {
		t.Errorf("Genres = %v, want %v", opts.Genres, want)
	}
}
