// Steamlens - Storefront Listing Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"strings"
	"testing"

	"github.com/tomtom215/steamlens/internal/dataset"
)

func TestNormalizeGenres(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"empty", "", nil},
		{"blank", "   ", nil},
		{"single", "Action", []string{"Action"}},
		{"trimmed", " Action ; RPG ", []string{"Action", "RPG"}},
		{"indie removed", "Indie;RPG", []string{"RPG"}},
		{"indie any case", "INDIE;indie;InDiE;Strategy", []string{"Strategy"}},
		{"only indie", "Indie", nil},
		{"blank entries dropped", "Action;;  ;RPG;", []string{"Action", "RPG"}},
		{"indie substring kept", "Indie Horror", []string{"Indie Horror"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeGenres(tt.raw)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("NormalizeGenres(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestPreprocess_GenreListsExcludeNoise(t *testing.T) {
	table := buildTable(t, fixtureGames()...)

	for _, row := range table.Rows {
		for _, g := range row.GenreList {
			if g == "" {
				t.Errorf("row %q has an empty genre", row.Name)
			}
			if strings.EqualFold(g, NoiseGenre) {
				t.Errorf("row %q kept noise genre %q", row.Name, g)
			}
		}
	}
	for _, row := range table.Exploded {
		if strings.EqualFold(row.Genre, NoiseGenre) || row.Genre == "" {
			t.Errorf("exploded view contains %q", row.Genre)
		}
	}
}

func TestExplode_RoundTrip(t *testing.T) {
	table := buildTable(t, fixtureGames()...)

	collapsed := make(map[int][]string)
	for _, row := range table.Exploded {
		collapsed[row.Listing.ID] = append(collapsed[row.Listing.ID], row.Genre)
	}

	for _, row := range table.Rows {
		want := append([]string(nil), row.GenreList...)
		got := append([]string(nil), collapsed[row.ID]...)
		sort.Strings(want)
		sort.Strings(got)
		if len(want) == 0 && len(got) == 0 {
			continue
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("row %d: collapsed genres = %v, want %v", row.ID, got, want)
		}
	}
}

func TestExplode_EmptyListContributesNothing(t *testing.T) {
	table := buildTable(t,
		game{name: "Only Indie", genres: "Indie", avgPlay: -1, medPlay: -1},
		game{name: "No Genres", genres: "", avgPlay: -1, medPlay: -1},
	)
	if len(table.Exploded) != 0 {
		t.Errorf("len(Exploded) = %d, want 0", len(table.Exploded))
	}
}

func TestPreprocess_Idempotent(t *testing.T) {
	first := buildTable(t, fixtureGames()...)
	second := Preprocess(first.Records())

	if len(first.Rows) != len(second.Rows) {
		t.Fatalf("row count changed: %d -> %d", len(first.Rows), len(second.Rows))
	}
	for i := range first.Rows {
		a, b := first.Rows[i], second.Rows[i]
		if !reflect.DeepEqual(a.GenreList, b.GenreList) {
			t.Errorf("row %d GenreList = %v, want %v", i, b.GenreList, a.GenreList)
		}
		if a.ReleaseYear != b.ReleaseYear || a.HasYear != b.HasYear {
			t.Errorf("row %d year = (%d, %v), want (%d, %v)", i, b.ReleaseYear, b.HasYear, a.ReleaseYear, a.HasYear)
		}
		if a.Category != b.Category {
			t.Errorf("row %d Category = %q, want %q", i, b.Category, a.Category)
		}
		if a.OwnersKnown != b.OwnersKnown || a.OwnersEstimate != b.OwnersEstimate {
			t.Errorf("row %d owners changed", i)
		}
	}
	if len(first.Exploded) != len(second.Exploded) {
		t.Errorf("exploded rows = %d, want %d", len(second.Exploded), len(first.Exploded))
	}
}

func TestPreprocess_PriceCategory(t *testing.T) {
	table := buildTable(t,
		game{name: "free", price: "0", avgPlay: -1, medPlay: -1},
		game{name: "paid", price: "9.99", avgPlay: -1, medPlay: -1},
		game{name: "missing", price: "", avgPlay: -1, medPlay: -1},
	)

	want := []PriceCategory{PriceFree, PricePaid, PricePaid}
	for i, w := range want {
		if got := table.Rows[i].Category; got != w {
			t.Errorf("%s: Category = %q, want %q", table.Rows[i].Name, got, w)
		}
	}
}

func TestPreprocess_PositiveRatio(t *testing.T) {
	table := buildTable(t,
		game{name: "rated", positive: 3, negative: 1, avgPlay: -1, medPlay: -1},
		game{name: "unrated", positive: 0, negative: 0, avgPlay: -1, medPlay: -1},
		game{name: "all negative", positive: 0, negative: 4, avgPlay: -1, medPlay: -1},
	)

	if !approxEqual(table.Rows[0].PositiveRatio, 0.75) {
		t.Errorf("rated PositiveRatio = %v, want 0.75", table.Rows[0].PositiveRatio)
	}
	if table.Rows[1].HasRatio() {
		t.Errorf("unrated PositiveRatio = %v, want undefined", table.Rows[1].PositiveRatio)
	}
	if !table.Rows[2].HasRatio() || table.Rows[2].PositiveRatio != 0 {
		t.Errorf("all negative PositiveRatio = %v, want 0", table.Rows[2].PositiveRatio)
	}
}

func TestPreprocess_LoadedRatingCounts(t *testing.T) {
	csv := `name,release_date,publisher,genres,price,positive_ratings,negative_ratings,owners,average_playtime,median_playtime
Separated,2016-01-01,Pub,Action,9.99,"1,234",10,0-20000,60,30
Garbled,2016-01-01,Pub,Action,9.99,abc,10,0-20000,60,30
`
	path := filepath.Join(t.TempDir(), "steam.csv")
	if err := os.WriteFile(path, []byte(csv), 0o600); err != nil {
		t.Fatalf("failed to write dataset: %v", err)
	}
	records, err := (&dataset.CSVLoader{}).Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	table := Preprocess(records)

	separated := table.Rows[0]
	if separated.PositiveRatings != 1234 || !approxEqual(separated.PositiveRatio, 1234.0/1244.0) {
		t.Errorf("separated = %d positive, ratio %v; want 1234, %v",
			separated.PositiveRatings, separated.PositiveRatio, 1234.0/1244.0)
	}
	if table.Rows[1].HasRatio() {
		t.Errorf("garbled PositiveRatio = %v, want undefined", table.Rows[1].PositiveRatio)
	}
}

func TestTable_Stats(t *testing.T) {
	table := buildTable(t, fixtureGames()...)
	stats := table.Stats()

	if stats.Rows != 7 {
		t.Errorf("Rows = %d, want 7", stats.Rows)
	}
	if stats.UndatedRows != 1 {
		t.Errorf("UndatedRows = %d, want 1", stats.UndatedRows)
	}
	if stats.UnpricedRows != 1 {
		t.Errorf("UnpricedRows = %d, want 1", stats.UnpricedRows)
	}
	if stats.UnratedRows != 1 {
		t.Errorf("UnratedRows = %d, want 1", stats.UnratedRows)
	}
	if stats.UnparsedOwners != 1 {
		t.Errorf("UnparsedOwners = %d, want 1", stats.UnparsedOwners)
	}
	if stats.EarliestYear != 1998 || stats.LatestYear != 2018 {
		t.Errorf("year span = %d-%d, want 1998-2018", stats.EarliestYear, stats.LatestYear)
	}
	// Action, Free to Play, Strategy, RPG, Simulation, Adventure
	if stats.DistinctGenres != 6 {
		t.Errorf("DistinctGenres = %d, want 6", stats.DistinctGenres)
	}
}
