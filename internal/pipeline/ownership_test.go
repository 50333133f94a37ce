// Steamlens - Storefront Listing Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package pipeline

import (
	"math"
	"testing"
)

func TestOwnershipPolarTable_Angles(t *testing.T) {
	table := buildTable(t, fixtureGames()...)
	got := OwnershipPolarTable(table.Rows, "", PlaytimeAverage)

	wantGenres := []string{"Action", "Adventure", "Free to Play", "RPG", "Simulation", "Strategy"}
	if len(got.Angles) != len(wantGenres) {
		t.Fatalf("len(Angles) = %d, want %d", len(got.Angles), len(wantGenres))
	}
	for i, g := range wantGenres {
		if got.Angles[i].Genre != g {
			t.Errorf("Angles[%d].Genre = %q, want %q", i, got.Angles[i].Genre, g)
		}
		if want := float64(i) * 60; !approxEqual(got.Angles[i].Theta, want) {
			t.Errorf("Angles[%d].Theta = %v, want %v", i, got.Angles[i].Theta, want)
		}
	}

	if len(got.Points) != 10 {
		t.Errorf("len(Points) = %d, want 10", len(got.Points))
	}
	for _, p := range got.Points {
		if math.IsNaN(p.Owners) {
			t.Errorf("point %s/%s has missing owners", p.Name, p.Genre)
		}
		if p.MarkerSize < MinMarkerSize || p.MarkerSize > MaxMarkerSize {
			t.Errorf("point %s marker %v outside [%v, %v]", p.Name, p.MarkerSize, MinMarkerSize, MaxMarkerSize)
		}
	}
	if got.Playtime != string(PlaytimeAverage) {
		t.Errorf("Playtime = %q, want %q", got.Playtime, PlaytimeAverage)
	}
}

func TestOwnershipPolarTable_ImputesBeforeGenreFilter(t *testing.T) {
	table := buildTable(t,
		game{name: "known-rpg", genres: "RPG", owners: "0-20,000", avgPlay: 600, medPlay: 60},
		game{name: "known-action", genres: "Action", owners: "20,000-50,000", avgPlay: 600, medPlay: 60},
		game{name: "broken-rpg", genres: "RPG", owners: "n/a", avgPlay: 120, medPlay: 60},
	)

	got := OwnershipPolarTable(table.Rows, "RPG", PlaytimeAverage)
	if got.ImputedOwners == nil || *got.ImputedOwners != 22500 {
		t.Fatalf("ImputedOwners = %v, want 22500 (mean over every row)", got.ImputedOwners)
	}
	if len(got.Points) != 2 {
		t.Fatalf("len(Points) = %d, want 2", len(got.Points))
	}

	broken := got.Points[1]
	if broken.Name != "broken-rpg" || !broken.OwnersImputed || broken.Owners != 22500 {
		t.Errorf("imputed point = %+v", broken)
	}
	if got.Points[0].OwnersImputed {
		t.Errorf("parsed point marked imputed: %+v", got.Points[0])
	}
	if len(got.Angles) != 1 || got.Angles[0].Theta != 0 {
		t.Errorf("Angles = %+v, want a single RPG angle at 0", got.Angles)
	}
}

func TestOwnershipPolarTable_DropsMissingPlaytime(t *testing.T) {
	table := buildTable(t,
		game{name: "timed", genres: "RPG;Action", owners: "100+", avgPlay: 30, medPlay: 10},
		game{name: "untimed", genres: "RPG", owners: "100+", avgPlay: -1, medPlay: 10},
	)

	got := OwnershipPolarTable(table.Rows, "", PlaytimeAverage)
	if got.Dropped != 1 {
		t.Errorf("Dropped = %d, want 1", got.Dropped)
	}
	if len(got.Points) != 2 {
		t.Errorf("len(Points) = %d, want 2", len(got.Points))
	}

	median := OwnershipPolarTable(table.Rows, "", PlaytimeMedian)
	if median.Dropped != 0 || len(median.Points) != 3 {
		t.Errorf("median: Dropped = %d, points = %d, want 0, 3", median.Dropped, len(median.Points))
	}
}

func TestOwnershipPolarTable_NothingToImpute(t *testing.T) {
	table := buildTable(t,
		game{name: "a", genres: "RPG", owners: "?", avgPlay: 30, medPlay: 10},
	)

	got := OwnershipPolarTable(table.Rows, "", PlaytimeAverage)
	if got.ImputedOwners != nil {
		t.Errorf("ImputedOwners = %v, want nil", *got.ImputedOwners)
	}
	if len(got.Points) != 0 || got.Dropped != 1 {
		t.Errorf("points = %d, dropped = %d, want 0, 1", len(got.Points), got.Dropped)
	}
}

func TestOwnershipPolarTable_UnknownGenre(t *testing.T) {
	table := buildTable(t, fixtureGames()...)

	got := OwnershipPolarTable(table.Rows, "Racing", PlaytimeAverage)
	if len(got.Points) != 0 || len(got.Angles) != 0 {
		t.Errorf("expected an empty table, got %d points", len(got.Points))
	}
}

func TestMarkerSize(t *testing.T) {
	tests := []struct {
		minutes float64
		want    float64
	}{
		{0, 5},
		{60, 5},
		{600, 10},
		{1200, 20},
		{17612, 20},
	}
	for _, tt := range tests {
		if got := MarkerSize(tt.minutes); got != tt.want {
			t.Errorf("MarkerSize(%v) = %v, want %v", tt.minutes, got, tt.want)
		}
	}
}
