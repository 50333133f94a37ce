// Steamlens - Storefront Listing Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package dataset

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleCSV = `name,release_date,publisher,genres,price,positive_ratings,negative_ratings,owners,average_playtime,median_playtime
Counter-Strike,2000-11-01,Valve,Action,7.19,124534,3339,10000000-20000000,17612,317
"Half-Life, Source",2004-06-01,Valve,Action;Indie,0,3318,633,"5,000,000-10,000,000",0,0
Undated Game,,Tiny Studio,Indie,abc,0,0,not-a-range,,
`

// writeDataset writes content to a temp file and returns its path.
func writeDataset(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "steam.csv")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write dataset: %v", err)
	}
	return path
}

func assertSampleRecords(t *testing.T, records []Record) {
	t.Helper()

	if len(records) != 3 {
		t.Fatalf("len(records) = %d, want 3", len(records))
	}

	cs := records[0]
	if cs.Name != "Counter-Strike" {
		t.Errorf("Name = %q, want Counter-Strike", cs.Name)
	}
	if cs.ReleaseDate == nil || cs.ReleaseDate.Year() != 2000 {
		t.Errorf("ReleaseDate = %v, want year 2000", cs.ReleaseDate)
	}
	if cs.Price == nil || cs.Price.String() != "7.19" {
		t.Errorf("Price = %v, want 7.19", cs.Price)
	}
	if cs.PositiveRatings != 124534 || cs.NegativeRatings != 3339 {
		t.Errorf("ratings = %d/%d, want 124534/3339", cs.PositiveRatings, cs.NegativeRatings)
	}
	if cs.AveragePlaytime == nil || *cs.AveragePlaytime != 17612 {
		t.Errorf("AveragePlaytime = %v, want 17612", cs.AveragePlaytime)
	}

	hl := records[1]
	if hl.Name != "Half-Life, Source" {
		t.Errorf("quoted Name = %q, want %q", hl.Name, "Half-Life, Source")
	}
	if hl.Owners != "5,000,000-10,000,000" {
		t.Errorf("Owners = %q, want raw range text", hl.Owners)
	}
	if hl.Price == nil || !hl.Price.IsZero() {
		t.Errorf("Price = %v, want 0", hl.Price)
	}

	undated := records[2]
	if undated.ReleaseDate != nil {
		t.Errorf("empty release_date should be nil, got %v", undated.ReleaseDate)
	}
	if undated.Price != nil {
		t.Errorf("malformed price should be nil, got %v", undated.Price)
	}
	if undated.AveragePlaytime != nil || undated.MedianPlaytime != nil {
		t.Error("empty playtimes should be nil")
	}
}

func TestCSVLoader_Load(t *testing.T) {
	path := writeDataset(t, sampleCSV)

	records, err := (&CSVLoader{}).Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	assertSampleRecords(t, records)
}

func TestCSVLoader_SourceNotFound(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.csv")

	records, err := (&CSVLoader{}).Load(context.Background(), path)
	if !errors.Is(err, ErrSourceNotFound) {
		t.Fatalf("Load() error = %v, want ErrSourceNotFound", err)
	}
	if records != nil {
		t.Errorf("Load() returned %d records alongside error, want none", len(records))
	}
}

func TestCSVLoader_MissingColumn(t *testing.T) {
	path := writeDataset(t, "name,price\nA,1\n")

	_, err := (&CSVLoader{}).Load(context.Background(), path)
	if !errors.Is(err, ErrMissingColumn) {
		t.Fatalf("Load() error = %v, want ErrMissingColumn", err)
	}
	if !strings.Contains(err.Error(), "owners") {
		t.Errorf("error %q should name the missing owners column", err)
	}
}

func TestCSVLoader_EmptyFile(t *testing.T) {
	path := writeDataset(t, "")

	_, err := (&CSVLoader{}).Load(context.Background(), path)
	if !errors.Is(err, ErrMissingColumn) {
		t.Fatalf("Load() error = %v, want ErrMissingColumn", err)
	}
}

func TestCSVLoader_HeaderNormalization(t *testing.T) {
	header := "\ufeffName, Publisher ,RELEASE_DATE,genres,price,positive_ratings,negative_ratings,owners,average_playtime,median_playtime\n"
	path := writeDataset(t, header+"Portal,Valve,2007-10-10,Puzzle,9.99,1,2,100+,3,4\n")

	records, err := (&CSVLoader{}).Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(records) != 1 || records[0].Name != "Portal" || records[0].Publisher != "Valve" {
		t.Errorf("records = %+v, want one Portal/Valve row", records)
	}
}

func TestDuckDBLoader_MatchesCSVLoader(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping DuckDB reader in short mode")
	}
	path := writeDataset(t, sampleCSV)

	records, err := NewDuckDBLoader(DuckDBOptions{Threads: 1}).Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	assertSampleRecords(t, records)
}

func TestDuckDBLoader_SourceNotFound(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.csv")

	_, err := NewDuckDBLoader(DuckDBOptions{}).Load(context.Background(), path)
	if !errors.Is(err, ErrSourceNotFound) {
		t.Fatalf("Load() error = %v, want ErrSourceNotFound", err)
	}
}

func TestNewLoader(t *testing.T) {
	tests := []struct {
		kind    string
		wantErr bool
	}{
		{kind: "csv"},
		{kind: ""},
		{kind: "DuckDB"},
		{kind: "parquet", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			loader, err := NewLoader(tt.kind, DuckDBOptions{})
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewLoader(%q) error = %v, wantErr %v", tt.kind, err, tt.wantErr)
			}
			if !tt.wantErr && loader == nil {
				t.Errorf("NewLoader(%q) returned nil loader", tt.kind)
			}
		})
	}
}
