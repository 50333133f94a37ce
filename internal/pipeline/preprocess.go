// Steamlens - Storefront Listing Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package pipeline

import (
	"math"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/tomtom215/steamlens/internal/dataset"
)

const (
	// NoiseGenre is removed from every genre list, compared case-insensitively.
	NoiseGenre = "indie"

	// UnknownGenre labels the modal genre of an empty exploded subset.
	UnknownGenre = "Unknown"

	genreSeparator = ";"
)

// PriceCategory is the Free/Paid classification of a listing.
type PriceCategory string

const (
	PriceFree PriceCategory = "Free"
	PricePaid PriceCategory = "Paid"
)

// Listing is a preprocessed row. Derived fields are set once by Preprocess
// and never modified afterwards.
type Listing struct {
	dataset.Record

	// ID is the row's position in the loaded table; it orders ties.
	ID int

	ReleaseYear int
	HasYear     bool

	// GenreList holds trimmed tags without NoiseGenre or blanks.
	GenreList []string

	// Category is Paid when the price is missing.
	Category PriceCategory

	// PositiveRatio is NaN when the listing has no ratings at all.
	PositiveRatio float64

	// OwnersEstimate is valid only when OwnersKnown is true. Imputation
	// happens per subset in the ownership stage.
	OwnersEstimate float64
	OwnersKnown    bool
}

// HasRatio reports whether PositiveRatio is defined.
func (l *Listing) HasRatio() bool {
	return !math.IsNaN(l.PositiveRatio)
}

// PriceValue returns the price as a float64.
func (l *Listing) PriceValue() (float64, bool) {
	if l.Price == nil {
		return 0, false
	}
	return l.Price.InexactFloat64(), true
}

// GenreRow is one (listing, genre) pair of the exploded view.
type GenreRow struct {
	Genre   string
	Listing *Listing
}

// Table is the working table plus its exploded genre view.
type Table struct {
	Rows     []Listing
	Exploded []GenreRow
}

// TableStats summarises a preprocessed table.
type TableStats struct {
	Rows           int
	ExplodedRows   int
	UndatedRows    int
	UnpricedRows   int
	UnratedRows    int
	UnparsedOwners int
	DistinctGenres int
	EarliestYear   int
	LatestYear     int
}

// Preprocess derives release year, genre lists, price category, review
// ratio and parsed owners for every record and builds the exploded view.
//
// Preprocess(t.Records()) yields a table equal to t.
func Preprocess(records []dataset.Record) *Table {
	rows := make([]Listing, len(records))
	for i := range records {
		rows[i] = deriveListing(i, records[i])
	}
	return &Table{
		Rows:     rows,
		Exploded: Explode(rows),
	}
}

func deriveListing(id int, rec dataset.Record) Listing {
	l := Listing{
		Record:        rec,
		ID:            id,
		GenreList:     NormalizeGenres(rec.Genres),
		Category:      categorize(rec.Price),
		PositiveRatio: math.NaN(),
	}
	if !rec.RatingsMalformed {
		l.PositiveRatio = positiveRatio(rec.PositiveRatings, rec.NegativeRatings)
	}
	if rec.ReleaseDate != nil {
		l.ReleaseYear = rec.ReleaseDate.Year()
		l.HasYear = true
	}
	if owners, err := ParseOwners(rec.Owners); err == nil {
		l.OwnersEstimate = owners
		l.OwnersKnown = true
	}
	return l
}

// Records returns the table in record form with genres rewritten to the
// normalized list, the inverse of Preprocess.
func (t *Table) Records() []dataset.Record {
	out := make([]dataset.Record, len(t.Rows))
	for i := range t.Rows {
		rec := t.Rows[i].Record
		rec.Genres = strings.Join(t.Rows[i].GenreList, genreSeparator)
		out[i] = rec
	}
	return out
}

// Stats computes row counts used for readiness reporting and metrics.
func (t *Table) Stats() TableStats {
	stats := TableStats{
		Rows:         len(t.Rows),
		ExplodedRows: len(t.Exploded),
	}
	for i := range t.Rows {
		l := &t.Rows[i]
		if !l.HasYear {
			stats.UndatedRows++
		} else {
			if stats.EarliestYear == 0 || l.ReleaseYear < stats.EarliestYear {
				stats.EarliestYear = l.ReleaseYear
			}
			if l.ReleaseYear > stats.LatestYear {
				stats.LatestYear = l.ReleaseYear
			}
		}
		if l.Price == nil {
			stats.UnpricedRows++
		}
		if !l.HasRatio() {
			stats.UnratedRows++
		}
		if !l.OwnersKnown {
			stats.UnparsedOwners++
		}
	}
	stats.DistinctGenres = len(DistinctGenres(t.Exploded))
	return stats
}

// NormalizeGenres splits a ';'-delimited tag string, trims each tag and
// drops blanks and NoiseGenre. Applying it to its own joined output is a no-op.
func NormalizeGenres(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, genreSeparator)
	genres := make([]string, 0, len(parts))
	for _, p := range parts {
		g := strings.TrimSpace(p)
		if g == "" || IsNoiseGenre(g) {
			continue
		}
		genres = append(genres, g)
	}
	if len(genres) == 0 {
		return nil
	}
	return genres
}

// IsNoiseGenre reports whether g is the excluded tag.
func IsNoiseGenre(g string) bool {
	return strings.EqualFold(strings.TrimSpace(g), NoiseGenre)
}

// Explode returns one GenreRow per entry of each listing's genre list, in
// row order. Listings with an empty list contribute nothing.
func Explode(rows []Listing) []GenreRow {
	n := 0
	for i := range rows {
		n += len(rows[i].GenreList)
	}
	out := make([]GenreRow, 0, n)
	for i := range rows {
		for _, g := range rows[i].GenreList {
			out = append(out, GenreRow{Genre: g, Listing: &rows[i]})
		}
	}
	return out
}

// DistinctGenres returns the sorted distinct genres of an exploded view.
func DistinctGenres(exploded []GenreRow) []string {
	seen := make(map[string]struct{})
	var genres []string
	for _, row := range exploded {
		if _, ok := seen[row.Genre]; ok {
			continue
		}
		seen[row.Genre] = struct{}{}
		genres = append(genres, row.Genre)
	}
	sort.Strings(genres)
	return genres
}

// categorize marks only a listed zero price as Free. A missing price is Paid.
func categorize(price *decimal.Decimal) PriceCategory {
	if price != nil && price.IsZero() {
		return PriceFree
	}
	return PricePaid
}

func positiveRatio(positive, negative int64) float64 {
	total := positive + negative
	if total <= 0 {
		return math.NaN()
	}
	return float64(positive) / float64(total)
}
