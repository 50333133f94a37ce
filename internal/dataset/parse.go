// Steamlens - Storefront Listing Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package dataset

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/shopspring/decimal"
)

// cellFunc returns the raw text of a named column for the current row.
type cellFunc func(col string) string

// buildColumnIndex maps header names to their position.
// Header names are trimmed and lowercased; a UTF-8 BOM on the first cell is dropped.
func buildColumnIndex(header []string) map[string]int {
	idx := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimPrefix(name, "\ufeff")
		name = strings.ToLower(strings.TrimSpace(name))
		if _, dup := idx[name]; !dup {
			idx[name] = i
		}
	}
	return idx
}

// missingColumns returns the required columns absent from idx.
func missingColumns(idx map[string]int) []string {
	var missing []string
	for _, col := range RequiredColumns {
		if _, ok := idx[col]; !ok {
			missing = append(missing, col)
		}
	}
	return missing
}

// parseRecord converts one row of text cells into a Record.
func parseRecord(cell cellFunc) Record {
	positive, posOK := parseCount(cell(ColPositiveRatings))
	negative, negOK := parseCount(cell(ColNegativeRatings))
	return Record{
		Name:             strings.TrimSpace(cell(ColName)),
		Publisher:        strings.TrimSpace(cell(ColPublisher)),
		ReleaseDate:      parseDate(cell(ColReleaseDate)),
		Genres:           cell(ColGenres),
		Price:            parsePrice(cell(ColPrice)),
		PositiveRatings:  positive,
		NegativeRatings:  negative,
		RatingsMalformed: !posOK || !negOK,
		Owners:           strings.TrimSpace(cell(ColOwners)),
		AveragePlaytime:  parseMinutes(cell(ColAveragePlaytime)),
		MedianPlaytime:   parseMinutes(cell(ColMedianPlaytime)),
	}
}

// parseDate accepts any layout dateparse recognises. Unparseable input is missing.
func parseDate(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	t, err := dateparse.ParseAny(s)
	if err != nil {
		return nil
	}
	return &t
}

// parsePrice returns nil for empty, malformed or negative prices.
func parsePrice(s string) *decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil || d.IsNegative() {
		return nil
	}
	return &d
}

// parseCount reads a non-negative rating count. Thousands separators are
// stripped and exports that wrote counts as floats ("1200.0") are accepted.
// An empty cell is zero ratings; ok is false only for malformed text.
func parseCount(s string) (n int64, ok bool) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return 0, true
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		if n < 0 {
			return 0, false
		}
		return n, true
	}
	d, err := decimal.NewFromString(s)
	if err != nil || d.IsNegative() {
		return 0, false
	}
	return d.IntPart(), true
}

// parseMinutes returns nil for empty, malformed or negative playtimes.
func parseMinutes(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f < 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}
