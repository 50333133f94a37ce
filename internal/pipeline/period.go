// Steamlens - Storefront Listing Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package pipeline

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Period names a fixed pair of release-year windows.
type Period string

const (
	PeriodAll         Period = "all"
	PeriodLastFive    Period = "last5"
	PeriodDecade2010s Period = "2010s"
	PeriodDecade2000s Period = "2000s"
)

// DefaultRecentCutoff is the first year of the Last-5-years window.
const DefaultRecentCutoff = 2014

// ErrUnknownPeriod is returned for a period key outside the table.
var ErrUnknownPeriod = errors.New("unknown period")

// YearRange is an inclusive release-year interval.
type YearRange struct {
	From int
	To   int
}

// Contains reports whether year lies in the range.
func (r YearRange) Contains(year int) bool {
	return year >= r.From && year <= r.To
}

// Overlaps reports whether two ranges share any year.
func (r YearRange) Overlaps(other YearRange) bool {
	return r.From <= other.To && other.From <= r.To
}

func (r YearRange) String() string {
	switch {
	case r.From == math.MinInt && r.To == math.MaxInt:
		return "any year"
	case r.From == math.MinInt:
		return fmt.Sprintf("<= %d", r.To)
	case r.To == math.MaxInt:
		return fmt.Sprintf(">= %d", r.From)
	default:
		return fmt.Sprintf("%d-%d", r.From, r.To)
	}
}

func atMost(year int) *YearRange  { return &YearRange{From: math.MinInt, To: year} }
func atLeast(year int) *YearRange { return &YearRange{From: year, To: math.MaxInt} }
func between(from, to int) *YearRange {
	return &YearRange{From: from, To: to}
}

// PeriodSpec is one row of the period table. A nil Current selects every
// row, including rows without a release year. A nil Previous means the
// period has no comparison window.
type PeriodSpec struct {
	Key      Period
	Label    string
	Current  *YearRange
	Previous *YearRange
}

// PeriodTable is the ordered, static period configuration.
type PeriodTable struct {
	specs []PeriodSpec
}

// NewPeriodTable builds the period table with the given Last-5-years cutoff.
func NewPeriodTable(recentCutoff int) PeriodTable {
	return PeriodTable{specs: []PeriodSpec{
		{Key: PeriodAll, Label: "All"},
		{
			Key:      PeriodLastFive,
			Label:    "Last 5 years",
			Current:  atLeast(recentCutoff),
			Previous: atMost(recentCutoff - 1),
		},
		{
			Key:      PeriodDecade2010s,
			Label:    "2010s",
			Current:  between(2010, 2019),
			Previous: between(2000, 2009),
		},
		{
			Key:      PeriodDecade2000s,
			Label:    "2000s",
			Current:  between(2000, 2009),
			Previous: atMost(1999),
		},
	}}
}

// Specs returns the table rows in display order.
func (t PeriodTable) Specs() []PeriodSpec {
	out := make([]PeriodSpec, len(t.specs))
	copy(out, t.specs)
	return out
}

// Lookup returns the spec for key, matched case-insensitively. An empty
// key selects PeriodAll.
func (t PeriodTable) Lookup(key Period) (PeriodSpec, error) {
	k := Period(strings.ToLower(strings.TrimSpace(string(key))))
	if k == "" {
		k = PeriodAll
	}
	for _, spec := range t.specs {
		if spec.Key == k {
			return spec, nil
		}
	}
	return PeriodSpec{}, fmt.Errorf("%w: %q", ErrUnknownPeriod, string(key))
}

// PeriodKeys lists every valid period key.
func PeriodKeys() []string {
	return []string{string(PeriodAll), string(PeriodLastFive), string(PeriodDecade2010s), string(PeriodDecade2000s)}
}

// ParsePeriod validates a period key, case-insensitively.
func ParsePeriod(s string) (Period, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return PeriodAll, nil
	}
	for _, key := range PeriodKeys() {
		if s == key {
			return Period(key), nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPeriod, s)
}

// Subsets is the (current, previous) pair selected for a period.
type Subsets struct {
	Period      Period
	Current     []Listing
	Previous    []Listing
	HasPrevious bool
}

// Comparable reports whether deltas can be computed.
func (s Subsets) Comparable() bool {
	return s.HasPrevious && len(s.Previous) > 0
}

// Select partitions rows by spec. Rows without a release year belong only
// to a period whose Current is nil.
func Select(rows []Listing, spec PeriodSpec) Subsets {
	out := Subsets{Period: spec.Key}
	if spec.Current == nil {
		out.Current = make([]Listing, len(rows))
		copy(out.Current, rows)
	} else {
		out.Current = filterYears(rows, *spec.Current)
	}
	if spec.Previous != nil {
		out.HasPrevious = true
		out.Previous = filterYears(rows, *spec.Previous)
	}
	return out
}

func filterYears(rows []Listing, r YearRange) []Listing {
	var out []Listing
	for i := range rows {
		if rows[i].HasYear && r.Contains(rows[i].ReleaseYear) {
			out = append(out, rows[i])
		}
	}
	return out
}
