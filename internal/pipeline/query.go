// Steamlens - Storefront Listing Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package pipeline

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Bracket names a fixed price band used by the density view.
type Bracket string

const (
	BracketAll     Bracket = "all"
	BracketFree    Bracket = "free"
	BracketCheap   Bracket = "cheap"
	BracketMid     Bracket = "mid"
	BracketHigh    Bracket = "high"
	BracketPremium Bracket = "premium"
)

// ErrUnknownBracket is returned for a bracket key outside the table.
var ErrUnknownBracket = errors.New("unknown price bracket")

// AllGenres is the genre option that disables genre filtering.
const AllGenres = "All"

// DefaultScatterMaxPrice caps the ratio scatter's price axis.
const DefaultScatterMaxPrice = 100.0

var (
	ten     = decimal.NewFromInt(10)
	thirty  = decimal.NewFromInt(30)
	hundred = decimal.NewFromInt(100)
)

// BracketSpec is one row of the price bracket table.
type BracketSpec struct {
	Key   Bracket
	Label string
	match func(price decimal.Decimal) bool
}

// Contains reports whether price falls in the bracket.
func (b BracketSpec) Contains(price decimal.Decimal) bool {
	return b.match(price)
}

var bracketTable = []BracketSpec{
	{Key: BracketAll, Label: "All", match: func(decimal.Decimal) bool { return true }},
	{Key: BracketFree, Label: "Free", match: func(p decimal.Decimal) bool { return p.IsZero() }},
	{Key: BracketCheap, Label: "$0-10", match: func(p decimal.Decimal) bool {
		return p.IsPositive() && p.LessThanOrEqual(ten)
	}},
	{Key: BracketMid, Label: "$10-30", match: func(p decimal.Decimal) bool {
		return p.GreaterThan(ten) && p.LessThanOrEqual(thirty)
	}},
	{Key: BracketHigh, Label: "$30-100", match: func(p decimal.Decimal) bool {
		return p.GreaterThan(thirty) && p.LessThanOrEqual(hundred)
	}},
	{Key: BracketPremium, Label: "$100+", match: func(p decimal.Decimal) bool { return p.GreaterThan(hundred) }},
}

// Brackets returns the bracket table in display order.
func Brackets() []BracketSpec {
	out := make([]BracketSpec, len(bracketTable))
	copy(out, bracketTable)
	return out
}

// BracketKeys lists every valid bracket key.
func BracketKeys() []string {
	keys := make([]string, len(bracketTable))
	for i, b := range bracketTable {
		keys[i] = string(b.Key)
	}
	return keys
}

// LookupBracket returns the spec for key. An empty key selects BracketAll.
func LookupBracket(key Bracket) (BracketSpec, error) {
	k := Bracket(strings.ToLower(strings.TrimSpace(string(key))))
	if k == "" {
		k = BracketAll
	}
	for _, b := range bracketTable {
		if b.Key == k {
			return b, nil
		}
	}
	return BracketSpec{}, fmt.Errorf("%w: %q", ErrUnknownBracket, string(key))
}

// Query carries every user selection for one recomputation. It is passed by
// value and never mutated by the stages that read it.
type Query struct {
	Period   Period  `json:"period"`
	Bracket  Bracket `json:"bracket,omitempty"`
	Genre    string  `json:"genre,omitempty"`
	Limit    int     `json:"limit,omitempty"`
	MaxPrice float64 `json:"max_price,omitempty"`
}

// GenreFilter returns the selected genre, or "" when no filter applies.
func (q Query) GenreFilter() string {
	g := strings.TrimSpace(q.Genre)
	if g == "" || strings.EqualFold(g, AllGenres) {
		return ""
	}
	return g
}
