// Steamlens - Storefront Listing Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

// Package dataset reads the storefront listing table from disk.
//
// Two readers are provided: a streaming CSV reader and a DuckDB reader that
// scans the same file through read_csv. Both return the same []Record slice in
// file order, so every downstream stage sees identical input regardless of
// the reader selected in configuration.
//
// A missing source file is reported as ErrSourceNotFound. Callers treat it as
// fatal; no partial table is ever returned alongside an error.
package dataset

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// Column names required in the header of the source file.
const (
	ColName            = "name"
	ColPublisher       = "publisher"
	ColReleaseDate     = "release_date"
	ColGenres          = "genres"
	ColPrice           = "price"
	ColPositiveRatings = "positive_ratings"
	ColNegativeRatings = "negative_ratings"
	ColOwners          = "owners"
	ColAveragePlaytime = "average_playtime"
	ColMedianPlaytime  = "median_playtime"
)

// RequiredColumns lists every column the loaders select, in output order.
var RequiredColumns = []string{
	ColName,
	ColPublisher,
	ColReleaseDate,
	ColGenres,
	ColPrice,
	ColPositiveRatings,
	ColNegativeRatings,
	ColOwners,
	ColAveragePlaytime,
	ColMedianPlaytime,
}

var (
	// ErrSourceNotFound is returned when the dataset file does not exist.
	ErrSourceNotFound = errors.New("dataset source not found")

	// ErrMissingColumn is returned when a required column is absent from the header.
	ErrMissingColumn = errors.New("dataset missing required column")
)

// Record is one raw listing row. Optional fields are nil when the source
// cell is empty or cannot be parsed.
type Record struct {
	Name             string
	Publisher        string
	ReleaseDate      *time.Time
	Genres           string
	Price            *decimal.Decimal
	PositiveRatings  int64
	NegativeRatings  int64
	// RatingsMalformed is set when either rating cell held unreadable text.
	// The unreadable count is zero and the row has no review ratio.
	RatingsMalformed bool
	Owners           string
	AveragePlaytime  *float64
	MedianPlaytime   *float64
}
