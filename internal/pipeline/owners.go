// Steamlens - Storefront Listing Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package pipeline

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// ErrOwnersUnparseable is the sentinel wrapped by every OwnersParseError.
var ErrOwnersUnparseable = errors.New("owners value unparseable")

// OwnersParseError describes why an owners cell could not be read.
type OwnersParseError struct {
	Raw    string
	Reason string
}

func (e *OwnersParseError) Error() string {
	return fmt.Sprintf("owners %q: %s", e.Raw, e.Reason)
}

func (e *OwnersParseError) Unwrap() error {
	return ErrOwnersUnparseable
}

// ParseOwners converts an owners estimate to a number.
//
// Grammar, after removing ',' thousands separators and a trailing '+':
//
//	owners = bound | bound "-" bound
//	bound  = digit { digit } [ "." digit { digit } ]
//
// A range yields its midpoint; "100,000+" yields 100000.
func ParseOwners(raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, &OwnersParseError{Raw: raw, Reason: "empty"}
	}
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, "+", "")
	s = strings.TrimSpace(s)

	if lo, hi, isRange := strings.Cut(s, "-"); isRange {
		a, err := parseBound(lo)
		if err != nil {
			return 0, &OwnersParseError{Raw: raw, Reason: "lower bound: " + err.Error()}
		}
		b, err := parseBound(hi)
		if err != nil {
			return 0, &OwnersParseError{Raw: raw, Reason: "upper bound: " + err.Error()}
		}
		return (a + b) / 2, nil
	}

	v, err := parseBound(s)
	if err != nil {
		return 0, &OwnersParseError{Raw: raw, Reason: err.Error()}
	}
	return v, nil
}

// boundPattern admits digits with an optional fraction. Signs, exponents,
// hex floats and NaN/Inf spellings are rejected before strconv sees them.
var boundPattern = regexp.MustCompile(`^[0-9]+(\.[0-9]+)?$`)

func parseBound(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errors.New("missing number")
	}
	if !boundPattern.MatchString(s) {
		return 0, errors.New("not a number")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.New("out of range")
	}
	return v, nil
}

// OwnersColumn is the owners estimate of a subset after imputation.
type OwnersColumn struct {
	// Values is aligned with the input rows. Entries are NaN only when no
	// row of the subset parsed, leaving nothing to impute from.
	Values  []float64
	Imputed []bool

	// Mean of the successfully parsed values; valid when HasMean.
	Mean    float64
	HasMean bool
}

// ImputeOwners fills unparsed owners with the mean of every parsed value
// in rows. The mean is taken over the whole column before any row is filled.
func ImputeOwners(rows []Listing) OwnersColumn {
	col := OwnersColumn{
		Values:  make([]float64, len(rows)),
		Imputed: make([]bool, len(rows)),
	}

	var sum float64
	var n int
	for i := range rows {
		if rows[i].OwnersKnown {
			sum += rows[i].OwnersEstimate
			n++
		}
	}
	if n > 0 {
		col.Mean = sum / float64(n)
		col.HasMean = true
	}

	for i := range rows {
		switch {
		case rows[i].OwnersKnown:
			col.Values[i] = rows[i].OwnersEstimate
		case col.HasMean:
			col.Values[i] = col.Mean
			col.Imputed[i] = true
		default:
			col.Values[i] = math.NaN()
		}
	}
	return col
}
