// Steamlens - Storefront Listing Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package dataset

import "testing"

func TestParseDate(t *testing.T) {
	tests := []struct {
		input    string
		wantYear int
		wantNil  bool
	}{
		{input: "2019-03-05", wantYear: 2019},
		{input: "Nov 1, 2000", wantYear: 2000},
		{input: "  2014-01-31 ", wantYear: 2014},
		{input: "", wantNil: true},
		{input: "coming soon", wantNil: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := parseDate(tt.input)
			if tt.wantNil {
				if got != nil {
					t.Errorf("parseDate(%q) = %v, want nil", tt.input, got)
				}
				return
			}
			if got == nil {
				t.Fatalf("parseDate(%q) = nil, want year %d", tt.input, tt.wantYear)
			}
			if got.Year() != tt.wantYear {
				t.Errorf("parseDate(%q).Year() = %d, want %d", tt.input, got.Year(), tt.wantYear)
			}
		})
	}
}

func TestParsePrice(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantNil bool
	}{
		{input: "0", want: "0"},
		{input: "9.99", want: "9.99"},
		{input: " 421.99 ", want: "421.99"},
		{input: "-1", wantNil: true},
		{input: "free", wantNil: true},
		{input: "", wantNil: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := parsePrice(tt.input)
			if tt.wantNil {
				if got != nil {
					t.Errorf("parsePrice(%q) = %v, want nil", tt.input, got)
				}
				return
			}
			if got == nil || got.String() != tt.want {
				t.Errorf("parsePrice(%q) = %v, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseCount(t *testing.T) {
	tests := []struct {
		input  string
		want   int64
		wantOK bool
	}{
		{"124534", 124534, true},
		{"1,234", 1234, true},
		{" 1,200,000 ", 1200000, true},
		{"1200.0", 1200, true},
		{"", 0, true},
		{"-5", 0, false},
		{"n/a", 0, false},
		{"abc", 0, false},
	}

	for _, tt := range tests {
		got, ok := parseCount(tt.input)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("parseCount(%q) = (%d, %v), want (%d, %v)", tt.input, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestParseRecord_RatingsMalformed(t *testing.T) {
	cells := map[string]string{
		ColName:            "Separated",
		ColPositiveRatings: "1,234",
		ColNegativeRatings: "10",
	}
	rec := parseRecord(func(col string) string { return cells[col] })
	if rec.PositiveRatings != 1234 || rec.NegativeRatings != 10 || rec.RatingsMalformed {
		t.Errorf("ratings = %d/%d malformed=%v, want 1234/10 malformed=false",
			rec.PositiveRatings, rec.NegativeRatings, rec.RatingsMalformed)
	}

	cells[ColPositiveRatings] = "abc"
	rec = parseRecord(func(col string) string { return cells[col] })
	if !rec.RatingsMalformed {
		t.Error("unreadable positive_ratings should mark the record malformed")
	}
}

func TestParseMinutes(t *testing.T) {
	if got := parseMinutes("90.5"); got == nil || *got != 90.5 {
		t.Errorf("parseMinutes(90.5) = %v, want 90.5", got)
	}
	for _, input := range []string{"", "-3", "NaN", "abc"} {
		if got := parseMinutes(input); got != nil {
			t.Errorf("parseMinutes(%q) = %v, want nil", input, *got)
		}
	}
}

func TestMissingColumns(t *testing.T) {
	idx := buildColumnIndex(RequiredColumns)
	if missing := missingColumns(idx); len(missing) != 0 {
		t.Errorf("missingColumns(all) = %v, want none", missing)
	}

	idx = buildColumnIndex([]string{"name", "price"})
	missing := missingColumns(idx)
	if len(missing) != len(RequiredColumns)-2 {
		t.Errorf("missingColumns = %v, want %d entries", missing, len(RequiredColumns)-2)
	}
}
