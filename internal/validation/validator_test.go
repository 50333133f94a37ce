// Steamlens - Storefront Listing Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package validation

import (
	"strings"
	"testing"
)

func TestGetValidator_Singleton(t *testing.T) {
	v1 := GetValidator()
	v2 := GetValidator()

	if v1 == nil {
		t.Fatal("GetValidator() should not return nil")
	}
	if v1 != v2 {
		t.Error("GetValidator() should return the same singleton instance")
	}
}

// queryStruct mirrors the shape of the dashboard request.
type queryStruct struct {
	Period   string  `query:"period" validate:"period"`
	Bracket  string  `query:"bracket" validate:"bracket"`
	Genre    string  `query:"genre" validate:"max=100"`
	Limit    int     `query:"limit" validate:"omitempty,min=1,max=50"`
	MaxPrice float64 `query:"max_price" validate:"omitempty,gt=0"`
}

func TestValidateStruct_Valid(t *testing.T) {
	tests := []struct {
		name  string
		input queryStruct
	}{
		{"zero value selects defaults", queryStruct{}},
		{"every field set", queryStruct{Period: "last5", Bracket: "cheap", Genre: "Indie", Limit: 10, MaxPrice: 50}},
		{"keys are case insensitive", queryStruct{Period: " 2010S", Bracket: "PREMIUM"}},
		{"limit bounds", queryStruct{Limit: 50}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := ValidateStruct(&tt.input); err != nil {
				t.Errorf("ValidateStruct() = %v, want nil", err)
			}
		})
	}
}

func TestValidateStruct_Invalid(t *testing.T) {
	tests := []struct {
		name      string
		input     queryStruct
		wantField string
		wantTag   string
	}{
		{"unknown period", queryStruct{Period: "1990s"}, "period", "period"},
		{"unknown bracket", queryStruct{Bracket: "luxury"}, "bracket", "bracket"},
		{"limit too high", queryStruct{Limit: 51}, "limit", "max"},
		{"negative limit", queryStruct{Limit: -1}, "limit", "min"},
		{"negative price cap", queryStruct{MaxPrice: -5}, "max_price", "gt"},
		{"genre too long", queryStruct{Genre: strings.Repeat("x", 101)}, "genre", "max"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(&tt.input)
			if err == nil {
				t.Fatal("ValidateStruct() should have returned an error")
			}

			found := false
			for _, e := range err.Fields {
				if e.Field == tt.wantField && e.Tag == tt.wantTag {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("expected error on field %s with tag %s, got: %v", tt.wantField, tt.wantTag, err.Fields)
			}
		})
	}
}

func TestToAPIError_SingleError(t *testing.T) {
	err := ValidateStruct(&queryStruct{Period: "someday"})
	if err == nil {
		t.Fatal("expected validation error")
	}

	apiErr := err.ToAPIError()
	if apiErr.Code != CodeValidation {
		t.Errorf("Code = %s, want %s", apiErr.Code, CodeValidation)
	}
	if !strings.Contains(apiErr.Message, "last5") {
		t.Errorf("Message should list accepted periods, got %q", apiErr.Message)
	}
	if apiErr.Details["field"] != "period" {
		t.Errorf("Details[field] = %v, want period", apiErr.Details["field"])
	}
	if apiErr.Details["value"] != "someday" {
		t.Errorf("Details[value] = %v, want someday", apiErr.Details["value"])
	}
}

func TestToAPIError_MultipleErrors(t *testing.T) {
	err := ValidateStruct(&queryStruct{Period: "x", Bracket: "y", Limit: 99})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if n := len(err.Fields); n != 3 {
		t.Fatalf("len(Fields) = %d, want 3", n)
	}

	apiErr := err.ToAPIError()
	fields, ok := apiErr.Details["fields"].([]map[string]interface{})
	if !ok {
		t.Fatalf("Details[fields] has type %T", apiErr.Details["fields"])
	}
	if len(fields) != 3 {
		t.Errorf("len(fields) = %d, want 3", len(fields))
	}
	if !strings.Contains(apiErr.Message, "limit: ") {
		t.Errorf("Message should prefix each failure with its field, got %q", apiErr.Message)
	}
}

func TestToAPIError_Empty(t *testing.T) {
	apiErr := (&RequestValidationError{}).ToAPIError()
	if apiErr.Code != CodeValidation || apiErr.Message != "Validation failed" {
		t.Errorf("ToAPIError() = %+v", apiErr)
	}
}

func TestFieldNameFallback(t *testing.T) {
	type mixed struct {
		Tagged   int `json:"tagged,omitempty" validate:"min=1"`
		Untagged int `validate:"min=1"`
	}
	err := ValidateStruct(&mixed{})
	if err == nil {
		t.Fatal("expected validation error")
	}
	got := map[string]bool{}
	for _, e := range err.Fields {
		got[e.Field] = true
	}
	if !got["tagged"] || !got["Untagged"] {
		t.Errorf("fields = %v, want tagged and Untagged", got)
	}
}

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		input queryStruct
		want  string
	}{
		{queryStruct{Limit: 51}, "limit must be at most 50"},
		{queryStruct{Limit: -3}, "limit must be at least 1"},
		{queryStruct{MaxPrice: -1}, "max_price must be greater than 0"},
		{queryStruct{Genre: strings.Repeat("g", 101)}, "genre must be at most 100 characters"},
		{queryStruct{Bracket: "gold"}, "bracket must be one of: all, free"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			err := ValidateStruct(&tt.input)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.HasPrefix(err.Error(), tt.want) {
				t.Errorf("Error() = %q, want prefix %q", err.Error(), tt.want)
			}
		})
	}
}
