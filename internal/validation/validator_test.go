// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package validation

import (
	"strings"
	"testing"
)

type searchParams struct {
	Query string `query:"q" validate:"required,notblank,max=20"`
	Limit int    `query:"limit" validate:"min=1,max=50"`
	Mode  string `validate:"omitempty,oneof=prefix fuzzy"`
}

func TestGetValidator_Singleton(t *testing.T) {
	if GetValidator() != GetValidator() {
		t.Error("GetValidator() should return the same singleton instance")
	}
}

func TestValidateStruct(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     searchParams
		wantField string
		wantTag   string
		wantMsg   string
	}{
		{name: "valid", input: searchParams{Query: "avatar", Limit: 10}},
		{name: "missing query", input: searchParams{Limit: 10}, wantField: "q", wantTag: "required", wantMsg: "q is required"},
		{name: "blank query", input: searchParams{Query: "   ", Limit: 10}, wantField: "q", wantTag: "notblank", wantMsg: "q must not be blank"},
		{name: "long query", input: searchParams{Query: strings.Repeat("a", 21), Limit: 10}, wantField: "q", wantTag: "max", wantMsg: "q must be at most 20 characters"},
		{name: "limit too small", input: searchParams{Query: "a", Limit: 0}, wantField: "limit", wantTag: "min", wantMsg: "limit must be at least 1"},
		{name: "limit too large", input: searchParams{Query: "a", Limit: 51}, wantField: "limit", wantTag: "max", wantMsg: "limit must be at most 50"},
		{name: "untagged field keeps go name", input: searchParams{Query: "a", Limit: 1, Mode: "exact"}, wantField: "Mode", wantTag: "oneof", wantMsg: "Mode must be one of: prefix fuzzy"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			verr := ValidateStruct(&tt.input)
			if tt.wantField == "" {
				if verr != nil {
					t.Fatalf("ValidateStruct() = %v, want nil", verr)
				}
				return
			}
			if verr == nil {
				t.Fatal("ValidateStruct() = nil, want error")
			}

			errs := verr.Errors()
			if len(errs) != 1 {
				t.Fatalf("got %d errors, want 1: %v", len(errs), verr)
			}
			if errs[0].Field() != tt.wantField || errs[0].Tag() != tt.wantTag {
				t.Errorf("error = %s/%s, want %s/%s", errs[0].Field(), errs[0].Tag(), tt.wantField, tt.wantTag)
			}
			if errs[0].Error() != tt.wantMsg {
				t.Errorf("message = %q, want %q", errs[0].Error(), tt.wantMsg)
			}

			apiErr := verr.ToAPIError()
			if apiErr.Code != Code || apiErr.Message != tt.wantMsg || apiErr.Details["field"] != tt.wantField {
				t.Errorf("ToAPIError() = %+v", apiErr)
			}
		})
	}
}

func TestValidateStruct_MultipleErrors(t *testing.T) {
	t.Parallel()

	verr := ValidateStruct(&searchParams{Limit: 100})
	if verr == nil {
		t.Fatal("expected errors")
	}
	if len(verr.Errors()) != 2 {
		t.Fatalf("got %d errors, want 2", len(verr.Errors()))
	}

	apiErr := verr.ToAPIError()
	if apiErr.Message != "q is required; limit must be at most 50" {
		t.Errorf("message = %q", apiErr.Message)
	}
	if fields, ok := apiErr.Details["fields"].([]map[string]interface{}); !ok || len(fields) != 2 {
		t.Errorf("details = %v", apiErr.Details)
	}
	if verr.Error() != apiErr.Message {
		t.Errorf("Error() = %q, want %q", verr.Error(), apiErr.Message)
	}
}

func TestValidateStruct_NotAStruct(t *testing.T) {
	t.Parallel()

	verr := ValidateStruct("just a string")
	if verr == nil || verr.Errors()[0].Field() != "unknown" {
		t.Errorf("ValidateStruct(string) = %v, want unknown field error", verr)
	}
}

func TestRequestValidationError_Empty(t *testing.T) {
	t.Parallel()

	verr := &RequestValidationError{}
	if verr.Error() != "validation failed" || verr.ToAPIError().Message != "Validation failed" {
		t.Errorf("empty error = %q / %q", verr.Error(), verr.ToAPIError().Message)
	}
}
