// Reelmatch - Movie Recommendations and Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package validation

import (
	"strings"
	"sync"
	"testing"
)

type testQuery struct {
	Title      string  `query:"title" validate:"notblank,max=20"`
	N          int     `query:"n" validate:"min=1,max=100"`
	MinOverlap float64 `query:"min_overlap" validate:"gte=0,lte=1"`
	Format     string  `json:"format,omitempty" validate:"omitempty,oneof=json csv"`
	Internal   int     `validate:"gte=0"`
}

func validQuery() testQuery {
	return testQuery{Title: "Heat", N: 10, MinOverlap: 0.5}
}

func TestValidateStruct(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		modify    func(*testQuery)
		wantField string
		wantMsg   string
	}{
		{"valid", func(*testQuery) {}, "", ""},
		{"blank title", func(q *testQuery) { q.Title = "   " }, "title", "title must not be blank"},
		{"long title", func(q *testQuery) { q.Title = strings.Repeat("x", 21) }, "title", "title must be at most 20 characters"},
		{"zero n", func(q *testQuery) { q.N = 0 }, "n", "n must be at least 1"},
		{"big n", func(q *testQuery) { q.N = 101 }, "n", "n must be at most 100"},
		{"overlap above one", func(q *testQuery) { q.MinOverlap = 1.5 }, "min_overlap", "min_overlap must be less than or equal to 1"},
		{"negative overlap", func(q *testQuery) { q.MinOverlap = -0.1 }, "min_overlap", "min_overlap must be greater than or equal to 0"},
		{"bad format", func(q *testQuery) { q.Format = "xml" }, "format", "format must be one of: json csv"},
		{"go name fallback", func(q *testQuery) { q.Internal = -1 }, "Internal", "Internal must be greater than or equal to 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			q := validQuery()
			tt.modify(&q)

			err := ValidateStruct(&q)
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("ValidateStruct() = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatal("ValidateStruct() = nil, want error")
			}
			if len(err.Fields) != 1 {
				t.Fatalf("Fields = %+v, want one", err.Fields)
			}
			if err.Fields[0].Field != tt.wantField {
				t.Errorf("Field = %q, want %q", err.Fields[0].Field, tt.wantField)
			}
			if err.Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestToAPIError(t *testing.T) {
	t.Parallel()

	single := ValidateStruct(&testQuery{Title: "Heat", N: 0})
	apiErr := single.ToAPIError()
	if apiErr.Code != ErrorCode {
		t.Errorf("Code = %q", apiErr.Code)
	}
	if apiErr.Details["field"] != "n" || apiErr.Details["tag"] != "min" {
		t.Errorf("Details = %+v", apiErr.Details)
	}

	multi := ValidateStruct(&testQuery{Title: "", N: 0, MinOverlap: 2})
	apiErr = multi.ToAPIError()
	fields, ok := apiErr.Details["fields"].([]FieldError)
	if !ok || len(fields) != 3 {
		t.Fatalf("fields detail = %#v", apiErr.Details["fields"])
	}
	if strings.Count(apiErr.Message, ";") != 2 {
		t.Errorf("Message = %q", apiErr.Message)
	}

	empty := (&RequestValidationError{}).ToAPIError()
	if empty.Message != "Validation failed" || empty.Code != ErrorCode {
		t.Errorf("empty = %+v", empty)
	}
}

func TestValidateStruct_NonStruct(t *testing.T) {
	t.Parallel()

	err := ValidateStruct("not a struct")
	if err == nil || err.Fields[0].Field != "unknown" {
		t.Errorf("ValidateStruct(string) = %v", err)
	}
}

func TestGetValidator_Singleton(t *testing.T) {
	t.Parallel()

	var wg sync.WaitGroup
	results := make([]interface{}, 10)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = GetValidator()
		}(i)
	}
	wg.Wait()
	for i := 1; i < len(results); i++ {
		if results[i] != results[0] {
			t.Fatal("GetValidator() returned different instances")
		}
	}
}
