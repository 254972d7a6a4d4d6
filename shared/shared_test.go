package shared_test

import (
	"strings"
	"studio/shared"
	"studio/shared/constant"
	"studio/shared/dto"
	"testing"
)

func TestTransformFields(t *testing.T) {
	type record struct {
		Name   string `db:"name"`
		Status string `db:"status"`
		Notes  string
	}

	tests := []struct {
		name     string
		input    record
		expected map[string]bool
	}{
		{
			name:  "non zero tagged fields are included",
			input: record{Name: "Sara", Status: "Approved"},
			expected: map[string]bool{
				"name":   true,
				"status": true,
			},
		},
		{
			name:  "zero fields are skipped",
			input: record{Name: "Sara"},
			expected: map[string]bool{
				"name":   true,
				"status": false,
			},
		},
		{
			name:     "untagged fields never appear",
			input:    record{Notes: "internal"},
			expected: map[string]bool{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.TransformFields(tt.input)

			for field, want := range tt.expected {
				if _, ok := result[field]; ok != want {
					t.Errorf("field %q presence = %v, want %v", field, ok, want)
				}
			}

			if _, ok := result[constant.FieldUpdatedAt]; !ok {
				t.Errorf("expected %q to always be set", constant.FieldUpdatedAt)
			}
		})
	}
}

func TestFilterByID(t *testing.T) {
	filter := shared.FilterByID(42, "id", "reservations")

	if len(filter.Filters) != 1 {
		t.Fatalf("expected 1 filter, got %d", len(filter.Filters))
	}

	f, ok := filter.Filters[0].(dto.Filter)
	if !ok {
		t.Fatalf("expected dto.Filter, got %T", filter.Filters[0])
	}

	if f.Field != "id" || f.Table != "reservations" || f.Operator != dto.FilterOperatorEq {
		t.Errorf("unexpected filter %+v", f)
	}

	if f.Value != int64(42) {
		t.Errorf("expected value 42, got %v", f.Value)
	}
}

func TestBuildCacheKey(t *testing.T) {
	tests := []struct {
		name     string
		prefix   string
		parts    []string
		expected string
	}{
		{
			name:     "prefix only",
			prefix:   "reservation:get",
			parts:    nil,
			expected: "reservation:get",
		},
		{
			name:     "prefix with id",
			prefix:   "reservation:get",
			parts:    []string{"42"},
			expected: "reservation:get:42",
		},
		{
			name:     "multiple parts",
			prefix:   "borrow:get",
			parts:    []string{"3", "detail"},
			expected: "borrow:get:3:detail",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.BuildCacheKey(tt.prefix, tt.parts...)
			if result != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, result)
			}
		})
	}
}

func TestBuildCacheKeyWithQuery(t *testing.T) {
	params := dto.QueryParams{Page: 2, Limit: 10, SortBy: "created_at", SortDir: "DESC"}

	plain := shared.BuildCacheKeyWithQuery("reservation:gets", params, dto.FilterGroup{})

	if !strings.HasPrefix(plain, "reservation:gets:2:10:created_at:DESC") {
		t.Errorf("unexpected key %q", plain)
	}

	filtered := shared.BuildCacheKeyWithQuery("reservation:gets", params, dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{
				Field:    "status",
				Value:    "Pending",
				Operator: dto.FilterOperatorEq,
				Table:    "reservations",
			},
		},
	})

	if filtered == plain {
		t.Error("expected filtered query to produce a distinct cache key")
	}
}

func TestFormatID(t *testing.T) {
	if got := shared.FormatID(42); got != "42" {
		t.Errorf("expected \"42\", got %q", got)
	}
}
