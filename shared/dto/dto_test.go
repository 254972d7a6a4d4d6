package dto_test

import (
	"net/http/httptest"
	"studio/shared/dto"
	"testing"
)

func TestFilter_GetWhereClause(t *testing.T) {
	tests := []struct {
		name      string
		filter    dto.Filter
		wantWhere string
		wantArg   any
	}{
		{
			name: "eq with table",
			filter: dto.Filter{
				Field:    "status",
				Value:    "Pending",
				Operator: dto.FilterOperatorEq,
				Table:    "reservations",
			},
			wantWhere: "reservations.status = :status",
			wantArg:   "Pending",
		},
		{
			name: "eq without table",
			filter: dto.Filter{
				Field:    "id",
				Value:    int64(5),
				Operator: dto.FilterOperatorEq,
			},
			wantWhere: "id = :id",
			wantArg:   int64(5),
		},
		{
			name: "less or equal",
			filter: dto.Filter{
				Field:    "next_attempt_at",
				Value:    "2026-09-15",
				Operator: dto.FilterOperatorLessEq,
				Table:    "notification_outbox",
			},
			wantWhere: "notification_outbox.next_attempt_at <= :next_attempt_at",
			wantArg:   "2026-09-15",
		},
		{
			name: "custom arg name",
			filter: dto.Filter{
				ArgName:  "target_status",
				Field:    "status",
				Value:    "Queued",
				Operator: dto.FilterOperatorNotEq,
			},
			wantWhere: "status != :target_status",
			wantArg:   "Queued",
		},
		{
			name: "unknown operator yields nothing",
			filter: dto.Filter{
				Field:    "status",
				Value:    "Pending",
				Operator: "between",
			},
			wantWhere: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.filter.GetWhereClause()

			if where != tt.wantWhere {
				t.Errorf("expected where %q, got %q", tt.wantWhere, where)
			}

			if tt.wantWhere == "" {
				if len(args) != 0 {
					t.Errorf("expected no args, got %v", args)
				}

				return
			}

			argName := tt.filter.ArgName
			if argName == "" {
				argName = tt.filter.Field
			}

			if args[argName] != tt.wantArg {
				t.Errorf("expected arg %v, got %v", tt.wantArg, args[argName])
			}
		})
	}
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	group := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{Field: "status", Value: "Pending", Operator: dto.FilterOperatorEq, Table: "reservations"},
			dto.Filter{Field: "date", Value: "2026-09-15", Operator: dto.FilterOperatorEq, Table: "reservations"},
		},
	}

	where, args := group.GetWhereClause()

	expected := "(reservations.status = :status AND reservations.date = :date)"
	if where != expected {
		t.Errorf("expected %q, got %q", expected, where)
	}

	if args["status"] != "Pending" || args["date"] != "2026-09-15" {
		t.Errorf("unexpected args %v", args)
	}
}

func TestFilterGroup_Empty(t *testing.T) {
	group := dto.FilterGroup{}

	where, args := group.GetWhereClause()

	if where != "" {
		t.Errorf("expected empty where, got %q", where)
	}

	if len(args) != 0 {
		t.Errorf("expected no args, got %v", args)
	}
}

func TestFilterGroup_DefaultsToAnd(t *testing.T) {
	group := dto.FilterGroup{
		Filters: []any{
			dto.Filter{Field: "status", Value: "Queued", Operator: dto.FilterOperatorEq},
			dto.Filter{Field: "attempts", Value: 0, Operator: dto.FilterOperatorEq},
		},
	}

	where, _ := group.GetWhereClause()

	expected := "(status = :status AND attempts = :attempts)"
	if where != expected {
		t.Errorf("expected %q, got %q", expected, where)
	}
}

func TestQueryParams_FromRequest(t *testing.T) {
	tests := []struct {
		name     string
		target   string
		expected dto.QueryParams
	}{
		{
			name:     "defaults keep newest first without pagination",
			target:   "/api/reservations",
			expected: dto.QueryParams{SortBy: "created_at", SortDir: "DESC"},
		},
		{
			name:     "explicit pagination and sort",
			target:   "/api/reservations?page=2&limit=25&sort_by=date&sort_dir=asc",
			expected: dto.QueryParams{Page: 2, Limit: 25, SortBy: "date", SortDir: "ASC"},
		},
		{
			name:     "invalid values fall back to defaults",
			target:   "/api/reservations?page=-1&limit=abc&sort_dir=sideways",
			expected: dto.QueryParams{SortBy: "created_at", SortDir: "DESC"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", tt.target, nil)

			params := dto.QueryParams{}
			params.FromRequest(r)

			if params != tt.expected {
				t.Errorf("expected %+v, got %+v", tt.expected, params)
			}
		})
	}
}
