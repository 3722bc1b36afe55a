// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package query

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"
)

// Sort orders
const (
	Asc  = "asc"
	Desc = "desc"
)

// All is the filter value that disables a criterion.
const All = "all"

// Record is implemented by every type the query helpers operate on.
// Field returns nil for unknown names.
type Record interface {
	Field(name string) any
}

// Page is the pagination envelope returned by list endpoints.
type Page[T any] struct {
	Data        []T  `json:"data"`
	Total       int  `json:"total"`
	Page        int  `json:"page"`
	PageSize    int  `json:"pageSize"`
	TotalPages  int  `json:"totalPages"`
	HasNext     bool `json:"hasNext"`
	HasPrevious bool `json:"hasPrevious"`
}

// Paginate returns the 1-indexed page of items. Pages past the end have
// empty Data but still report Total and TotalPages.
func Paginate[T any](items []T, page, pageSize int) Page[T] {
	total := len(items)
	p := Page[T]{
		Data:        []T{},
		Total:       total,
		Page:        page,
		PageSize:    pageSize,
		HasPrevious: page > 1,
	}
	if pageSize <= 0 {
		return p
	}
	p.TotalPages = total / pageSize
	if total%pageSize != 0 {
		p.TotalPages++
	}
	// compare page numbers before multiplying so huge values cannot overflow
	if page < 1 || page-1 >= p.TotalPages {
		return p
	}

	start := (page - 1) * pageSize
	end := start + min(pageSize, total-start)

	p.Data = slices.Clone(items[start:end])
	p.HasNext = end < total
	return p
}

// Search keeps items where any of fields contains term, ignoring case.
// An empty term returns items unchanged.
func Search[T Record](items []T, term string, fields ...string) []T {
	if term == "" {
		return items
	}
	needle := strings.ToLower(term)

	out := make([]T, 0, len(items))
	for _, item := range items {
		for _, field := range fields {
			s, ok := stringify(item.Field(field))
			if ok && strings.Contains(strings.ToLower(s), needle) {
				out = append(out, item)
				break
			}
		}
	}
	return out
}

// Filter keeps items matching every criterion. A nil, empty or "all"
// criterion always passes. Slice fields match by membership, scalar
// fields by equality.
func Filter[T Record](items []T, criteria map[string]any) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if matchesAll(item, criteria) {
			out = append(out, item)
		}
	}
	return out
}

func matchesAll(item Record, criteria map[string]any) bool {
	for field, want := range criteria {
		if unconstrained(want) {
			continue
		}
		got := item.Field(field)
		if list, ok := got.([]string); ok {
			s, isString := want.(string)
			if !isString || !slices.Contains(list, s) {
				return false
			}
			continue
		}
		if !equal(got, want) {
			return false
		}
	}
	return true
}

func unconstrained(v any) bool {
	if v == nil {
		return true
	}
	s, ok := v.(string)
	return ok && (s == "" || s == All)
}

// Sort returns a new slice ordered by field. The sort is stable, so
// equal keys keep their input order. Any order other than Asc sorts
// descending.
func Sort[T Record](items []T, field, order string) []T {
	out := slices.Clone(items)
	desc := order != Asc
	slices.SortStableFunc(out, func(a, b T) int {
		c := Compare(a.Field(field), b.Field(field))
		if desc {
			return -c
		}
		return c
	})
	return out
}

// Compare orders two field values naturally: numbers numerically,
// strings lexicographically, times chronologically. Values of
// different or unsupported kinds compare equal.
func Compare(a, b any) int {
	if x, ok := toFloat(a); ok {
		if y, ok := toFloat(b); ok {
			return cmp.Compare(x, y)
		}
		return 0
	}
	switch x := a.(type) {
	case string:
		if y, ok := b.(string); ok {
			return cmp.Compare(x, y)
		}
	case time.Time:
		if y, ok := b.(time.Time); ok {
			return x.Compare(y)
		}
	}
	return 0
}

func equal(a, b any) bool {
	if x, ok := toFloat(a); ok {
		y, ok := toFloat(b)
		return ok && x == y
	}
	switch x := a.(type) {
	case string:
		y, ok := b.(string)
		return ok && x == y
	case bool:
		y, ok := b.(bool)
		return ok && x == y
	case time.Time:
		y, ok := b.(time.Time)
		return ok && x.Equal(y)
	}
	return false
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

func stringify(v any) (string, bool) {
	switch x := v.(type) {
	case nil:
		return "", false
	case string:
		return x, x != ""
	case []string:
		return strings.Join(x, ","), len(x) > 0
	case int:
		return strconv.Itoa(x), true
	case int64:
		return strconv.FormatInt(x, 10), true
	case time.Time:
		return x.Format(time.RFC3339), true
	}
	return fmt.Sprint(v), true
}
