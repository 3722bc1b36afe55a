// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package query

import (
	"math"
	"testing"
	"time"
)

type item struct {
	ID      int
	Name    string
	Group   string
	Tags    []string
	Created time.Time
}

func (i item) Field(name string) any {
	switch name {
	case "id":
		return i.ID
	case "name":
		return i.Name
	case "group":
		return i.Group
	case "tags":
		return i.Tags
	case "created":
		return i.Created
	}
	return nil
}

func makeItems(n int) []item {
	items := make([]item, n)
	for i := range items {
		items[i] = item{ID: i + 1}
	}
	return items
}

func TestPaginate(t *testing.T) {
	tests := []struct {
		name        string
		total       int
		page        int
		pageSize    int
		wantLen     int
		wantPages   int
		wantNext    bool
		wantPrev    bool
		wantFirstID int
	}{
		{"first page", 25, 1, 10, 10, 3, true, false, 1},
		{"middle page", 25, 2, 10, 10, 3, true, true, 11},
		{"last partial page", 25, 3, 10, 5, 3, false, true, 21},
		{"out of range", 25, 4, 10, 0, 3, false, true, 0},
		{"exact fit", 20, 2, 10, 10, 2, false, true, 11},
		{"empty", 0, 1, 10, 0, 0, false, false, 0},
		{"page size larger than total", 3, 1, 50, 3, 1, false, false, 1},
		{"huge page", 3, math.MaxInt, 10, 0, 1, false, true, 0},
		{"huge page size", 3, 1, math.MaxInt, 3, 1, false, false, 1},
		{"huge page and page size", 3, math.MaxInt, math.MaxInt, 0, 1, false, true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Paginate(makeItems(tt.total), tt.page, tt.pageSize)

			if len(p.Data) != tt.wantLen {
				t.Errorf("len(Data) = %d, want %d", len(p.Data), tt.wantLen)
			}
			if p.Total != tt.total {
				t.Errorf("Total = %d, want %d", p.Total, tt.total)
			}
			if p.TotalPages != tt.wantPages {
				t.Errorf("TotalPages = %d, want %d", p.TotalPages, tt.wantPages)
			}
			if p.HasNext != tt.wantNext {
				t.Errorf("HasNext = %v, want %v", p.HasNext, tt.wantNext)
			}
			if p.HasPrevious != tt.wantPrev {
				t.Errorf("HasPrevious = %v, want %v", p.HasPrevious, tt.wantPrev)
			}
			if tt.wantLen > 0 && p.Data[0].ID != tt.wantFirstID {
				t.Errorf("first ID = %d, want %d", p.Data[0].ID, tt.wantFirstID)
			}
			if p.Data == nil {
				t.Error("Data should never be nil")
			}
		})
	}
}

func TestPaginate_LengthProperty(t *testing.T) {
	for total := 0; total <= 23; total++ {
		items := makeItems(total)
		for pageSize := 1; pageSize <= 7; pageSize++ {
			for page := 1; page <= 6; page++ {
				p := Paginate(items, page, pageSize)

				want := min(pageSize, max(0, total-(page-1)*pageSize))
				if len(p.Data) != want {
					t.Fatalf("total=%d page=%d size=%d: len = %d, want %d", total, page, pageSize, len(p.Data), want)
				}
				wantPages := (total + pageSize - 1) / pageSize
				if p.TotalPages != wantPages {
					t.Fatalf("total=%d size=%d: TotalPages = %d, want %d", total, pageSize, p.TotalPages, wantPages)
				}
			}
		}
	}
}

func TestSearch(t *testing.T) {
	items := []item{
		{ID: 1, Name: "Backend Engineer", Tags: []string{"Go", "PostgreSQL"}},
		{ID: 2, Name: "Frontend Developer", Tags: []string{"React"}},
		{ID: 3, Name: "Data Scientist", Tags: []string{"Python", "golang"}},
	}

	tests := []struct {
		name    string
		term    string
		fields  []string
		wantIDs []int
	}{
		{"empty term returns all", "", []string{"name"}, []int{1, 2, 3}},
		{"case insensitive", "ENGINEER", []string{"name"}, []int{1}},
		{"substring", "end", []string{"name"}, []int{1, 2}},
		{"slice field", "go", []string{"tags"}, []int{1, 3}},
		{"any of several fields", "react", []string{"name", "tags"}, []int{2}},
		{"no match", "rust", []string{"name", "tags"}, []int{}},
		{"unknown field", "engineer", []string{"missing"}, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Search(items, tt.term, tt.fields...)
			assertIDs(t, got, tt.wantIDs)
		})
	}

	// Input must not be mutated
	if items[0].Name != "Backend Engineer" || len(items) != 3 {
		t.Error("Search mutated its input")
	}
}

func TestFilter(t *testing.T) {
	items := []item{
		{ID: 1, Group: "a", Tags: []string{"x", "y"}},
		{ID: 2, Group: "b", Tags: []string{"y"}},
		{ID: 3, Group: "a", Tags: nil},
	}

	tests := []struct {
		name     string
		criteria map[string]any
		wantIDs  []int
	}{
		{"no criteria", map[string]any{}, []int{1, 2, 3}},
		{"scalar equality", map[string]any{"group": "a"}, []int{1, 3}},
		{"all is unconstrained", map[string]any{"group": All}, []int{1, 2, 3}},
		{"nil is unconstrained", map[string]any{"group": nil}, []int{1, 2, 3}},
		{"empty string is unconstrained", map[string]any{"group": ""}, []int{1, 2, 3}},
		{"slice membership", map[string]any{"tags": "y"}, []int{1, 2}},
		{"numeric equality across int kinds", map[string]any{"id": int64(2)}, []int{2}},
		{"all criteria must match", map[string]any{"group": "a", "tags": "x"}, []int{1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertIDs(t, Filter(items, tt.criteria), tt.wantIDs)
		})
	}
}

func TestSort(t *testing.T) {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	items := []item{
		{ID: 3, Name: "charlie", Created: base.Add(2 * time.Hour)},
		{ID: 1, Name: "alpha", Created: base},
		{ID: 2, Name: "bravo", Created: base.Add(time.Hour)},
	}

	tests := []struct {
		name    string
		field   string
		order   string
		wantIDs []int
	}{
		{"numeric asc", "id", Asc, []int{1, 2, 3}},
		{"numeric desc", "id", Desc, []int{3, 2, 1}},
		{"string asc", "name", Asc, []int{1, 2, 3}},
		{"time desc", "created", Desc, []int{3, 2, 1}},
		{"unknown order is desc", "created", "sideways", []int{3, 2, 1}},
		{"empty order is desc", "id", "", []int{3, 2, 1}},
		{"unknown field keeps input order", "missing", Asc, []int{3, 1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertIDs(t, Sort(items, tt.field, tt.order), tt.wantIDs)
		})
	}

	if items[0].ID != 3 {
		t.Error("Sort mutated its input")
	}
}

func TestSort_Stable(t *testing.T) {
	// Sorted by name (secondary key) first
	items := []item{
		{ID: 1, Name: "a", Group: "y"},
		{ID: 2, Name: "b", Group: "x"},
		{ID: 3, Name: "c", Group: "y"},
		{ID: 4, Name: "d", Group: "x"},
		{ID: 5, Name: "e", Group: "y"},
		{ID: 6, Name: "f", Group: "x"},
	}

	asc := Sort(items, "group", Asc)
	assertIDs(t, asc, []int{2, 4, 6, 1, 3, 5})

	desc := Sort(items, "group", Desc)
	assertIDs(t, desc, []int{1, 3, 5, 2, 4, 6})
}

func assertIDs(t *testing.T, got []item, want []int) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d items, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].ID != want[i] {
			t.Errorf("item %d: ID = %d, want %d", i, got[i].ID, want[i])
		}
	}
}
