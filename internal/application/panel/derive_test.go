package panel_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"nexus/internal/application/panel"
)

type row struct {
	ID    string
	Order int
	Kind  string
	Title string
	Live  bool
}

var rows = []row{
	{ID: "1", Order: 3, Kind: "workshop", Title: "Intro to Go", Live: true},
	{ID: "2", Order: 1, Kind: "seminar", Title: "Cloud Careers", Live: true},
	{ID: "3", Order: 2, Kind: "workshop", Title: "Intro to Rust", Live: false},
	{ID: "4", Order: 2, Kind: "social", Title: "Game Night", Live: true},
}

func ids(items []row) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.ID
	}
	return out
}

func TestSortByOrder_StableOnTies(t *testing.T) {
	got := panel.SortByOrder(rows, func(r row) int { return r.Order })
	// Records 3 and 4 share order 2; their input order must survive.
	want := []string{"2", "3", "4", "1"}
	if diff := cmp.Diff(want, ids(got)); diff != "" {
		t.Errorf("sorted ids mismatch (-want +got):\n%s", diff)
	}
	// Input untouched.
	if rows[0].ID != "1" {
		t.Error("SortByOrder mutated its input")
	}
}

func TestPartition_DisjointAndExhaustive(t *testing.T) {
	live, rest := panel.Partition(rows, func(r row) bool { return r.Live })
	if len(live)+len(rest) != len(rows) {
		t.Fatalf("partition dropped items: %d + %d != %d", len(live), len(rest), len(rows))
	}
	if diff := cmp.Diff([]string{"1", "2", "4"}, ids(live)); diff != "" {
		t.Errorf("live half mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"3"}, ids(rest)); diff != "" {
		t.Errorf("rest half mismatch (-want +got):\n%s", diff)
	}
}

func TestGroupBy_PreservesOrderWithinBuckets(t *testing.T) {
	groups := panel.GroupBy(rows, func(r row) string { return r.Kind })
	if diff := cmp.Diff([]string{"1", "3"}, ids(groups["workshop"])); diff != "" {
		t.Errorf("workshop bucket mismatch (-want +got):\n%s", diff)
	}
	if len(groups) != 3 {
		t.Errorf("len(groups) = %d, want 3", len(groups))
	}
}

func TestSearch(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"case insensitive substring", "INTRO", []string{"1", "3"}},
		{"empty query matches all", "", []string{"1", "2", "3", "4"}},
		{"whitespace only matches all", "   ", []string{"1", "2", "3", "4"}},
		{"no match", "quantum", nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := panel.Search(rows, tc.query, func(r row) string { return r.Title })
			if diff := cmp.Diff(tc.want, ids(got)); diff != "" && !(len(tc.want) == 0 && len(got) == 0) {
				t.Errorf("Search(%q) mismatch (-want +got):\n%s", tc.query, diff)
			}
		})
	}
}

func TestFilter(t *testing.T) {
	got := panel.Filter(rows, func(r row) bool { return r.Kind == "seminar" })
	if diff := cmp.Diff([]string{"2"}, ids(got)); diff != "" {
		t.Errorf("Filter mismatch (-want +got):\n%s", diff)
	}
}
