package browse

import "testing"

func TestWithSearchResetsPage(t *testing.T) {
	q := Query{Page: 7, SortField: SortRating, SortOrder: Descending}
	q = q.WithSearch("  pizza  ")
	if q.Page != 1 {
		t.Fatalf("WithSearch left page at %d, want 1", q.Page)
	}
	if q.Search != "pizza" {
		t.Fatalf("WithSearch = %q, want trimmed %q", q.Search, "pizza")
	}
	// Sort settings survive a search change.
	if q.SortField != SortRating || q.SortOrder != Descending {
		t.Fatalf("WithSearch disturbed sort state")
	}
}

func TestWithPageClamps(t *testing.T) {
	q := Query{Page: 1}
	if got := q.WithPage(0, 3).Page; got != 1 {
		t.Fatalf("WithPage(0, 3).Page = %d, want 1", got)
	}
	if got := q.WithPage(9, 3).Page; got != 3 {
		t.Fatalf("WithPage(9, 3).Page = %d, want 3", got)
	}
	if got := q.WithPage(2, 0).Page; got != 1 {
		t.Fatalf("WithPage(2, 0).Page = %d, want 1", got)
	}
}

func TestNextSortFieldCycles(t *testing.T) {
	q := DefaultQuery()
	want := []SortField{SortName, SortRating, SortDifficulty, SortNone, SortName}
	for i, field := range want {
		q = q.NextSortField()
		if q.SortField != field {
			t.Fatalf("cycle step %d = %v, want %v", i, q.SortField, field)
		}
	}
}

func TestToggleSortOrder(t *testing.T) {
	q := DefaultQuery()
	if q.Order() != "asc" {
		t.Fatalf("default order = %q, want asc", q.Order())
	}
	q = q.ToggleSortOrder()
	if q.Order() != "desc" {
		t.Fatalf("toggled order = %q, want desc", q.Order())
	}
	q = q.ToggleSortOrder()
	if q.Order() != "asc" {
		t.Fatalf("double-toggled order = %q, want asc", q.Order())
	}
}

func TestSortBy(t *testing.T) {
	cases := []struct {
		field SortField
		want  string
	}{
		{SortNone, ""},
		{SortName, "name"},
		{SortRating, "rating"},
		{SortDifficulty, "difficulty"},
	}
	for _, tc := range cases {
		q := Query{SortField: tc.field}
		if got := q.SortBy(); got != tc.want {
			t.Fatalf("SortBy(%v) = %q, want %q", tc.field, got, tc.want)
		}
	}
}

func TestParseSortRoundTrip(t *testing.T) {
	for _, field := range []SortField{SortNone, SortName, SortRating, SortDifficulty} {
		q := Query{SortField: field}
		if got := ParseSortField(q.SortBy()); got != field {
			t.Fatalf("ParseSortField(%q) = %v, want %v", q.SortBy(), got, field)
		}
	}
	if ParseSortOrder("desc") != Descending {
		t.Fatalf("ParseSortOrder(desc) should be Descending")
	}
	if ParseSortOrder("") != Ascending {
		t.Fatalf("ParseSortOrder empty should default to Ascending")
	}
	if ParseSortOrder("DESC") != Descending {
		t.Fatalf("ParseSortOrder should be case-insensitive")
	}
}
