package todo

import (
	"testing"
	"time"
)

func projItems() []Item {
	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	due1 := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	due2 := time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC)
	return []Item{
		{ID: "1", Text: "oldest", CreatedAt: t0, SortKey: 1000, DueDate: &due2},
		{ID: "2", Text: "done", CreatedAt: t0.Add(time.Hour), SortKey: 2000, Completed: true, Tags: []string{"home"}},
		{ID: "3", Text: "tagged", CreatedAt: t0.Add(2 * time.Hour), SortKey: 3000, Tags: []string{"Work"}},
		{ID: "4", Text: "newest", CreatedAt: t0.Add(3 * time.Hour), SortKey: 4000, DueDate: &due1},
	}
}

func ids(items []Item) []string {
	out := make([]string, len(items))
	for i := range items {
		out[i] = items[i].ID
	}
	return out
}

func assertIDs(t *testing.T, got []Item, want ...string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", ids(got), want)
	}
	for i := range want {
		if got[i].ID != want[i] {
			t.Fatalf("got %v, want %v", ids(got), want)
		}
	}
}

func TestViewHidesCompleted(t *testing.T) {
	items := projItems()

	assertIDs(t, View{}.Apply(items), "1", "3", "4")
	assertIDs(t, View{ShowCompleted: true}.Apply(items), "1", "2", "3", "4")
}

func TestViewTagFilter(t *testing.T) {
	items := projItems()

	// Case-insensitive tag match.
	v := View{ShowCompleted: true, FilterTags: []string{"work"}}
	assertIDs(t, v.Apply(items), "3")

	// Filter applies together with the completed flag.
	v = View{FilterTags: []string{"home"}}
	assertIDs(t, v.Apply(items))
}

func TestViewSortModes(t *testing.T) {
	items := projItems()
	v := View{ShowCompleted: true}

	v.Sort = SortNewest
	assertIDs(t, v.Apply(items), "4", "3", "2", "1")

	v.Sort = SortOldest
	assertIDs(t, v.Apply(items), "1", "2", "3", "4")

	// Undated items sort to the end in both due directions.
	v.Sort = SortDueEarliest
	assertIDs(t, v.Apply(items), "4", "1", "2", "3")

	v.Sort = SortDueLatest
	assertIDs(t, v.Apply(items), "1", "4", "2", "3")
}

func TestViewDoesNotMutateCanonical(t *testing.T) {
	items := projItems()
	v := View{ShowCompleted: true, Sort: SortNewest}
	v.Apply(items)

	assertIDs(t, items, "1", "2", "3", "4")
	if !SortKeysValid(items) {
		t.Error("projection must not touch sort keys")
	}
}

func TestViewCreatedTieBreaksOnID(t *testing.T) {
	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	items := []Item{
		{ID: "b", CreatedAt: t0, SortKey: 1000},
		{ID: "a", CreatedAt: t0, SortKey: 2000},
	}
	v := View{ShowCompleted: true, Sort: SortNewest}
	assertIDs(t, v.Apply(items), "a", "b")
}

func TestClampIndex(t *testing.T) {
	items := projItems()
	tests := []struct {
		idx, want int
	}{
		{-3, 0},
		{0, 0},
		{3, 3},
		{99, 3},
	}
	for _, tt := range tests {
		if got := ClampIndex(items, tt.idx); got != tt.want {
			t.Errorf("ClampIndex(%d): got %d, want %d", tt.idx, got, tt.want)
		}
	}
	if got := ClampIndex(nil, 5); got != -1 {
		t.Errorf("empty list: got %d, want -1", got)
	}
}

func TestIndexOf(t *testing.T) {
	items := projItems()
	if got := IndexOf(items, "3"); got != 2 {
		t.Errorf("got %d, want 2", got)
	}
	if got := IndexOf(items, "missing"); got != -1 {
		t.Errorf("got %d, want -1", got)
	}
}
