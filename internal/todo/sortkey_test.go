package todo

import (
	"testing"
	"time"
)

func keyedItems(keys ...int64) []Item {
	items := make([]Item, len(keys))
	for i, k := range keys {
		items[i] = Item{ID: string(rune('a' + i)), Text: "t", SortKey: k}
	}
	return items
}

func assertKeysValid(t *testing.T, items []Item) {
	t.Helper()
	if !SortKeysValid(items) {
		keys := make([]int64, len(items))
		for i := range items {
			keys[i] = items[i].SortKey
		}
		t.Fatalf("sort keys not strictly increasing and positive: %v", keys)
	}
}

func TestSortKeysValid(t *testing.T) {
	tests := []struct {
		name string
		keys []int64
		want bool
	}{
		{"evenly spaced", []int64{1000, 2000, 3000}, true},
		{"empty", nil, true},
		{"duplicate", []int64{1000, 1000}, false},
		{"inversion", []int64{2000, 1000}, false},
		{"zero key", []int64{0, 1000}, false},
		{"negative key", []int64{-5, 1000}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SortKeysValid(keyedItems(tt.keys...)); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNormalizeSortKeys(t *testing.T) {
	items := keyedItems(7, 7, 3)
	NormalizeSortKeys(items)
	for i := range items {
		want := int64(i+1) * SortKeyStep
		if items[i].SortKey != want {
			t.Errorf("index %d: got %d, want %d", i, items[i].SortKey, want)
		}
	}
	assertKeysValid(t, items)
}

func TestInsertAtMidpoint(t *testing.T) {
	items := keyedItems(1000, 2000)
	items = InsertAt(items, 1, Item{ID: "new"})

	if items[1].ID != "new" {
		t.Fatalf("expected new item at index 1, got %q", items[1].ID)
	}
	if items[1].SortKey != 1500 {
		t.Errorf("expected midpoint key 1500, got %d", items[1].SortKey)
	}
	assertKeysValid(t, items)
}

func TestInsertAtExhaustedGapNormalizes(t *testing.T) {
	items := keyedItems(1000, 1001)
	items = InsertAt(items, 1, Item{ID: "new"})

	if items[1].ID != "new" {
		t.Fatalf("expected new item at index 1, got %q", items[1].ID)
	}
	assertKeysValid(t, items)
}

func TestInsertAtEnds(t *testing.T) {
	items := InsertAt(nil, 0, Item{ID: "first"})
	assertKeysValid(t, items)

	items = InsertAt(items, 0, Item{ID: "head"})
	if items[0].ID != "head" {
		t.Fatalf("expected head at index 0, got %q", items[0].ID)
	}
	assertKeysValid(t, items)

	items = InsertAt(items, len(items), Item{ID: "tail"})
	if items[len(items)-1].ID != "tail" {
		t.Fatalf("expected tail at end")
	}
	assertKeysValid(t, items)
}

func TestMove(t *testing.T) {
	items := keyedItems(1000, 2000, 3000, 4000)

	Move(items, 0, 2)
	want := []string{"b", "c", "a", "d"}
	for i, id := range want {
		if items[i].ID != id {
			t.Errorf("after move down, index %d: got %q, want %q", i, items[i].ID, id)
		}
	}
	assertKeysValid(t, items)

	Move(items, 3, 0)
	want = []string{"d", "b", "c", "a"}
	for i, id := range want {
		if items[i].ID != id {
			t.Errorf("after move up, index %d: got %q, want %q", i, items[i].ID, id)
		}
	}
	assertKeysValid(t, items)

	// Out-of-range moves are no-ops.
	Move(items, -1, 2)
	Move(items, 0, 9)
	if items[0].ID != "d" {
		t.Error("out-of-range move mutated the list")
	}
}

func TestCanonicalOrderAndRepair(t *testing.T) {
	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	items := []Item{
		{ID: "c", SortKey: 3000},
		{ID: "a", SortKey: 1000},
		{ID: "nokey2", CreatedAt: t0.Add(time.Hour)},
		{ID: "nokey1", CreatedAt: t0},
		{ID: "b", SortKey: 2000},
	}

	CanonicalOrder(items)
	want := []string{"a", "b", "c", "nokey1", "nokey2"}
	for i, id := range want {
		if items[i].ID != id {
			t.Errorf("index %d: got %q, want %q", i, items[i].ID, id)
		}
	}

	if !RepairSortKeys(items) {
		t.Error("expected repair for keyless items")
	}
	assertKeysValid(t, items)

	if RepairSortKeys(items) {
		t.Error("repair should be idempotent")
	}
}
