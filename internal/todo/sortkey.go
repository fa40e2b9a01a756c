package todo

import "sort"

// SortKeyStep is the spacing between sort keys after normalization.
const SortKeyStep = 1000

// SortKeysValid reports whether the items carry strictly increasing,
// strictly positive sort keys in slice order.
func SortKeysValid(items []Item) bool {
	var prev int64
	for i := range items {
		k := items[i].SortKey
		if k <= 0 || k <= prev {
			return false
		}
		prev = k
	}
	return true
}

// NormalizeSortKeys rederives every sort key as (position+1)*SortKeyStep.
// Idempotent; used after reorders and whenever midpoint insertion runs out
// of headroom between neighbors.
func NormalizeSortKeys(items []Item) {
	for i := range items {
		items[i].SortKey = int64(i+1) * SortKeyStep
	}
}

// InsertKey returns a sort key for a new item between positions index-1 and
// index of items, using the midpoint of the neighboring keys. ok is false
// when the gap is exhausted or an existing key is invalid; the caller must
// then insert and normalize the whole list.
func InsertKey(items []Item, index int) (key int64, ok bool) {
	var prev, next int64
	if index > 0 {
		prev = items[index-1].SortKey
	}
	if index < len(items) {
		next = items[index].SortKey
	} else {
		next = prev + 2*SortKeyStep
	}
	mid := (prev + next) / 2
	if mid <= prev || mid >= next {
		return 0, false
	}
	return mid, true
}

// InsertAt splices a new item into the list at index and assigns it a valid
// sort key, normalizing the whole list when the midpoint heuristic cannot
// produce one. Returns the updated list.
func InsertAt(items []Item, index int, it Item) []Item {
	if index < 0 {
		index = 0
	}
	if index > len(items) {
		index = len(items)
	}

	key, ok := InsertKey(items, index)
	it.SortKey = key

	items = append(items, Item{})
	copy(items[index+1:], items[index:])
	items[index] = it

	if !ok || !SortKeysValid(items) {
		NormalizeSortKeys(items)
	}
	return items
}

// Move relocates the item at index from to index to, keeping every other
// item's relative order, then renormalizes all sort keys.
func Move(items []Item, from, to int) {
	if from < 0 || from >= len(items) || to < 0 || to >= len(items) || from == to {
		return
	}
	it := items[from]
	if from < to {
		copy(items[from:], items[from+1:to+1])
	} else {
		copy(items[to+1:], items[to:from])
	}
	items[to] = it
	NormalizeSortKeys(items)
}

// CanonicalOrder sorts items into canonical order: ascending sort key, with
// keyless items falling back to CreatedAt then ID. Called once on load;
// afterwards the slice order itself is canonical.
func CanonicalOrder(items []Item) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if a.SortKey > 0 && b.SortKey > 0 && a.SortKey != b.SortKey {
			return a.SortKey < b.SortKey
		}
		if a.SortKey > 0 != (b.SortKey > 0) {
			return a.SortKey > 0
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return a.ID < b.ID
	})
}

// RepairSortKeys restores the sort-key invariant after load: if any key is
// missing, non-positive, duplicated, or out of order, every key is
// rederived. Returns true when a repair was needed.
func RepairSortKeys(items []Item) bool {
	if SortKeysValid(items) {
		return false
	}
	NormalizeSortKeys(items)
	return true
}
