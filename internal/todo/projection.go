package todo

import "sort"

// SortMode selects the ordering of the displayed list. SortNone keeps
// canonical order.
type SortMode int

const (
	SortNone SortMode = iota
	SortNewest
	SortOldest
	SortDueEarliest
	SortDueLatest
)

// String returns the name shown in the status bar.
func (m SortMode) String() string {
	switch m {
	case SortNewest:
		return "newest"
	case SortOldest:
		return "oldest"
	case SortDueEarliest:
		return "due-earliest"
	case SortDueLatest:
		return "due-latest"
	default:
		return "none"
	}
}

// View is the sort/filter configuration of the display projection.
type View struct {
	Sort          SortMode
	ShowCompleted bool
	FilterTags    []string
}

// Apply derives the displayed subsequence from the canonical list. The
// input is never mutated and canonical order is never touched; the result
// holds copies of the visible items in display order.
func (v View) Apply(items []Item) []Item {
	shown := make([]Item, 0, len(items))
	for i := range items {
		it := items[i]
		if it.Completed && !v.ShowCompleted {
			continue
		}
		if !MatchesFilter(it.Tags, v.FilterTags) {
			continue
		}
		shown = append(shown, it.Clone())
	}

	switch v.Sort {
	case SortNewest:
		sort.SliceStable(shown, func(i, j int) bool {
			if !shown[i].CreatedAt.Equal(shown[j].CreatedAt) {
				return shown[i].CreatedAt.After(shown[j].CreatedAt)
			}
			return shown[i].ID < shown[j].ID
		})
	case SortOldest:
		sort.SliceStable(shown, func(i, j int) bool {
			if !shown[i].CreatedAt.Equal(shown[j].CreatedAt) {
				return shown[i].CreatedAt.Before(shown[j].CreatedAt)
			}
			return shown[i].ID < shown[j].ID
		})
	case SortDueEarliest:
		sort.SliceStable(shown, func(i, j int) bool { return dueLess(shown[i], shown[j], false) })
	case SortDueLatest:
		sort.SliceStable(shown, func(i, j int) bool { return dueLess(shown[i], shown[j], true) })
	}

	return shown
}

// dueLess orders by due date with undated items always at the end,
// regardless of direction. Ties break on ID for determinism.
func dueLess(a, b Item, latestFirst bool) bool {
	switch {
	case a.DueDate == nil && b.DueDate == nil:
		return a.ID < b.ID
	case a.DueDate == nil:
		return false
	case b.DueDate == nil:
		return true
	}
	if a.DueDate.Equal(*b.DueDate) {
		return a.ID < b.ID
	}
	if latestFirst {
		return a.DueDate.After(*b.DueDate)
	}
	return a.DueDate.Before(*b.DueDate)
}

// IndexOf returns the position of the item with the given ID, or -1.
func IndexOf(items []Item, id string) int {
	for i := range items {
		if items[i].ID == id {
			return i
		}
	}
	return -1
}

// ClampIndex clamps an index into [0, len(items)-1]; -1 for an empty list.
func ClampIndex(items []Item, idx int) int {
	if len(items) == 0 {
		return -1
	}
	if idx < 0 {
		return 0
	}
	if idx > len(items)-1 {
		return len(items) - 1
	}
	return idx
}
