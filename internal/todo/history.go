package todo

// HistoryCap bounds the undo log; the oldest snapshots are evicted first.
const HistoryCap = 50

// History is a bounded linear undo/redo log of full list snapshots.
// Push records the pre-mutation state and discards any redo tail, so
// redoing is only possible until the next new mutation.
type History struct {
	past   [][]Item
	future [][]Item
}

// Push records a snapshot taken before a mutation. The snapshot is
// deep-copied; callers may keep mutating their slice.
func (h *History) Push(items []Item) {
	h.past = append(h.past, CloneAll(items))
	if len(h.past) > HistoryCap {
		h.past = h.past[len(h.past)-HistoryCap:]
	}
	h.future = nil
}

// Undo returns the snapshot to restore, given the current state. The
// current state is retained so Redo can return to it. ok is false at the
// boundary.
func (h *History) Undo(current []Item) (restored []Item, ok bool) {
	if len(h.past) == 0 {
		return nil, false
	}
	snap := h.past[len(h.past)-1]
	h.past = h.past[:len(h.past)-1]
	h.future = append(h.future, CloneAll(current))
	return snap, true
}

// Redo is the inverse of Undo. ok is false when nothing has been undone
// since the last mutation.
func (h *History) Redo(current []Item) (restored []Item, ok bool) {
	if len(h.future) == 0 {
		return nil, false
	}
	snap := h.future[len(h.future)-1]
	h.future = h.future[:len(h.future)-1]
	h.past = append(h.past, CloneAll(current))
	return snap, true
}

// DropLast discards the most recent snapshot without restoring it.
// Used when the mutation that pushed it is rolled back.
func (h *History) DropLast() {
	if len(h.past) > 0 {
		h.past = h.past[:len(h.past)-1]
	}
}

// Len returns the number of undoable snapshots.
func (h *History) Len() int { return len(h.past) }
