package todo

import (
	"fmt"
	"reflect"
	"testing"
)

func TestHistoryUndoRedoInverse(t *testing.T) {
	var h History

	pre := []Item{{ID: "1", Text: "before", Tags: []string{"a"}}}
	post := []Item{{ID: "1", Text: "after", Tags: []string{"a", "b"}}}

	h.Push(pre)

	restored, ok := h.Undo(post)
	if !ok {
		t.Fatal("undo should succeed")
	}
	if !reflect.DeepEqual(restored, pre) {
		t.Errorf("undo: got %+v, want %+v", restored, pre)
	}

	redone, ok := h.Redo(restored)
	if !ok {
		t.Fatal("redo should succeed")
	}
	if !reflect.DeepEqual(redone, post) {
		t.Errorf("redo: got %+v, want %+v", redone, post)
	}
}

func TestHistoryBoundaries(t *testing.T) {
	var h History

	if _, ok := h.Undo(nil); ok {
		t.Error("undo on empty history must be a no-op")
	}
	if _, ok := h.Redo(nil); ok {
		t.Error("redo with no undone state must be a no-op")
	}
}

func TestHistorySnapshotsAreValueCopies(t *testing.T) {
	var h History

	items := []Item{{ID: "1", Text: "original", Tags: []string{"x"}}}
	h.Push(items)

	// Mutate the live list after the snapshot; the snapshot must not move.
	items[0].Text = "mutated"
	items[0].Tags[0] = "y"

	restored, _ := h.Undo(items)
	if restored[0].Text != "original" || restored[0].Tags[0] != "x" {
		t.Errorf("snapshot aliased live state: %+v", restored[0])
	}
}

func TestHistoryBound(t *testing.T) {
	var h History

	for i := 0; i < 60; i++ {
		h.Push([]Item{{ID: "1", Text: fmt.Sprintf("state-%d", i)}})
	}

	if h.Len() != HistoryCap {
		t.Fatalf("got %d snapshots, want %d", h.Len(), HistoryCap)
	}

	// Walk all the way back: exactly 50 undos, oldest retained is state-10.
	current := []Item{{ID: "1", Text: "live"}}
	var last []Item
	undos := 0
	for {
		restored, ok := h.Undo(current)
		if !ok {
			break
		}
		last = restored
		current = restored
		undos++
	}

	if undos != HistoryCap {
		t.Errorf("got %d undos, want %d", undos, HistoryCap)
	}
	if last[0].Text != "state-10" {
		t.Errorf("oldest snapshot: got %q, want state-10", last[0].Text)
	}
}

func TestHistoryPushDiscardsRedoTail(t *testing.T) {
	var h History

	h.Push([]Item{{ID: "1", Text: "a"}})
	current := []Item{{ID: "1", Text: "b"}}

	current, _ = h.Undo(current) // back to "a"
	h.Push(current)              // new mutation from behind the tip

	if _, ok := h.Redo([]Item{{ID: "1", Text: "c"}}); ok {
		t.Error("redo tail must be discarded by a new push")
	}
}
