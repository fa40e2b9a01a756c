package logic

import (
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/tvim/tvim/internal/todo"
)

// insertNewItem creates an item from free text. Inline #tags become
// the item's tag set. The item lands next to the selection, above or
// below, and becomes selected.
func (h *Handler) insertNewItem(raw string, due *time.Time, above bool) tea.Cmd {
	text, tags := todo.ExtractTags(raw)
	if text == "" {
		return nil
	}
	return h.insertItem(text, due, tags, above)
}

func (h *Handler) insertItem(text string, due *time.Time, tags []string, above bool) tea.Cmd {
	pre := h.snapshot()

	idx := 0
	if pos := todo.IndexOf(h.Items, h.SelectedID); pos >= 0 {
		if above {
			idx = pos
		} else {
			idx = pos + 1
		}
	}

	it := todo.Item{
		ID:        uuid.NewString(),
		Text:      text,
		CreatedAt: time.Now(),
		Tags:      tags,
	}
	if due != nil {
		d := *due
		it.DueDate = &d
	}

	before := keyMap(h.Items)
	h.Items = todo.InsertAt(h.Items, idx, it)
	h.SelectedID = it.ID

	inserted := h.ItemByID(it.ID)
	draft := todo.Draft{Text: text, DueDate: it.DueDate, Tags: tags, SortKey: inserted.SortKey}
	extra := keyChanges(before, h.Items, it.ID)
	return h.createCmd(pre, it.ID, draft, extra)
}

// toggleItems flips completion on the given items as one logical
// mutation with a single history snapshot.
func (h *Handler) toggleItems(ids []string) tea.Cmd {
	pre := h.snapshot()

	var patches []keyedPatch
	for _, id := range ids {
		it := h.ItemByID(id)
		if it == nil {
			continue
		}
		it.Completed = !it.Completed
		completed := it.Completed
		patches = append(patches, keyedPatch{id: id, patch: todo.Patch{Completed: &completed}})
	}
	if len(patches) == 0 {
		h.History.DropLast()
		return nil
	}

	// Toggling off-screen is possible when completed items are hidden.
	visible := h.Visible()
	if idx := h.SelectedIndex(visible); idx < 0 {
		h.SelectClamped(visible, 0)
	}
	return h.updateCmd(pre, patches...)
}

// toggleAllVisible completes every visible item, or un-completes all
// of them when every one is already complete.
func (h *Handler) toggleAllVisible(visible []todo.Item) tea.Cmd {
	if len(visible) == 0 {
		return nil
	}
	target := false
	for _, it := range visible {
		if !it.Completed {
			target = true
			break
		}
	}

	pre := h.snapshot()
	var patches []keyedPatch
	for _, v := range visible {
		it := h.ItemByID(v.ID)
		if it == nil || it.Completed == target {
			continue
		}
		it.Completed = target
		completed := target
		patches = append(patches, keyedPatch{id: v.ID, patch: todo.Patch{Completed: &completed}})
	}
	if len(patches) == 0 {
		h.History.DropLast()
		return nil
	}

	after := h.Visible()
	if idx := h.SelectedIndex(after); idx < 0 {
		h.SelectClamped(after, 0)
	}
	return h.updateCmd(pre, patches...)
}

// requestDelete arms the double-press confirmation, or executes the
// delete when an overlapping request is still within the window.
func (h *Handler) requestDelete(ids []string) tea.Cmd {
	if len(ids) == 0 {
		return nil
	}
	if !h.Confirm.Request(ids) {
		if len(ids) == 1 {
			h.StatusMsg = "press again to delete"
		} else {
			h.StatusMsg = fmt.Sprintf("press again to delete %d items", len(ids))
		}
		return nil
	}
	h.StatusMsg = ""
	return h.deleteItems(ids)
}

func (h *Handler) deleteItems(ids []string) tea.Cmd {
	pre := h.snapshot()

	doomed := make(map[string]bool, len(ids))
	for _, id := range ids {
		doomed[id] = true
	}

	visibleBefore := h.Visible()
	anchor := h.SelectedIndex(visibleBefore)

	kept := h.Items[:0]
	for _, it := range h.Items {
		if !doomed[it.ID] {
			kept = append(kept, it)
		}
	}
	h.Items = kept

	h.SelectClamped(h.Visible(), anchor)
	return h.deleteCmd(pre, ids)
}

// yankSelected copies the selected item's content into the clipboard
// slot and mirrors the text to the system clipboard. History is not
// touched.
func (h *Handler) yankSelected(visible []todo.Item) {
	idx := h.SelectedIndex(visible)
	if idx < 0 {
		return
	}
	it := visible[idx]
	h.Clipboard.Text = it.Text
	h.Clipboard.Tags = append([]string(nil), it.Tags...)
	h.Clipboard.DueDate = nil
	if it.DueDate != nil {
		d := *it.DueDate
		h.Clipboard.DueDate = &d
	}
	h.Clipboard.Filled = true

	// Best effort; headless terminals have no clipboard.
	_ = clipboard.WriteAll(it.Text)
	h.StatusMsg = "yanked"
}

// paste inserts a fresh item built from the clipboard slot. The slot
// is not consumed.
func (h *Handler) paste(below bool) tea.Cmd {
	if !h.Clipboard.Filled {
		return nil
	}
	tags := append([]string(nil), h.Clipboard.Tags...)
	return h.insertItem(h.Clipboard.Text, h.Clipboard.DueDate, tags, !below)
}

// moveSelected reorders the selected item within canonical order.
// Only meaningful while the projection shows canonical order.
func (h *Handler) moveSelected(delta int) tea.Cmd {
	if h.View.Sort != todo.SortNone {
		h.StatusMsg = "reorder needs canonical order (:sort-none)"
		return nil
	}
	from := todo.IndexOf(h.Items, h.SelectedID)
	if from < 0 {
		return nil
	}
	to := from + delta
	if to < 0 || to >= len(h.Items) {
		return nil
	}

	pre := h.snapshot()
	before := keyMap(h.Items)
	todo.Move(h.Items, from, to)

	patches := keyChanges(before, h.Items, "")
	if len(patches) == 0 {
		h.History.DropLast()
		return nil
	}
	return h.updateCmd(pre, patches...)
}

func (h *Handler) undo() tea.Cmd {
	prev := todo.CloneAll(h.Items)
	restored, ok := h.History.Undo(h.Items)
	if !ok {
		h.StatusMsg = "already at oldest change"
		return nil
	}
	h.Items = restored

	visible := h.Visible()
	if idx := h.SelectedIndex(visible); idx < 0 {
		h.SelectClamped(visible, 0)
	}
	return h.syncCmd("undo", prev, restored)
}

func (h *Handler) redo() tea.Cmd {
	prev := todo.CloneAll(h.Items)
	restored, ok := h.History.Redo(h.Items)
	if !ok {
		h.StatusMsg = "already at newest change"
		return nil
	}
	h.Items = restored

	visible := h.Visible()
	if idx := h.SelectedIndex(visible); idx < 0 {
		h.SelectClamped(visible, 0)
	}
	return h.syncCmd("redo", prev, restored)
}

// clearAll wipes the whole list, both locally and in the store.
func (h *Handler) clearAll() tea.Cmd {
	if len(h.Items) == 0 {
		return nil
	}
	pre := h.snapshot()
	h.Items = nil
	h.SelectedID = ""
	return h.clearCmd(pre)
}
