package logic

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tvim/tvim/internal/tui/state"
	"github.com/tvim/tvim/internal/todo"
)

// startEdit enters insert mode on the selected item, pre-filling the
// buffer with its text. caret 0 puts the cursor at the start, -1 at
// the end. With nothing selected this becomes new-item entry.
func (h *Handler) startEdit(visible []todo.Item, caret int) {
	h.Mode = state.ModeInsert
	h.EditingID = ""
	h.InsertAbove = false
	h.Input.SetValue("")

	idx := h.SelectedIndex(visible)
	if idx >= 0 {
		it := visible[idx]
		h.EditingID = it.ID
		h.Input.SetValue(it.Text)
		if caret == 0 {
			h.Input.CursorStart()
		} else {
			h.Input.CursorEnd()
		}
	}
	h.Input.Focus()
}

// startOpen enters insert mode with an empty buffer; submission
// always creates a new item, above or below the selection.
func (h *Handler) startOpen(above bool) {
	h.Mode = state.ModeInsert
	h.EditingID = ""
	h.InsertAbove = above
	h.Input.SetValue("")
	h.Input.Focus()
}

func (h *Handler) handleInsertKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		h.leaveInsert()
		return nil
	case "enter":
		return h.submitInsert()
	}

	var cmd tea.Cmd
	h.Input, cmd = h.Input.Update(msg)
	return cmd
}

func (h *Handler) leaveInsert() {
	h.Mode = state.ModeNormal
	h.EditingID = ""
	h.InsertAbove = false
	h.Input.SetValue("")
	h.Input.Blur()
}

func (h *Handler) submitInsert() tea.Cmd {
	text := strings.TrimSpace(h.Input.Value())
	editingID := h.EditingID
	above := h.InsertAbove
	h.leaveInsert()

	// Whitespace-only submissions commit nothing.
	if text == "" {
		return nil
	}

	if editingID != "" {
		return h.commitEdit(editingID, text)
	}
	return h.insertNewItem(text, nil, above)
}

// commitEdit rewrites the item's text in place. Inline #tags are
// stripped from the text and added to the item's tag set.
func (h *Handler) commitEdit(id string, raw string) tea.Cmd {
	it := h.ItemByID(id)
	if it == nil {
		return nil
	}

	text, extracted := todo.ExtractTags(raw)
	if text == "" {
		return nil
	}
	tags := append([]string(nil), it.Tags...)
	for _, tag := range extracted {
		tags = todo.AddTag(tags, tag)
	}

	pre := h.snapshot()
	it.Text = text
	it.Tags = tags
	return h.updateCmd(pre, keyedPatch{id: id, patch: todo.Patch{Text: &text, Tags: &tags}})
}
