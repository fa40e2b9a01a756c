package logic

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tvim/tvim/internal/tui/state"
	"github.com/tvim/tvim/internal/todo"
)

func (h *Handler) handleNormalKey(msg tea.KeyMsg) tea.Cmd {
	action, consumed := h.KeyState.HandleKey(msg)
	if !consumed || action == "" {
		return nil
	}

	visible := h.Visible()

	switch action {
	case "up":
		h.moveSelection(visible, -1)
	case "down":
		h.moveSelection(visible, 1)
	case "top":
		h.SelectClamped(visible, 0)
	case "bottom":
		h.SelectClamped(visible, len(visible)-1)

	case "toggle":
		if h.SelectedID != "" {
			return h.toggleItems([]string{h.SelectedID})
		}

	case "delete":
		if h.SelectedID != "" {
			return h.requestDelete([]string{h.SelectedID})
		}

	case "yank":
		h.yankSelected(visible)
	case "paste_below":
		return h.paste(true)
	case "paste_above":
		return h.paste(false)

	case "undo":
		return h.undo()
	case "redo":
		return h.redo()

	case "select_all":
		return h.toggleAllVisible(visible)

	case "move_down":
		return h.moveSelected(1)
	case "move_up":
		return h.moveSelected(-1)

	case "edit_start":
		h.startEdit(visible, 0)
	case "edit_end":
		h.startEdit(visible, -1)
	case "open_below":
		h.startOpen(false)
	case "open_above":
		h.startOpen(true)

	case "command":
		h.Mode = state.ModeCommand
		h.CommandInput.SetValue("")
		h.CommandInput.Focus()

	case "visual":
		if h.SelectedID != "" {
			h.Mode = state.ModeVisual
			h.VisualStart = h.SelectedID
			h.VisualEnd = h.SelectedID
		}

	case "help":
		h.ShowHelp = true

	case "cancel":
		h.Confirm.Cancel()
		h.StatusMsg = ""

	case "quit":
		return tea.Quit
	}

	return nil
}

// moveSelection steps the selection through the projected list,
// clamped with no wraparound.
func (h *Handler) moveSelection(visible []todo.Item, delta int) {
	if len(visible) == 0 {
		h.SelectedID = ""
		return
	}
	idx := h.SelectedIndex(visible)
	if idx < 0 {
		h.SelectClamped(visible, 0)
		return
	}
	h.SelectClamped(visible, idx+delta)
}
