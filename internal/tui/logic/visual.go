package logic

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tvim/tvim/internal/tui/state"
	"github.com/tvim/tvim/internal/todo"
)

// handleVisualKey serves the restricted visual-mode key set: movement
// extends the range head, toggle and delete act on the whole range
// and drop back to normal mode.
func (h *Handler) handleVisualKey(msg tea.KeyMsg) tea.Cmd {
	visible := h.Visible()

	switch msg.String() {
	case "esc", "v":
		h.leaveVisual()
		return nil

	case "j", "down", "l":
		h.extendVisual(visible, 1)
	case "k", "up", "h":
		h.extendVisual(visible, -1)
	case "G":
		h.extendVisualTo(visible, len(visible)-1)
	case "g":
		// Single g jumps to the top here; no gg sequence in visual mode.
		h.extendVisualTo(visible, 0)

	case "x", " ", "enter":
		rng := h.VisualRange(visible)
		h.leaveVisual()
		return h.toggleItems(idsOf(rng))

	case "d", "D", "delete", "backspace":
		ids := idsOf(h.VisualRange(visible))
		if len(ids) == 0 {
			return nil
		}
		if !h.Confirm.Request(ids) {
			// First press arms; the range stays up until confirmed.
			h.StatusMsg = "press again to delete selection"
			return nil
		}
		h.StatusMsg = ""
		h.leaveVisual()
		return h.deleteItems(ids)

	case "y":
		rng := h.VisualRange(visible)
		if len(rng) > 0 {
			// Yank keeps the head item's content; the slot holds one item.
			h.SelectedID = rng[len(rng)-1].ID
			h.yankSelected(visible)
		}
		h.leaveVisual()

	case "q", "ctrl+c":
		return tea.Quit
	}

	return nil
}

func (h *Handler) leaveVisual() {
	h.Mode = state.ModeNormal
	h.VisualStart = ""
	h.VisualEnd = ""
}

// extendVisual moves the range head by delta, clamped, while the
// anchor stays put. The selection follows the head.
func (h *Handler) extendVisual(visible []todo.Item, delta int) {
	idx := todo.IndexOf(visible, h.VisualEnd)
	if idx < 0 {
		if len(visible) == 0 {
			return
		}
		idx = 0
	}
	h.extendVisualTo(visible, idx+delta)
}

func (h *Handler) extendVisualTo(visible []todo.Item, idx int) {
	idx = todo.ClampIndex(visible, idx)
	if idx < 0 {
		return
	}
	h.VisualEnd = visible[idx].ID
	h.SelectedID = h.VisualEnd
}

func idsOf(items []todo.Item) []string {
	out := make([]string, len(items))
	for i := range items {
		out[i] = items[i].ID
	}
	return out
}
