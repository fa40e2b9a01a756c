package logic

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tvim/tvim/internal/auth"
	"github.com/tvim/tvim/internal/config"
	"github.com/tvim/tvim/internal/store"
	"github.com/tvim/tvim/internal/tui/state"
)

// newTestHandler builds a handler over an in-memory store, returning
// the store so tests can assert on persisted state or inject faults.
func newTestHandler(t *testing.T) (*Handler, *store.Memory) {
	t.Helper()
	mem := store.NewMemory()
	s := state.New(config.DefaultConfig(), mem, auth.Session{})
	return NewHandler(s), mem
}

// press feeds one key to the handler and synchronously resolves any
// command it produces, feeding resulting messages back in. Tick-based
// commands are never driven here.
func press(t *testing.T, h *Handler, key string) {
	t.Helper()
	drive(t, h, h.Update(keyMsg(key)))
}

func drive(t *testing.T, h *Handler, cmd tea.Cmd) {
	t.Helper()
	for cmd != nil {
		msg := cmd()
		if msg == nil {
			return
		}
		if _, quit := msg.(tea.QuitMsg); quit {
			return
		}
		cmd = h.Update(msg)
	}
}

func keyMsg(key string) tea.KeyMsg {
	switch key {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEscape}
	case "ctrl+r":
		return tea.KeyMsg{Type: tea.KeyCtrlR}
	case "ctrl+a":
		return tea.KeyMsg{Type: tea.KeyCtrlA}
	case "delete":
		return tea.KeyMsg{Type: tea.KeyDelete}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
}

// typeCommand submits a ":" command line through the command mode path.
func typeCommand(t *testing.T, h *Handler, line string) {
	t.Helper()
	press(t, h, ":")
	for _, r := range line {
		press(t, h, string(r))
	}
	press(t, h, "enter")
}

// seed adds items through the normal insertion path so the handler
// and the store stay consistent.
func seed(t *testing.T, h *Handler, texts ...string) {
	t.Helper()
	for _, text := range texts {
		typeCommand(t, h, "add "+text)
	}
}

func itemTexts(h *Handler) []string {
	out := make([]string, len(h.Items))
	for i := range h.Items {
		out[i] = h.Items[i].Text
	}
	return out
}

func selectedText(h *Handler) string {
	it := h.ItemByID(h.SelectedID)
	if it == nil {
		return ""
	}
	return it.Text
}
