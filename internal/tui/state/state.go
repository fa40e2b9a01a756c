package state

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/tvim/tvim/internal/auth"
	"github.com/tvim/tvim/internal/config"
	"github.com/tvim/tvim/internal/store"
	"github.com/tvim/tvim/internal/todo"
)

// Mode represents the current editing mode.
type Mode int

const (
	ModeNormal Mode = iota
	ModeInsert
	ModeCommand
	ModeVisual
)

func (m Mode) String() string {
	switch m {
	case ModeInsert:
		return "INSERT"
	case ModeCommand:
		return "COMMAND"
	case ModeVisual:
		return "VISUAL"
	default:
		return "NORMAL"
	}
}

// Clipboard is the single yank/paste slot. Yanking replaces its
// contents; pasting does not consume them.
type Clipboard struct {
	Text    string
	DueDate *time.Time
	Tags    []string
	Filled  bool
}

// DeleteConfirm tracks the double-press delete confirmation window.
// The first request arms it; a second request for an overlapping
// target within the window executes the delete.
type DeleteConfirm struct {
	Pending  bool
	Targets  []string
	Deadline time.Time

	// Now is swappable for tests.
	Now func() time.Time
}

// ConfirmWindow is how long a pending delete stays armed.
const ConfirmWindow = 500 * time.Millisecond

// Request arms the confirmation for the given item IDs, or reports
// that the delete should execute because a pending confirmation for
// at least one of the same items is still live.
func (dc *DeleteConfirm) Request(ids []string) bool {
	now := time.Now
	if dc.Now != nil {
		now = dc.Now
	}
	t := now()

	if dc.Pending && t.Before(dc.Deadline) && overlaps(dc.Targets, ids) {
		dc.Pending = false
		dc.Targets = nil
		return true
	}

	dc.Pending = true
	dc.Targets = append([]string(nil), ids...)
	dc.Deadline = t.Add(ConfirmWindow)
	return false
}

// Cancel clears any pending confirmation.
func (dc *DeleteConfirm) Cancel() {
	dc.Pending = false
	dc.Targets = nil
}

func overlaps(a, b []string) bool {
	for _, x := range a {
		for _, y := range b {
			if x == y {
				return true
			}
		}
	}
	return false
}

// State holds the application state.
// All fields are exported to allow access from logic and ui packages.
type State struct {
	// Dependencies
	Store   store.Store
	Config  *config.Config
	Session auth.Session

	// MigrateFrom, when set, is drained into Store on startup. Used
	// to move the local fallback list onto the account once a session
	// is authenticated.
	MigrateFrom store.Store

	// Data. Items is the canonical list in sort-key order; the view
	// the user sees is derived from it through View.
	Items []todo.Item
	View  todo.View

	// Selection is tracked by item ID so it survives re-projection.
	SelectedID string

	// Mode state
	Mode Mode

	// Visual mode anchor and head, both item IDs.
	VisualStart string
	VisualEnd   string

	// Insert mode: when EditingID is set the buffer edits an existing
	// item in place, otherwise submission creates a new one.
	Input       textinput.Model
	EditingID   string
	InsertAbove bool

	// Command mode
	CommandInput textinput.Model

	// History and clipboard
	History   todo.History
	Clipboard Clipboard

	// Delete confirmation
	Confirm DeleteConfirm

	// UI state
	Loading   bool
	Pending   int // in-flight persistence requests
	Err       error
	StatusMsg string
	Width     int
	Height    int
	ShowHelp  bool

	// Components
	Spinner spinner.Model

	// Key handling
	KeyState *KeyState

	// Due notification bookkeeping
	NotifiedIDs map[string]bool
}

// New constructs the initial state.
func New(cfg *config.Config, st store.Store, sess auth.Session) *State {
	input := textinput.New()
	input.Placeholder = "task text, #tag to tag"
	input.CharLimit = 500

	cmd := textinput.New()
	cmd.Prompt = ":"
	cmd.CharLimit = 200

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return &State{
		Store:        st,
		Config:       cfg,
		Session:      sess,
		View:         todo.View{ShowCompleted: cfg.UI.ShowCompleted},
		Input:        input,
		CommandInput: cmd,
		Spinner:      sp,
		KeyState:     &KeyState{},
		NotifiedIDs:  make(map[string]bool),
	}
}

// Visible returns the projected list the user currently sees.
func (s *State) Visible() []todo.Item {
	return s.View.Apply(s.Items)
}

// SelectedIndex returns the selection's index in the given projected
// list, or -1 when the selection is not visible.
func (s *State) SelectedIndex(visible []todo.Item) int {
	return todo.IndexOf(visible, s.SelectedID)
}

// SelectClamped moves the selection to the given index of the
// projected list, clamping to its bounds. An empty list clears the
// selection.
func (s *State) SelectClamped(visible []todo.Item, idx int) {
	idx = todo.ClampIndex(visible, idx)
	if idx < 0 {
		s.SelectedID = ""
		return
	}
	s.SelectedID = visible[idx].ID
}

// ItemByID returns a pointer into Items, or nil.
func (s *State) ItemByID(id string) *todo.Item {
	for i := range s.Items {
		if s.Items[i].ID == id {
			return &s.Items[i]
		}
	}
	return nil
}

// VisualRange returns the visible items between the visual anchor and
// head, inclusive, in display order. Returns nil outside visual mode
// or when neither endpoint is visible.
func (s *State) VisualRange(visible []todo.Item) []todo.Item {
	if s.Mode != ModeVisual {
		return nil
	}
	a := todo.IndexOf(visible, s.VisualStart)
	b := todo.IndexOf(visible, s.VisualEnd)
	if a < 0 || b < 0 {
		return nil
	}
	if a > b {
		a, b = b, a
	}
	return visible[a : b+1]
}

// InVisualRange reports whether the item at idx falls inside the
// active visual range.
func (s *State) InVisualRange(visible []todo.Item, idx int) bool {
	if s.Mode != ModeVisual {
		return false
	}
	a := todo.IndexOf(visible, s.VisualStart)
	b := todo.IndexOf(visible, s.VisualEnd)
	if a < 0 || b < 0 {
		return false
	}
	if a > b {
		a, b = b, a
	}
	return idx >= a && idx <= b
}
