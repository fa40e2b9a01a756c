package logic

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"

	"github.com/tvim/tvim/internal/tui/state"
	"github.com/tvim/tvim/internal/todo"
)

// Handler owns all message handling for the application. It embeds
// the shared state so handlers read and write it directly.
type Handler struct {
	*state.State
}

func NewHandler(s *state.State) *Handler {
	return &Handler{State: s}
}

func (h *Handler) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return h.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		h.Width = msg.Width
		h.Height = msg.Height
		return nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		h.Spinner, cmd = h.Spinner.Update(msg)
		return cmd

	case checkDueMsg:
		return h.handleCheckDue(time.Time(msg))

	case errMsg:
		h.Loading = false
		h.Err = msg.err
		return nil

	case statusMsg:
		h.StatusMsg = string(msg)
		return nil

	case itemsLoadedMsg:
		return h.handleItemsLoaded(msg)

	case itemCreatedMsg:
		h.Pending--
		h.adoptCreated(msg.tempID, msg.item)
		return nil

	case itemsUpdatedMsg:
		h.Pending--
		for _, it := range msg {
			h.reconcileUpdated(it)
		}
		return nil

	case itemDeletedMsg, clearedMsg:
		h.Pending--
		return nil

	case syncedMsg:
		h.Pending--
		h.Items = msg
		visible := h.Visible()
		if idx := h.SelectedIndex(visible); idx < 0 {
			h.SelectClamped(visible, 0)
		}
		return nil

	case persistFailedMsg:
		return h.handlePersistFailed(msg)
	}

	return nil
}

func (h *Handler) handleKeyMsg(msg tea.KeyMsg) tea.Cmd {
	if h.ShowHelp {
		// Any key dismisses the help overlay.
		h.ShowHelp = false
		return nil
	}

	switch h.Mode {
	case state.ModeInsert:
		return h.handleInsertKey(msg)
	case state.ModeCommand:
		return h.handleCommandKey(msg)
	case state.ModeVisual:
		return h.handleVisualKey(msg)
	default:
		return h.handleNormalKey(msg)
	}
}

func (h *Handler) handleItemsLoaded(msg itemsLoadedMsg) tea.Cmd {
	h.Loading = false
	h.Items = msg.items
	if msg.migrated > 0 {
		h.StatusMsg = "migrated local items to your account"
	}

	visible := h.Visible()
	if idx := h.SelectedIndex(visible); idx < 0 {
		h.SelectClamped(visible, 0)
	}
	return nil
}

// adoptCreated swaps an optimistic item's temporary identity for the
// one the store assigned, keeping its position in the list.
func (h *Handler) adoptCreated(tempID string, created todo.Item) {
	it := h.ItemByID(tempID)
	if it == nil {
		return
	}
	it.ID = created.ID
	it.CreatedAt = created.CreatedAt
	if h.SelectedID == tempID {
		h.SelectedID = created.ID
	}
	if h.VisualStart == tempID {
		h.VisualStart = created.ID
	}
	if h.VisualEnd == tempID {
		h.VisualEnd = created.ID
	}
}

// reconcileUpdated replaces the local copy with the store's returned
// item, keeping list position.
func (h *Handler) reconcileUpdated(updated todo.Item) {
	it := h.ItemByID(updated.ID)
	if it == nil {
		return
	}
	*it = updated
}

func (h *Handler) handlePersistFailed(msg persistFailedMsg) tea.Cmd {
	h.Pending--
	log.Warn().Err(msg.err).Str("op", msg.op).Msg("persist failed, rolling back")

	switch msg.op {
	case "undo":
		if restored, ok := h.History.Redo(h.Items); ok {
			h.Items = restored
		}
	case "redo":
		if restored, ok := h.History.Undo(h.Items); ok {
			h.Items = restored
		}
	default:
		h.Items = msg.pre
		h.History.DropLast()
	}

	h.StatusMsg = "change not saved, reverted"

	visible := h.Visible()
	if idx := h.SelectedIndex(visible); idx < 0 {
		h.SelectClamped(visible, 0)
	}
	return nil
}
