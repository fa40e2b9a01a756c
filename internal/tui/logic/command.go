package logic

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tvim/tvim/internal/tui/state"
	"github.com/tvim/tvim/internal/todo"
)

// cmdKind enumerates the command language. Parsing produces a closed
// variant so execution can switch exhaustively.
type cmdKind int

const (
	cmdNone cmdKind = iota
	cmdAdd
	cmdAddDue
	cmdSetDue
	cmdRemoveDue
	cmdTag
	cmdUntag
	cmdFilter
	cmdClearFilter
	cmdToggleCompleted
	cmdSort
	cmdHelp
	cmdClearAll
	cmdQuit
	cmdUnknown
)

type command struct {
	kind cmdKind
	text string
	tag  string
	due  *time.Time
	sort todo.SortMode
	name string
}

// parseCommandAt turns a submitted buffer into a command. Invalid
// arguments collapse to cmdNone so execution is a clean no-op.
func parseCommandAt(line string, now time.Time) command {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return command{kind: cmdNone}
	}
	name, args := fields[0], fields[1:]

	switch name {
	case "add":
		text := strings.Join(args, " ")
		if text == "" {
			return command{kind: cmdNone}
		}
		return command{kind: cmdAdd, text: text}

	case "due":
		due, rest := takeDate(args, now)
		text := strings.Join(rest, " ")
		if due == nil || text == "" {
			return command{kind: cmdNone}
		}
		return command{kind: cmdAddDue, text: text, due: due}

	case "set-due":
		due, rest := takeDate(args, now)
		if due == nil || len(rest) != 0 {
			return command{kind: cmdNone}
		}
		return command{kind: cmdSetDue, due: due}

	case "remove-due":
		return command{kind: cmdRemoveDue}

	case "tag", "untag":
		if len(args) != 1 {
			return command{kind: cmdNone}
		}
		kind := cmdTag
		if name == "untag" {
			kind = cmdUntag
		}
		return command{kind: kind, tag: args[0]}

	case "filter":
		if len(args) == 0 {
			return command{kind: cmdClearFilter}
		}
		if len(args) != 1 {
			return command{kind: cmdNone}
		}
		return command{kind: cmdFilter, tag: args[0]}

	case "clear-filter":
		return command{kind: cmdClearFilter}

	case "toggle-completed":
		return command{kind: cmdToggleCompleted}

	case "sort-none":
		return command{kind: cmdSort, sort: todo.SortNone}
	case "sort-newest":
		return command{kind: cmdSort, sort: todo.SortNewest}
	case "sort-oldest":
		return command{kind: cmdSort, sort: todo.SortOldest}
	case "sort-due-earliest":
		return command{kind: cmdSort, sort: todo.SortDueEarliest}
	case "sort-due-latest":
		return command{kind: cmdSort, sort: todo.SortDueLatest}

	case "help", "h":
		return command{kind: cmdHelp}

	case "clear-all":
		return command{kind: cmdClearAll}

	case "q", "quit":
		return command{kind: cmdQuit}
	}

	return command{kind: cmdUnknown, name: name}
}

// takeDate consumes a leading date token from args. Phrases like
// "next week" span two tokens, so a one-token parse is tried first
// and then a two-token one.
func takeDate(args []string, now time.Time) (*time.Time, []string) {
	if len(args) == 0 {
		return nil, args
	}
	if d, ok := todo.ParseDueDateAt(args[0], now); ok {
		return &d, args[1:]
	}
	if len(args) >= 2 {
		if d, ok := todo.ParseDueDateAt(args[0]+" "+args[1], now); ok {
			return &d, args[2:]
		}
	}
	return nil, args
}

func (h *Handler) handleCommandKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		h.leaveCommand()
		return nil
	case "enter":
		line := h.CommandInput.Value()
		h.leaveCommand()
		return h.execute(parseCommandAt(line, time.Now()))
	}

	var cmd tea.Cmd
	h.CommandInput, cmd = h.CommandInput.Update(msg)
	return cmd
}

func (h *Handler) leaveCommand() {
	h.Mode = state.ModeNormal
	h.CommandInput.SetValue("")
	h.CommandInput.Blur()
}

func (h *Handler) execute(c command) tea.Cmd {
	switch c.kind {
	case cmdNone:
		return nil

	case cmdAdd:
		return h.insertNewItem(c.text, nil, false)

	case cmdAddDue:
		return h.insertNewItem(c.text, c.due, false)

	case cmdSetDue:
		it := h.ItemByID(h.SelectedID)
		if it == nil {
			return nil
		}
		pre := h.snapshot()
		d := *c.due
		it.DueDate = &d
		return h.updateCmd(pre, keyedPatch{id: it.ID, patch: todo.Patch{DueDate: c.due}})

	case cmdRemoveDue:
		it := h.ItemByID(h.SelectedID)
		if it == nil || it.DueDate == nil {
			return nil
		}
		pre := h.snapshot()
		it.DueDate = nil
		return h.updateCmd(pre, keyedPatch{id: it.ID, patch: todo.Patch{ClearDue: true}})

	case cmdTag:
		it := h.ItemByID(h.SelectedID)
		if it == nil || todo.HasTag(it.Tags, c.tag) {
			return nil
		}
		pre := h.snapshot()
		it.Tags = todo.AddTag(it.Tags, c.tag)
		tags := append([]string(nil), it.Tags...)
		return h.updateCmd(pre, keyedPatch{id: it.ID, patch: todo.Patch{Tags: &tags}})

	case cmdUntag:
		it := h.ItemByID(h.SelectedID)
		if it == nil || !todo.HasTag(it.Tags, c.tag) {
			return nil
		}
		pre := h.snapshot()
		it.Tags = todo.RemoveTag(it.Tags, c.tag)
		tags := append([]string(nil), it.Tags...)
		return h.updateCmd(pre, keyedPatch{id: it.ID, patch: todo.Patch{Tags: &tags}})

	case cmdFilter:
		h.View.FilterTags = []string{c.tag}
		h.reclampAfterProjectionChange()
		return nil

	case cmdClearFilter:
		h.View.FilterTags = nil
		h.reclampAfterProjectionChange()
		return nil

	case cmdToggleCompleted:
		h.View.ShowCompleted = !h.View.ShowCompleted
		h.reclampAfterProjectionChange()
		return nil

	case cmdSort:
		h.View.Sort = c.sort
		h.reclampAfterProjectionChange()
		return nil

	case cmdHelp:
		h.ShowHelp = true
		return nil

	case cmdClearAll:
		return h.clearAll()

	case cmdQuit:
		return tea.Quit

	case cmdUnknown:
		h.StatusMsg = "unknown command: " + c.name
		return nil
	}
	return nil
}

// reclampAfterProjectionChange keeps the selection on a visible item
// when a filter or sort change hides the current one.
func (h *Handler) reclampAfterProjectionChange() {
	visible := h.Visible()
	if idx := h.SelectedIndex(visible); idx < 0 {
		h.SelectClamped(visible, 0)
	}
}
