package logic

import (
	"time"

	"github.com/tvim/tvim/internal/todo"
)

type errMsg struct{ err error }

type statusMsg string

// itemsLoadedMsg replaces the whole list, typically at startup or
// after an undo/redo reconciliation.
type itemsLoadedMsg struct {
	items    []todo.Item
	migrated int
}

// itemCreatedMsg swaps a locally assigned temporary ID for the one
// the store assigned.
type itemCreatedMsg struct {
	tempID string
	item   todo.Item
}

// itemsUpdatedMsg carries the store's copies of updated items so the
// optimistic state can be reconciled with what was actually saved.
type itemsUpdatedMsg []todo.Item

type itemDeletedMsg struct{ count int }

type clearedMsg struct{}

// syncedMsg replaces the list after an undo/redo reconciliation with
// the store, carrying any fresh identities from recreated items.
type syncedMsg []todo.Item

// persistFailedMsg rolls the optimistic change back. pre is the
// pre-dispatch snapshot for plain mutations; undo/redo failures are
// rolled back through the history instead and carry op "undo"/"redo".
type persistFailedMsg struct {
	pre []todo.Item
	op  string
	err error
}

type checkDueMsg time.Time
