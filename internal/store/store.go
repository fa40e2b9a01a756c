// Package store abstracts persistence for task items. The TUI talks only
// to the Store interface; the remote backend and the local SQLite fallback
// are interchangeable implementations, selected by the auth session.
package store

import (
	"errors"

	"github.com/tvim/tvim/internal/auth"
	"github.com/tvim/tvim/internal/todo"
)

// ErrNotFound is returned by Update/Delete when the item does not exist.
var ErrNotFound = errors.New("item not found")

// Store is the CRUD-with-ordering contract the editor core consumes.
type Store interface {
	// ListAll fetches the full current collection.
	ListAll() ([]todo.Item, error)

	// Create persists a new item and returns it with an assigned ID and
	// CreatedAt.
	Create(draft todo.Draft) (todo.Item, error)

	// Update applies a partial update and returns the updated item.
	Update(id string, patch todo.Patch) (todo.Item, error)

	// Delete removes an item.
	Delete(id string) error

	// ClearAll removes every item.
	ClearAll() error
}

// Select picks the store for the session: the remote backend when
// authenticated, otherwise the local fallback.
func Select(sess auth.Session, remote, local Store) Store {
	if sess.Authenticated {
		return remote
	}
	return local
}
