package store

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tvim/tvim/internal/todo"
)

// Memory is a volatile in-process Store. It backs tests and the migration
// path's dry runs; it behaves like Remote including server-side ID and
// CreatedAt assignment.
type Memory struct {
	mu    sync.Mutex
	items []todo.Item

	// FailNext makes the next n mutations fail with the given error,
	// for exercising rollback paths in tests.
	FailNext int
	FailErr  error
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) fail() error {
	if m.FailNext > 0 {
		m.FailNext--
		if m.FailErr != nil {
			return m.FailErr
		}
		return errors.New("injected failure")
	}
	return nil
}

// ListAll implements Store.
func (m *Memory) ListAll() ([]todo.Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return todo.CloneAll(m.items), nil
}

// Create implements Store.
func (m *Memory) Create(draft todo.Draft) (todo.Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.fail(); err != nil {
		return todo.Item{}, err
	}

	it := todo.Item{
		ID:        uuid.NewString(),
		Text:      draft.Text,
		CreatedAt: time.Now(),
		Tags:      append([]string(nil), draft.Tags...),
		SortKey:   draft.SortKey,
	}
	if draft.DueDate != nil {
		d := *draft.DueDate
		it.DueDate = &d
	}
	m.items = append(m.items, it)
	return it.Clone(), nil
}

// Update implements Store.
func (m *Memory) Update(id string, patch todo.Patch) (todo.Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.fail(); err != nil {
		return todo.Item{}, err
	}

	idx := todo.IndexOf(m.items, id)
	if idx < 0 {
		return todo.Item{}, ErrNotFound
	}
	patch.Apply(&m.items[idx])
	return m.items[idx].Clone(), nil
}

// Delete implements Store.
func (m *Memory) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.fail(); err != nil {
		return err
	}

	idx := todo.IndexOf(m.items, id)
	if idx < 0 {
		return ErrNotFound
	}
	m.items = append(m.items[:idx], m.items[idx+1:]...)
	return nil
}

// ClearAll implements Store.
func (m *Memory) ClearAll() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.fail(); err != nil {
		return err
	}
	m.items = nil
	return nil
}
