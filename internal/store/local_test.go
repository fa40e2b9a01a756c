package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tvim/tvim/internal/todo"
)

func newTestLocal(t *testing.T) *Local {
	t.Helper()
	l, err := OpenLocal(filepath.Join(t.TempDir(), "todos.db"))
	require.NoError(t, err)
	t.Cleanup(func() { l.Close() })
	return l
}

func TestLocalCreateAndList(t *testing.T) {
	l := newTestLocal(t)

	due := time.Date(2024, 1, 15, 0, 0, 0, 0, time.Local)
	created, err := l.Create(todo.Draft{
		Text:    "buy milk",
		DueDate: &due,
		Tags:    []string{"errand", "home"},
		SortKey: 1000,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	items, err := l.ListAll()
	require.NoError(t, err)
	require.Len(t, items, 1)

	got := items[0]
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "buy milk", got.Text)
	assert.False(t, got.Completed)
	require.NotNil(t, got.DueDate)
	assert.True(t, got.DueDate.Equal(due))
	assert.Equal(t, []string{"errand", "home"}, got.Tags)
	assert.Equal(t, int64(1000), got.SortKey)
}

func TestLocalListOrder(t *testing.T) {
	l := newTestLocal(t)

	for i, text := range []string{"third", "first", "second"} {
		keys := []int64{3000, 1000, 2000}
		_, err := l.Create(todo.Draft{Text: text, SortKey: keys[i]})
		require.NoError(t, err)
	}

	items, err := l.ListAll()
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "first", items[0].Text)
	assert.Equal(t, "second", items[1].Text)
	assert.Equal(t, "third", items[2].Text)
}

func TestLocalUpdate(t *testing.T) {
	l := newTestLocal(t)

	created, err := l.Create(todo.Draft{Text: "task", SortKey: 1000})
	require.NoError(t, err)

	completed := true
	due := time.Date(2024, 3, 1, 0, 0, 0, 0, time.Local)
	tags := []string{"work"}
	updated, err := l.Update(created.ID, todo.Patch{
		Completed: &completed,
		DueDate:   &due,
		Tags:      &tags,
	})
	require.NoError(t, err)
	assert.True(t, updated.Completed)
	require.NotNil(t, updated.DueDate)
	assert.Equal(t, []string{"work"}, updated.Tags)

	// ClearDue removes the date again.
	updated, err = l.Update(created.ID, todo.Patch{ClearDue: true})
	require.NoError(t, err)
	assert.Nil(t, updated.DueDate)

	// Round-trips through the database.
	items, err := l.ListAll()
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.True(t, items[0].Completed)
	assert.Nil(t, items[0].DueDate)
}

func TestLocalUpdateNotFound(t *testing.T) {
	l := newTestLocal(t)

	_, err := l.Update("missing", todo.Patch{})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLocalDelete(t *testing.T) {
	l := newTestLocal(t)

	created, err := l.Create(todo.Draft{Text: "task", SortKey: 1000})
	require.NoError(t, err)

	require.NoError(t, l.Delete(created.ID))
	assert.ErrorIs(t, l.Delete(created.ID), ErrNotFound)

	items, err := l.ListAll()
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestLocalClearAll(t *testing.T) {
	l := newTestLocal(t)

	for i := 0; i < 3; i++ {
		_, err := l.Create(todo.Draft{Text: "task", SortKey: int64(i+1) * 1000})
		require.NoError(t, err)
	}

	require.NoError(t, l.ClearAll())

	items, err := l.ListAll()
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestLocalPersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todos.db")

	l, err := OpenLocal(path)
	require.NoError(t, err)
	_, err = l.Create(todo.Draft{Text: "sticky", SortKey: 1000})
	require.NoError(t, err)
	require.NoError(t, l.Close())

	l, err = OpenLocal(path)
	require.NoError(t, err)
	defer l.Close()

	items, err := l.ListAll()
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "sticky", items[0].Text)
}
