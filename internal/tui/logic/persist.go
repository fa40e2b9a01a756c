package logic

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tvim/tvim/internal/store"
	"github.com/tvim/tvim/internal/todo"
)

// keyedPatch pairs an item ID with the partial update to persist.
type keyedPatch struct {
	id    string
	patch todo.Patch
}

// snapshot records the pre-mutation state in the history and returns
// an independent copy for the persistence rollback.
func (h *Handler) snapshot() []todo.Item {
	h.History.Push(h.Items)
	return todo.CloneAll(h.Items)
}

// persistCmd runs one logical store operation off the UI loop. A
// failure surfaces as persistFailedMsg carrying the rollback image.
func (h *Handler) persistCmd(pre []todo.Item, op string, fn func(store.Store) (tea.Msg, error)) tea.Cmd {
	h.Pending++
	st := h.Store
	return func() tea.Msg {
		msg, err := fn(st)
		if err != nil {
			return persistFailedMsg{pre: pre, op: op, err: err}
		}
		return msg
	}
}

// createCmd persists an optimistic insertion. extra carries sort-key
// updates for neighbors that were renumbered by the insertion.
func (h *Handler) createCmd(pre []todo.Item, tempID string, draft todo.Draft, extra []keyedPatch) tea.Cmd {
	return h.persistCmd(pre, "create", func(st store.Store) (tea.Msg, error) {
		created, err := st.Create(draft)
		if err != nil {
			return nil, err
		}
		for _, kp := range extra {
			if _, err := st.Update(kp.id, kp.patch); err != nil {
				return nil, err
			}
		}
		return itemCreatedMsg{tempID: tempID, item: created}, nil
	})
}

func (h *Handler) updateCmd(pre []todo.Item, patches ...keyedPatch) tea.Cmd {
	return h.persistCmd(pre, "update", func(st store.Store) (tea.Msg, error) {
		updated := make([]todo.Item, 0, len(patches))
		for _, kp := range patches {
			it, err := st.Update(kp.id, kp.patch)
			if err != nil {
				return nil, err
			}
			updated = append(updated, it)
		}
		return itemsUpdatedMsg(updated), nil
	})
}

func (h *Handler) deleteCmd(pre []todo.Item, ids []string) tea.Cmd {
	return h.persistCmd(pre, "delete", func(st store.Store) (tea.Msg, error) {
		count := 0
		for _, id := range ids {
			err := st.Delete(id)
			if errors.Is(err, store.ErrNotFound) {
				continue
			}
			if err != nil {
				return nil, err
			}
			count++
		}
		return itemDeletedMsg{count: count}, nil
	})
}

func (h *Handler) clearCmd(pre []todo.Item) tea.Cmd {
	return h.persistCmd(pre, "clear", func(st store.Store) (tea.Msg, error) {
		if err := st.ClearAll(); err != nil {
			return nil, err
		}
		return clearedMsg{}, nil
	})
}

// syncCmd reconciles the store with a restored history snapshot:
// missing items are recreated, changed ones updated, extras deleted.
// Recreated items come back with fresh store identities, so the
// returned list replaces the local one wholesale.
func (h *Handler) syncCmd(op string, prev, target []todo.Item) tea.Cmd {
	h.Pending++
	st := h.Store
	prevByID := make(map[string]todo.Item, len(prev))
	for _, it := range prev {
		prevByID[it.ID] = it
	}
	targetIDs := make(map[string]bool, len(target))
	for _, it := range target {
		targetIDs[it.ID] = true
	}
	// The snapshot doubles as live UI state, so the worker gets its
	// own copy.
	final := todo.CloneAll(target)

	return func() tea.Msg {
		for i := range final {
			old, exists := prevByID[final[i].ID]
			if !exists {
				created, err := st.Create(todo.Draft{
					Text:    final[i].Text,
					DueDate: final[i].DueDate,
					Tags:    final[i].Tags,
					SortKey: final[i].SortKey,
				})
				if err != nil {
					return persistFailedMsg{op: op, err: err}
				}
				if final[i].Completed {
					completed := true
					if _, err := st.Update(created.ID, todo.Patch{Completed: &completed}); err != nil {
						return persistFailedMsg{op: op, err: err}
					}
					created.Completed = true
				}
				final[i].ID = created.ID
				final[i].CreatedAt = created.CreatedAt
				continue
			}
			if old.Equal(final[i]) {
				continue
			}
			if _, err := st.Update(final[i].ID, fullPatch(final[i])); err != nil {
				return persistFailedMsg{op: op, err: err}
			}
		}
		for id := range prevByID {
			if targetIDs[id] {
				continue
			}
			if err := st.Delete(id); err != nil && !errors.Is(err, store.ErrNotFound) {
				return persistFailedMsg{op: op, err: err}
			}
		}
		return syncedMsg(final)
	}
}

// fullPatch expresses the whole mutable surface of an item as a patch.
func fullPatch(it todo.Item) todo.Patch {
	text := it.Text
	completed := it.Completed
	tags := append([]string(nil), it.Tags...)
	key := it.SortKey
	p := todo.Patch{
		Text:      &text,
		Completed: &completed,
		Tags:      &tags,
		SortKey:   &key,
	}
	if it.DueDate != nil {
		d := *it.DueDate
		p.DueDate = &d
	} else {
		p.ClearDue = true
	}
	return p
}

// keyChanges lists sort-key patches for every item whose key moved
// during a normalization pass. skip excludes the freshly inserted
// item, which is persisted through its create request instead.
func keyChanges(before map[string]int64, items []todo.Item, skip string) []keyedPatch {
	var out []keyedPatch
	for i := range items {
		it := items[i]
		if it.ID == skip {
			continue
		}
		if old, ok := before[it.ID]; ok && old != it.SortKey {
			key := it.SortKey
			out = append(out, keyedPatch{id: it.ID, patch: todo.Patch{SortKey: &key}})
		}
	}
	return out
}

func keyMap(items []todo.Item) map[string]int64 {
	m := make(map[string]int64, len(items))
	for i := range items {
		m[items[i].ID] = items[i].SortKey
	}
	return m
}
