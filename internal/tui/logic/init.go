package logic

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"

	"github.com/tvim/tvim/internal/store"
	"github.com/tvim/tvim/internal/todo"
)

// Init implements tea.Model.
func (h *Handler) Init() tea.Cmd {
	h.Loading = true
	return tea.Batch(
		h.Spinner.Tick,
		h.loadItems(),
		checkDueCmd(),
	)
}

// loadItems hydrates the list, running the one-time migration of the
// local fallback store first when one is due. Sort keys are repaired
// on the way in so the ordering invariant holds from the first frame.
func (h *Handler) loadItems() tea.Cmd {
	st := h.Store
	from := h.MigrateFrom
	return func() tea.Msg {
		migrated := 0
		if from != nil {
			n, err := store.MigrateLocal(from, st)
			if err != nil {
				// The local list stays intact; try again next start.
				log.Warn().Err(err).Msg("local migration failed")
			} else {
				migrated = n
			}
		}

		items, err := st.ListAll()
		if err != nil {
			return errMsg{err}
		}

		todo.CanonicalOrder(items)
		if todo.RepairSortKeys(items) {
			for i := range items {
				key := items[i].SortKey
				if _, err := st.Update(items[i].ID, todo.Patch{SortKey: &key}); err != nil {
					log.Warn().Err(err).Str("id", items[i].ID).Msg("sort key repair not saved")
					break
				}
			}
		}

		return itemsLoadedMsg{items: items, migrated: migrated}
	}
}
