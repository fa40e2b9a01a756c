package store

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/tvim/tvim/internal/todo"
)

// MigrateLocal submits every locally-held item to the destination store
// and clears the local store on success. Called once when a previously
// unauthenticated user signs in; a partial failure leaves the local store
// untouched so the migration can be retried next start.
func MigrateLocal(local, dst Store) (int, error) {
	items, err := local.ListAll()
	if err != nil {
		return 0, fmt.Errorf("failed to read local store: %w", err)
	}
	if len(items) == 0 {
		return 0, nil
	}

	for _, it := range items {
		created, err := dst.Create(toDraft(it))
		if err != nil {
			return 0, fmt.Errorf("failed to migrate item %q: %w", it.Text, err)
		}
		// Drafts carry no completion state, so finished items need a
		// follow-up patch.
		if it.Completed {
			completed := true
			if _, err := dst.Update(created.ID, todo.Patch{Completed: &completed}); err != nil {
				return 0, fmt.Errorf("failed to migrate item %q: %w", it.Text, err)
			}
		}
	}

	if err := local.ClearAll(); err != nil {
		return 0, fmt.Errorf("failed to clear local store after migration: %w", err)
	}

	log.Info().Int("items", len(items)).Msg("migrated local items to backend")
	return len(items), nil
}

func toDraft(it todo.Item) todo.Draft {
	return todo.Draft{
		Text:    it.Text,
		DueDate: it.DueDate,
		Tags:    it.Tags,
		SortKey: it.SortKey,
	}
}
