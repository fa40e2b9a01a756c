package logic

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gen2brain/beeep"
	"github.com/rs/zerolog/log"

	"github.com/tvim/tvim/internal/todo"
)

func checkDueCmd() tea.Cmd {
	return tea.Tick(time.Minute, func(t time.Time) tea.Msg {
		return checkDueMsg(t)
	})
}

// handleCheckDue fires a desktop notification for each open item the
// first time its due day arrives. Each item notifies at most once per
// session.
func (h *Handler) handleCheckDue(now time.Time) tea.Cmd {
	cmds := []tea.Cmd{checkDueCmd()}

	for i := range h.Items {
		it := h.Items[i]
		if it.Completed || it.DueDate == nil || h.NotifiedIDs[it.ID] {
			continue
		}
		if !todo.IsDueToday(*it.DueDate, now) && !todo.IsOverdue(*it.DueDate, now) {
			continue
		}
		h.NotifiedIDs[it.ID] = true

		text := it.Text
		cmds = append(cmds, func() tea.Msg {
			if err := beeep.Notify("tvim", "Due: "+text, ""); err != nil {
				log.Debug().Err(err).Msg("notification failed")
			}
			return nil
		})
	}

	return tea.Batch(cmds...)
}
