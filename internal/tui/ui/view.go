// Package ui renders the application state to the terminal.
package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/tvim/tvim/internal/tui/state"
	"github.com/tvim/tvim/internal/tui/styles"
	"github.com/tvim/tvim/internal/todo"
)

type Renderer struct {
	*state.State
}

func NewRenderer(s *state.State) *Renderer {
	return &Renderer{State: s}
}

func (r *Renderer) View() string {
	if r.Width == 0 {
		return "Loading..."
	}

	if r.ShowHelp {
		return r.renderHelp()
	}

	var b strings.Builder

	b.WriteString(r.renderTitle())
	b.WriteString("\n\n")
	b.WriteString(r.renderList())
	b.WriteString("\n")
	b.WriteString(r.renderStatusBar())

	switch r.Mode {
	case state.ModeInsert:
		b.WriteString("\n")
		b.WriteString(r.Input.View())
	case state.ModeCommand:
		b.WriteString("\n")
		b.WriteString(styles.CommandPrompt.Render(":"))
		b.WriteString(styles.CommandInput.Render(r.CommandInput.Value()))
		b.WriteString("█")
	}

	return styles.App.Render(b.String())
}

func (r *Renderer) renderTitle() string {
	title := "tvim"
	where := "local"
	if r.Session.Authenticated {
		where = "synced"
	}
	return styles.Title.Render(title) + " " + styles.HelpDesc.Render(where)
}

func (r *Renderer) renderList() string {
	if r.Loading {
		return r.Spinner.View() + " Loading..."
	}

	visible := r.Visible()
	if len(visible) == 0 {
		if len(r.Items) > 0 {
			return styles.HelpDesc.Render("Nothing matches the current filter.")
		}
		return styles.HelpDesc.Render("No tasks. Press 'o' or use :add to create one.")
	}

	now := time.Now()
	selected := r.SelectedIndex(visible)

	var b strings.Builder
	for i, it := range visible {
		b.WriteString(styles.LineNumber.Render(fmt.Sprintf("%d", i+1)))
		b.WriteString(r.renderItem(it, now, i == selected, r.InVisualRange(visible, i)))
		if i < len(visible)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (r *Renderer) renderItem(it todo.Item, now time.Time, selected, inRange bool) string {
	check := "[ ]"
	if it.Completed {
		check = "[x]"
	}

	maxText := r.Width - 30
	if maxText < 10 {
		maxText = 10
	}
	text := runewidth.Truncate(it.Text, maxText, "…")

	line := check + " " + text

	if it.DueDate != nil {
		due := todo.FormatDueDate(*it.DueDate, now)
		dueStyle := styles.DueLater
		switch {
		case todo.IsOverdue(*it.DueDate, now):
			dueStyle = styles.DueOverdue
		case todo.IsDueToday(*it.DueDate, now):
			dueStyle = styles.DueSoon
		}
		line += "  " + dueStyle.Render(due)
	}
	for _, tag := range it.Tags {
		line += " " + styles.Tag.Render("#"+tag)
	}

	switch {
	case selected:
		return styles.ItemSelected.Render(line)
	case inRange:
		return styles.ItemVisual.Render(line)
	case it.Completed:
		return styles.ItemCompleted.Render(line)
	default:
		return styles.Item.Render(line)
	}
}

func (r *Renderer) renderStatusBar() string {
	mode := styles.StatusMode
	switch r.Mode {
	case state.ModeInsert:
		mode = styles.StatusModeInsert
	case state.ModeVisual:
		mode = styles.StatusModeVisual
	}
	parts := []string{mode.Render(r.Mode.String())}

	visible := r.Visible()
	done := 0
	for _, it := range r.Items {
		if it.Completed {
			done++
		}
	}
	parts = append(parts, styles.StatusBar.Render(
		fmt.Sprintf("%d/%d shown, %d done", len(visible), len(r.Items), done)))

	if r.State.View.Sort != todo.SortNone {
		parts = append(parts, styles.StatusBar.Render("sort:"+r.State.View.Sort.String()))
	}
	if len(r.State.View.FilterTags) > 0 {
		parts = append(parts, styles.StatusBar.Render("filter:#"+strings.Join(r.State.View.FilterTags, ",#")))
	}
	if r.State.View.ShowCompleted {
		parts = append(parts, styles.StatusBar.Render("done shown"))
	}

	if r.Pending > 0 {
		parts = append(parts, r.Spinner.View())
	}

	switch {
	case r.Err != nil:
		parts = append(parts, styles.StatusError.Render(r.Err.Error()))
	case r.StatusMsg != "":
		parts = append(parts, styles.StatusNotice.Render(r.StatusMsg))
	}

	return lipgloss.JoinHorizontal(lipgloss.Center, strings.Join(parts, "  "))
}

func (r *Renderer) renderHelp() string {
	var b strings.Builder
	b.WriteString(styles.Title.Render("tvim keys"))
	b.WriteString("\n\n")

	for _, row := range state.HelpItems() {
		key, desc := row[0], row[1]
		switch {
		case key == "" && desc == "":
			b.WriteString("\n")
		case desc == "":
			b.WriteString(styles.HelpSection.Render(key))
			b.WriteString("\n")
		default:
			b.WriteString(styles.HelpKey.Render(key))
			b.WriteString(styles.HelpDesc.Render(desc))
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")
	b.WriteString(styles.HelpDesc.Render("press any key to close"))

	return styles.HelpBox.Render(b.String())
}
