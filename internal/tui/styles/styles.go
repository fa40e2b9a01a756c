// Package styles provides Lip Gloss styles for the TUI.
package styles

import "github.com/charmbracelet/lipgloss"

// Terminal-adaptive colors that work in both light and dark terminals.
var (
	// Subtle is a muted color for secondary text
	Subtle = lipgloss.AdaptiveColor{Light: "#666666", Dark: "#999999"}

	// Highlight is the accent color for selected items
	Highlight = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}

	ErrorColor   = lipgloss.AdaptiveColor{Light: "#FF0000", Dark: "#FF6666"}
	SuccessColor = lipgloss.AdaptiveColor{Light: "#00AA00", Dark: "#66FF66"}
	WarningColor = lipgloss.AdaptiveColor{Light: "#FFAA00", Dark: "#FFCC66"}
)

// Base styles
var (
	// App is the base style for the entire application
	App = lipgloss.NewStyle().
		Padding(1, 2)

	// Title is the style for the list header
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Highlight)
)

// Item styles
var (
	// Item is the base style for a list row
	Item = lipgloss.NewStyle().
		PaddingLeft(2)

	// ItemSelected is the style for the row under the cursor
	ItemSelected = lipgloss.NewStyle().
			PaddingLeft(1).
			BorderLeft(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderLeftForeground(Highlight).
			Bold(true).
			Background(lipgloss.AdaptiveColor{Light: "#EEEEEE", Dark: "#2A2A2A"})

	// ItemVisual marks rows inside the active visual range
	ItemVisual = lipgloss.NewStyle().
			PaddingLeft(2).
			Background(lipgloss.AdaptiveColor{Light: "#DDD6F3", Dark: "#3A3158"})

	// ItemCompleted dims finished items
	ItemCompleted = lipgloss.NewStyle().
			PaddingLeft(2).
			Foreground(Subtle).
			Strikethrough(true)

	LineNumber = lipgloss.NewStyle().
			Foreground(Subtle).
			Width(4).
			Align(lipgloss.Right).
			MarginRight(1)

	DueSoon    = lipgloss.NewStyle().Foreground(WarningColor)
	DueOverdue = lipgloss.NewStyle().Foreground(ErrorColor)
	DueLater   = lipgloss.NewStyle().Foreground(Subtle)

	Tag = lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "#296FDF", Dark: "#6CA0F0"})
)

// Status bar styles
var (
	StatusBar = lipgloss.NewStyle().
			Foreground(Subtle)

	StatusMode = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(Highlight)

	StatusModeInsert = StatusMode.
				Background(SuccessColor).
				Foreground(lipgloss.Color("#000000"))

	StatusModeVisual = StatusMode.
				Background(WarningColor).
				Foreground(lipgloss.Color("#000000"))

	StatusError = lipgloss.NewStyle().
			Foreground(ErrorColor)

	StatusNotice = lipgloss.NewStyle().
			Foreground(WarningColor)
)

// Command line styles
var (
	// CommandPrompt is the style for the ":" prompt.
	CommandPrompt = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFCC00")).
			Bold(true)

	CommandInput = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF"))
)

// Help overlay styles
var (
	HelpBox = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Highlight).
		Padding(1, 2)

	HelpKey = lipgloss.NewStyle().
		Bold(true).
		Foreground(Highlight).
		Width(18)

	HelpDesc = lipgloss.NewStyle().
			Foreground(Subtle)

	HelpSection = lipgloss.NewStyle().
			Bold(true).
			Foreground(WarningColor)
)
