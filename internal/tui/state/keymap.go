package state

import tea "github.com/charmbracelet/bubbletea"

// KeyState tracks multi-key sequences (like 'gg' or 'dd' or 'yy').
type KeyState struct {
	WaitingG bool // Waiting for second 'g' in 'gg'
	WaitingD bool // Waiting for second 'd' in 'dd'
	WaitingY bool // Waiting for second 'y' in 'yy'
}

// HandleKey processes a normal-mode key press and returns the action
// to take. Returns the action name and whether the key was consumed.
func (ks *KeyState) HandleKey(msg tea.KeyMsg) (string, bool) {
	key := msg.String()

	// Handle 'gg' sequence (go to top)
	if ks.WaitingG {
		ks.WaitingG = false
		if key == "g" {
			return "top", true
		}
		// If not 'g', process the key normally
	}

	// Handle 'dd' sequence (delete)
	if ks.WaitingD {
		ks.WaitingD = false
		if key == "d" {
			return "delete", true
		}
	}

	// Handle 'yy' sequence (yank)
	if ks.WaitingY {
		ks.WaitingY = false
		if key == "y" {
			return "yank", true
		}
	}

	// Multi-key sequence starts
	switch key {
	case "g":
		ks.WaitingG = true
		return "", true
	case "d":
		ks.WaitingD = true
		return "", true
	case "y":
		ks.WaitingY = true
		return "", true
	}

	// Single key mappings
	switch key {
	case "k", "up":
		return "up", true
	case "j", "down":
		return "down", true
	case "h":
		return "up", true
	case "l":
		return "down", true
	case "G":
		return "bottom", true
	case "i":
		return "edit_start", true
	case "I":
		return "edit_start", true
	case "a":
		return "edit_end", true
	case "A":
		return "edit_end", true
	case "o":
		return "open_below", true
	case "O":
		return "open_above", true
	case ":":
		return "command", true
	case "v", "V":
		return "visual", true
	case "x", " ", "enter":
		return "toggle", true
	case "D", "delete", "backspace":
		return "delete", true
	case "p":
		return "paste_below", true
	case "P":
		return "paste_above", true
	case "u":
		return "undo", true
	case "ctrl+r":
		return "redo", true
	case "ctrl+a":
		return "select_all", true
	case "J":
		return "move_down", true
	case "K":
		return "move_up", true
	case "?":
		return "help", true
	case "q", "ctrl+c":
		return "quit", true
	case "esc":
		return "cancel", true
	}

	return "", false
}

// Reset clears any pending multi-key sequences.
func (ks *KeyState) Reset() {
	ks.WaitingG = false
	ks.WaitingD = false
	ks.WaitingY = false
}

// HelpItems returns key-description pairs for the help overlay.
func HelpItems() [][]string {
	return [][]string{
		{"Navigation", ""},
		{"j/k", "Move down/up"},
		{"gg/G", "Go to top/bottom"},
		{"", ""},
		{"Editing", ""},
		{"i/a", "Edit selected item"},
		{"o/O", "New item below/above"},
		{"x/space", "Toggle completed"},
		{"dd", "Delete (press twice)"},
		{"yy", "Yank item"},
		{"p/P", "Paste below/above"},
		{"J/K", "Move item down/up"},
		{"u / ctrl+r", "Undo / redo"},
		{"ctrl+a", "Select all (visual)"},
		{"", ""},
		{"Modes", ""},
		{"v", "Visual mode"},
		{":", "Command mode"},
		{"esc", "Back to normal"},
		{"", ""},
		{"Commands", ""},
		{":add <text>", "Add a task"},
		{":due <date> <text>", "Add with due date"},
		{":set-due <date>", "Set due date"},
		{":remove-due", "Clear due date"},
		{":tag/:untag <t>", "Add/remove a tag"},
		{":filter <tag>", "Filter by tag"},
		{":clear-filter", "Clear tag filter"},
		{":toggle-completed", "Show/hide done"},
		{":sort-newest|oldest|due-earliest|due-latest|none", "Sort order"},
		{":clear-all", "Delete everything"},
		{":q", "Quit"},
		{"", ""},
		{"?", "Toggle this help"},
		{"q", "Quit"},
	}
}
