// Package tui wires state, logic and rendering into a Bubble Tea model.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tvim/tvim/internal/auth"
	"github.com/tvim/tvim/internal/config"
	"github.com/tvim/tvim/internal/store"
	"github.com/tvim/tvim/internal/tui/logic"
	"github.com/tvim/tvim/internal/tui/state"
	"github.com/tvim/tvim/internal/tui/ui"
)

// App is the main Bubble Tea model.
type App struct {
	state    *state.State
	handler  *logic.Handler
	renderer *ui.Renderer
}

// NewApp assembles the model. migrateFrom, when non-nil, is a local
// store whose items are moved into st on startup.
func NewApp(cfg *config.Config, st store.Store, sess auth.Session, migrateFrom store.Store) *App {
	s := state.New(cfg, st, sess)
	s.MigrateFrom = migrateFrom
	return &App{
		state:    s,
		handler:  logic.NewHandler(s),
		renderer: ui.NewRenderer(s),
	}
}

func (a *App) Init() tea.Cmd {
	return a.handler.Init()
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return a, a.handler.Update(msg)
}

func (a *App) View() string {
	return a.renderer.View()
}
