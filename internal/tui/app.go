package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"github.com/stockdeck/stockdeck/internal/config"
	"github.com/stockdeck/stockdeck/internal/logging"
)

// App wraps the bubbletea program running the shell.
type App struct {
	program *tea.Program
}

// New creates the shell application. The global bubblezone manager is
// initialized here, before any view renders a clickable region.
func New(cfg *config.Config, logger *logging.Logger) *App {
	zone.NewGlobal()

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.TUI.MouseEnabled {
		opts = append(opts, tea.WithMouseCellMotion())
	}

	return &App{
		program: tea.NewProgram(NewModel(cfg, logger), opts...),
	}
}

// Run blocks until the user quits or the program fails.
func (a *App) Run() error {
	defer zone.Close()
	_, err := a.program.Run()
	return err
}
