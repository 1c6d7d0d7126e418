package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/avoronin/go-user-gate/internal/adapter"
	"github.com/avoronin/go-user-gate/internal/logger"
)

// TUI is the terminal client. It talks to the server exclusively through a
// [adapter.ServerAdapter], which carries the session cookie between calls.
type TUI struct {
	server adapter.ServerAdapter
	logger *logger.Logger
}

func New(server adapter.ServerAdapter, logger *logger.Logger) (*TUI, error) {
	return &TUI{server: server, logger: logger}, nil
}

// Run drives the whole client: welcome screen, sign-up and sign-in forms,
// and the profile screen. It returns when the user quits.
func (t *TUI) Run(ctx context.Context) error {
	model := newAppModel(ctx, t.server)
	_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}
