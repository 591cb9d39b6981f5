// Package tui provides the terminal day view for jornada.
package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lucasvidela/jornada/internal/config"
	"github.com/lucasvidela/jornada/internal/event"
)

// Run starts the TUI day view.
func Run(repo event.Repository, cfg *config.Config) error {
	m := NewModel(repo, cfg)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}
