package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case dayLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.events = msg.events
		m.clampCursor()
		return m, nil

	case plannedMsg:
		m.loading = false
		m.events = msg.events
		m.status = msg.summary
		m.clampCursor()
		return m, nil

	case statusMsg:
		m.status = string(msg)
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "j", "down":
		if m.cursor < len(m.events)-1 {
			m.cursor++
		}
		return m, nil

	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case "h", "left":
		m.day = m.day.AddDate(0, 0, -1)
		m.cursor = 0
		m.loading = true
		m.status = ""
		return m, tea.Batch(m.spinner.Tick, m.loadDayCmd())

	case "l", "right":
		m.day = m.day.AddDate(0, 0, 1)
		m.cursor = 0
		m.loading = true
		m.status = ""
		return m, tea.Batch(m.spinner.Tick, m.loadDayCmd())

	case "p":
		m.loading = true
		m.status = ""
		return m, tea.Batch(m.spinner.Tick, m.replanCmd())

	case "c":
		return m, m.copyCmd()

	case "r":
		m.loading = true
		m.status = ""
		return m, tea.Batch(m.spinner.Tick, m.loadDayCmd())
	}

	return m, nil
}

func (m *Model) clampCursor() {
	if m.cursor >= len(m.events) {
		m.cursor = len(m.events) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}
