package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/lucasvidela/jornada/internal/event"
)

// Styles holds the lipgloss styles for the day view.
type Styles struct {
	Header lipgloss.Style
	Busy   lipgloss.Style
	Task   lipgloss.Style
	Habit  lipgloss.Style
	Buffer lipgloss.Style
	Cursor lipgloss.Style
	Status lipgloss.Style
	Help   lipgloss.Style
	Error  lipgloss.Style
}

// NewStyles builds the style set for the given theme name.
func NewStyles(theme string) *Styles {
	fg := lipgloss.Color("#e5e7eb")
	muted := lipgloss.Color("#6b7280")
	if theme == "light" {
		fg = lipgloss.Color("#1f2937")
		muted = lipgloss.Color("#9ca3af")
	}

	return &Styles{
		Header: lipgloss.NewStyle().Bold(true).Foreground(fg).MarginBottom(1),
		Busy:   lipgloss.NewStyle().Foreground(lipgloss.Color(event.ColorBusy)),
		Task:   lipgloss.NewStyle().Foreground(lipgloss.Color(event.ColorTask)).Bold(true),
		Habit:  lipgloss.NewStyle().Foreground(lipgloss.Color(event.ColorHabit)),
		Buffer: lipgloss.NewStyle().Foreground(lipgloss.Color(event.ColorBuffer)).Faint(true),
		Cursor: lipgloss.NewStyle().Bold(true).Foreground(fg),
		Status: lipgloss.NewStyle().Foreground(lipgloss.Color("#eab308")),
		Help:   lipgloss.NewStyle().Foreground(muted),
		Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("#ef4444")),
	}
}

// blockStyle returns the style for an event's category.
func (s *Styles) blockStyle(c event.Category) lipgloss.Style {
	switch c {
	case event.CategoryTask:
		return s.Task
	case event.CategoryHabit:
		return s.Habit
	case event.CategoryBuffer:
		return s.Buffer
	default:
		return s.Busy
	}
}
