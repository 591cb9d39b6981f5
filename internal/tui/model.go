package tui

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lucasvidela/jornada/internal/config"
	"github.com/lucasvidela/jornada/internal/dateutil"
	"github.com/lucasvidela/jornada/internal/event"
	"github.com/lucasvidela/jornada/internal/planner"
)

// Model is the day-view TUI model.
type Model struct {
	repo   event.Repository
	config *config.Config
	styles *Styles

	day    time.Time
	events []event.Event // stored events plus any in-memory plan, sorted

	cursor  int
	loading bool
	spinner spinner.Model
	status  string
	err     error

	width  int
	height int
}

// NewModel creates the day-view model for today.
func NewModel(repo event.Repository, cfg *config.Config) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot

	return Model{
		repo:    repo,
		config:  cfg,
		styles:  NewStyles(cfg.UI.Theme),
		day:     dateutil.TruncateToDay(time.Now()),
		spinner: s,
		loading: true,
	}
}

// Messages.
type dayLoadedMsg struct {
	events []event.Event
	err    error
}

type plannedMsg struct {
	events  []event.Event
	summary string
}

type statusMsg string

// Init loads the current day.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.loadDayCmd())
}

// loadDayCmd fetches the day's events from the repository.
func (m Model) loadDayCmd() tea.Cmd {
	repo, day := m.repo, m.day
	return func() tea.Msg {
		stored, err := repo.ListEventsByDay(context.Background(), day)
		if err != nil {
			return dayLoadedMsg{err: err}
		}
		events := make([]event.Event, 0, len(stored))
		for _, e := range stored {
			if e != nil {
				events = append(events, *e)
			}
		}
		sortByStart(events)
		return dayLoadedMsg{events: events}
	}
}

// replanCmd runs the planning engine over the day's committed events.
// The result is held in memory only; saving stays a CLI concern.
func (m Model) replanCmd() tea.Cmd {
	day := m.day
	existing := make([]event.Event, 0, len(m.events))
	for _, e := range m.events {
		if e.Category == event.CategoryBusy {
			existing = append(existing, e)
		}
	}
	return func() tea.Msg {
		result := planner.New(nil).PlanDay(day, existing, planner.DefaultTasks(), planner.DefaultHabits())
		all := make([]event.Event, 0, len(existing)+len(result.Blocks))
		all = append(all, existing...)
		all = append(all, result.Blocks...)
		sortByStart(all)
		return plannedMsg{events: all, summary: result.Summary}
	}
}

// copyCmd puts the visible day on the clipboard.
func (m Model) copyCmd() tea.Cmd {
	text := dayText(m.day, m.events)
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return statusMsg(fmt.Sprintf("copy failed: %v", err))
		}
		return statusMsg("copied to clipboard")
	}
}

func sortByStart(events []event.Event) {
	sort.Slice(events, func(i, j int) bool { return events[i].Start.Before(events[j].Start) })
}

// dayText renders the day as plain text for the clipboard.
func dayText(day time.Time, events []event.Event) string {
	var sb strings.Builder
	sb.WriteString(day.Format("2006-01-02"))
	sb.WriteString("\n")
	for _, e := range events {
		fmt.Fprintf(&sb, "%s-%s  %s\n",
			e.Start.Format("15:04"), e.End.Format("15:04"), e.Title)
	}
	return sb.String()
}
