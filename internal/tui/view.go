package tui

import (
	"fmt"
	"strings"
)

const helpLine = "j/k move · h/l day · p plan · c copy · r reload · q quit"

// View renders the day as a timeline list.
func (m Model) View() string {
	var sb strings.Builder

	sb.WriteString(m.styles.Header.Render(m.day.Format("Monday, January 2, 2006")))
	sb.WriteString("\n")

	switch {
	case m.err != nil:
		sb.WriteString(m.styles.Error.Render(fmt.Sprintf("error: %v", m.err)))
		sb.WriteString("\n")
	case m.loading:
		sb.WriteString(m.spinner.View())
		sb.WriteString(" loading…\n")
	case len(m.events) == 0:
		sb.WriteString(m.styles.Help.Render("No blocks. Press p to plan this day."))
		sb.WriteString("\n")
	default:
		for i, e := range m.events {
			marker := "  "
			if i == m.cursor {
				marker = "> "
			}
			line := fmt.Sprintf("%s%s-%s  %s",
				marker, e.Start.Format("15:04"), e.End.Format("15:04"), e.Title)
			styled := m.styles.blockStyle(e.Category).Render(line)
			if i == m.cursor {
				styled = m.styles.Cursor.Render(line)
			}
			sb.WriteString(styled)
			sb.WriteString("\n")
		}
	}

	sb.WriteString("\n")
	if m.status != "" {
		sb.WriteString(m.styles.Status.Render(m.status))
		sb.WriteString("\n")
	}
	sb.WriteString(m.styles.Help.Render(helpLine))
	sb.WriteString("\n")

	return sb.String()
}
