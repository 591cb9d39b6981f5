package ui

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/lucasvidela/jornada/internal/event"
)

// categoryColor maps an event category to its terminal color.
func categoryColor(c event.Category) *color.Color {
	switch c {
	case event.CategoryTask:
		return colorTask
	case event.CategoryHabit:
		return colorHabit
	case event.CategoryBuffer:
		return colorBuffer
	default:
		return colorBusy
	}
}

func categoryTag(c event.Category) string {
	switch c {
	case event.CategoryTask:
		return "[T]"
	case event.CategoryHabit:
		return "[H]"
	case event.CategoryBuffer:
		return "[·]"
	default:
		return "[B]"
	}
}

// PrintBlockRow prints a single event row. Buffers are rendered muted and
// long titles are truncated to the terminal width.
func PrintBlockRow(e event.Event) {
	col := categoryColor(e.Category)

	// Overhead: "  HH:MM-HH:MM  [X]  " = 20 chars.
	maxTitle := termWidth() - 20
	title := e.Title
	if maxTitle > 3 && len(title) > maxTitle {
		title = title[:maxTitle-3] + "..."
	}

	line := fmt.Sprintf("  %s-%s  %s  %s",
		e.Start.Format("15:04"), e.End.Format("15:04"),
		categoryTag(e.Category), title)
	fmt.Println(col.Sprint(line))
}

// PrintBlocks prints event rows sorted as given, with a trailing total line.
func PrintBlocks(events []event.Event) {
	totalMin := 0
	for _, e := range events {
		PrintBlockRow(e)
		if !e.IsBuffer() {
			totalMin += e.Duration()
		}
	}
	fmt.Println()
	fmt.Printf("%s\n", formatStats(fmt.Sprintf("Total: %s over %d block(s)",
		FormatDuration(totalMin), len(events))))
}

// FormatDuration formats minutes as a human-readable duration.
func FormatDuration(minutes int) string {
	if minutes == 0 {
		return "0m"
	}
	hours := minutes / 60
	mins := minutes % 60
	if hours == 0 {
		return fmt.Sprintf("%dm", mins)
	}
	if mins == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dh%dm", hours, mins)
}

// PlanText renders a plan as plain text, one block per line.
// Used for clipboard export.
func PlanText(day string, events []event.Event) string {
	var sb strings.Builder
	sb.WriteString(day)
	sb.WriteString("\n")
	for _, e := range events {
		fmt.Fprintf(&sb, "%s-%s  %s\n",
			e.Start.Format("15:04"), e.End.Format("15:04"), e.Title)
	}
	return sb.String()
}

func derefEvents(events []*event.Event) []event.Event {
	out := make([]event.Event, 0, len(events))
	for _, e := range events {
		if e != nil {
			out = append(out, *e)
		}
	}
	return out
}

// busyOnly filters out planner-produced categories, leaving committed entries.
func busyOnly(events []event.Event) []event.Event {
	out := make([]event.Event, 0, len(events))
	for _, e := range events {
		if e.Category == event.CategoryBusy {
			out = append(out, e)
		}
	}
	return out
}
