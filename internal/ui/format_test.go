package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/lucasvidela/jornada/internal/event"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{0, "0m"},
		{45, "45m"},
		{60, "1h"},
		{90, "1h30m"},
		{135, "2h15m"},
	}
	for _, tt := range tests {
		if got := FormatDuration(tt.minutes); got != tt.want {
			t.Errorf("FormatDuration(%d) = %q, want %q", tt.minutes, got, tt.want)
		}
	}
}

func TestPlanText(t *testing.T) {
	start := time.Date(2025, 3, 10, 6, 0, 0, 0, time.Local)
	events := []event.Event{
		{Title: "🔵 Thesis", Start: start, End: start.Add(time.Hour), Category: event.CategoryTask},
		{Title: "Buffer", Start: start.Add(time.Hour), End: start.Add(70 * time.Minute), Category: event.CategoryBuffer},
	}

	got := PlanText("2025-03-10", events)
	want := "2025-03-10\n06:00-07:00  🔵 Thesis\n07:00-07:10  Buffer\n"
	if got != want {
		t.Errorf("PlanText = %q, want %q", got, want)
	}
}

func TestBusyOnly(t *testing.T) {
	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.Local)
	events := []event.Event{
		{Title: "Meeting", Start: start, End: start.Add(time.Hour), Category: event.CategoryBusy},
		{Title: "🔵 Chunk", Start: start.Add(time.Hour), End: start.Add(2 * time.Hour), Category: event.CategoryTask},
		{Title: "Buffer", Start: start.Add(2 * time.Hour), End: start.Add(2*time.Hour + 10*time.Minute), Category: event.CategoryBuffer},
		{Title: "🟢 Walk", Start: start.Add(4 * time.Hour), End: start.Add(4*time.Hour + 20*time.Minute), Category: event.CategoryHabit},
	}

	got := busyOnly(events)
	if len(got) != 1 || got[0].Title != "Meeting" {
		t.Errorf("busyOnly = %+v, want only the meeting", got)
	}
}

func TestCategoryTag(t *testing.T) {
	tests := []struct {
		cat  event.Category
		want string
	}{
		{event.CategoryBusy, "[B]"},
		{event.CategoryTask, "[T]"},
		{event.CategoryHabit, "[H]"},
		{event.CategoryBuffer, "[·]"},
	}
	for _, tt := range tests {
		if got := categoryTag(tt.cat); got != tt.want {
			t.Errorf("categoryTag(%q) = %q, want %q", tt.cat, got, tt.want)
		}
	}
}

func TestDerefEvents_SkipsNil(t *testing.T) {
	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.Local)
	in := []*event.Event{
		{Title: "A", Start: start, End: start.Add(time.Hour)},
		nil,
		{Title: "B", Start: start.Add(time.Hour), End: start.Add(2 * time.Hour)},
	}
	got := derefEvents(in)
	if len(got) != 2 || got[0].Title != "A" || got[1].Title != "B" {
		t.Errorf("derefEvents = %+v", got)
	}
}

func TestPlanText_ContainsAllBlocks(t *testing.T) {
	start := time.Date(2025, 3, 10, 13, 0, 0, 0, time.Local)
	events := []event.Event{
		{Title: "🟢 Walk", Start: start, End: start.Add(20 * time.Minute), Category: event.CategoryHabit},
	}
	got := PlanText("2025-03-10", events)
	if !strings.Contains(got, "🟢 Walk") {
		t.Errorf("plan text missing habit block: %q", got)
	}
}
