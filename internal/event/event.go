// Package event defines the calendar event domain type for jornada.
package event

import (
	"errors"
	"time"
)

// Validation errors.
var (
	ErrEmptyTitle     = errors.New("title cannot be empty")
	ErrEndBeforeStart = errors.New("end time must be after start time")
	ErrEventNotFound  = errors.New("event not found")
)

// Category classifies an event block.
type Category string

const (
	// CategoryBusy is a committed calendar entry the planner must work around.
	CategoryBusy Category = "busy"
	// CategoryTask is a planner-produced task work chunk.
	CategoryTask Category = "task"
	// CategoryBuffer is a short synthetic transition block around a task chunk.
	// Renderers must treat buffers as display-only padding and exclude them
	// from task-time aggregates.
	CategoryBuffer Category = "buffer"
	// CategoryHabit is a planner-produced habit block.
	CategoryHabit Category = "habit"
)

// Valid returns true if the category is a known value.
func (c Category) Valid() bool {
	switch c {
	case CategoryBusy, CategoryTask, CategoryBuffer, CategoryHabit:
		return true
	default:
		return false
	}
}

// Display colors per category, hex strings.
const (
	ColorBusy   = "#6b7280"
	ColorTask   = "#2f6feb"
	ColorHabit  = "#22c55e"
	ColorBuffer = "#9aa3ab"
)

// Event represents a single calendar block, either a committed entry or a
// block produced by the planner.
type Event struct {
	ID          int64
	Title       string
	Description string
	Start       time.Time
	End         time.Time
	Color       string // hex, e.g. "#2f6feb"
	Category    Category
	SeriesID    string // empty for one-off events; shared across a series
	CreatedAt   time.Time
}

// New creates a committed busy event with validation.
func New(title, description string, start, end time.Time) (*Event, error) {
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if !end.After(start) {
		return nil, ErrEndBeforeStart
	}
	return &Event{
		Title:       title,
		Description: description,
		Start:       start,
		End:         end,
		Color:       ColorBusy,
		Category:    CategoryBusy,
		CreatedAt:   time.Now(),
	}, nil
}

// Duration returns the event length in whole minutes, clamped at 0.
func (e Event) Duration() int {
	m := int(e.End.Sub(e.Start).Minutes())
	if m < 0 {
		return 0
	}
	return m
}

// OnDate reports whether the event's date range includes the given day.
func (e Event) OnDate(day time.Time) bool {
	d := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	startDay := time.Date(e.Start.Year(), e.Start.Month(), e.Start.Day(), 0, 0, 0, 0, e.Start.Location())
	endDay := time.Date(e.End.Year(), e.End.Month(), e.End.Day(), 0, 0, 0, 0, e.End.Location())
	return !startDay.After(d) && !endDay.Before(d)
}

// OverlapsWith reports whether two events overlap in time.
// Intervals are half-open [start, end).
func (e Event) OverlapsWith(other Event) bool {
	return e.Start.Before(other.End) && other.Start.Before(e.End)
}

// OverlapMinutes returns the overlap between two events in whole minutes.
func (e Event) OverlapMinutes(other Event) int {
	start := e.Start
	if other.Start.After(start) {
		start = other.Start
	}
	end := e.End
	if other.End.Before(end) {
		end = other.End
	}
	m := int(end.Sub(start).Minutes())
	if m < 0 {
		return 0
	}
	return m
}

// IsBuffer returns true for synthetic buffer blocks.
func (e Event) IsBuffer() bool {
	return e.Category == CategoryBuffer
}
