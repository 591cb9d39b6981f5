// Package planner implements jornada's day-planning engine.
//
// Given a day's committed events, a pool of tasks and a pool of habits, the
// engine carves the tasks and habits into the day's unoccupied time and
// returns a conflict-free set of planned blocks. Placement is greedy and
// best-effort: tasks that do not fit are left partially or fully unplaced.
package planner

import (
	"time"
)

// Canonical planning bounds. The engine always plans inside a fixed
// 06:00-22:00 local window; callers cannot move it.
const (
	dayStartHour = 6
	dayEndHour   = 22

	// MinBlockMin is the minimum usable length for a free window and the
	// minimum effort scheduled for any task.
	MinBlockMin = 15

	preBufferMin  = 5
	postBufferMin = 10

	defaultEstimateMin = 30
	defaultMaxChunkMin = 120
	defaultPriority    = 3
	defaultHabitMin    = 20
)

// Clock supplies the current time to the engine. Urgency and earliness
// scoring depend on "now"; injecting the clock keeps planning deterministic
// under test.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns a Clock backed by time.Now.
func SystemClock() Clock { return systemClock{} }

// Task is a unit of work to place into the day.
type Task struct {
	ID          string    // optional external id
	Title       string    // human title
	EstimateMin int       // total effort in minutes; may be split
	Priority    int       // 1..5, 5 highest
	Deadline    time.Time // zero means no deadline
	Morning     bool      // soft bias toward morning placement
	Afternoon   bool      // soft bias toward afternoon placement
	SplitOK     bool      // may be split across windows
	MaxChunkMin int       // cap for a single contiguous chunk
	Notes       string    // free-form, not used in scoring
}

// NewTask returns a Task with the engine defaults: 30 minutes of effort,
// priority 3, splitting allowed, 120-minute chunk cap.
func NewTask(title string) Task {
	return Task{
		Title:       title,
		EstimateMin: defaultEstimateMin,
		Priority:    defaultPriority,
		SplitOK:     true,
		MaxChunkMin: defaultMaxChunkMin,
	}
}

// normalize fills zero-valued fields with the engine defaults and clamps
// priority into 1..5.
func (t Task) normalize() Task {
	if t.EstimateMin <= 0 {
		t.EstimateMin = defaultEstimateMin
	}
	if t.MaxChunkMin <= 0 {
		t.MaxChunkMin = defaultMaxChunkMin
	}
	if t.Priority <= 0 {
		t.Priority = defaultPriority
	}
	if t.Priority > 5 {
		t.Priority = 5
	}
	return t
}

// Habit anchor bands.
const (
	AnchorMorning    = "morning"
	AnchorAfterLunch = "after-lunch"
	AnchorEvening    = "evening"
)

// Habit is a small recurring block, placed at most once per planning run.
type Habit struct {
	Title     string
	TargetMin int    // desired minutes per day
	Anchor    string // soft time-of-day bias; empty means none
	Priority  int    // 1..5, 5 highest
}

// NewHabit returns a Habit with the engine defaults: 20 minutes, priority 3.
func NewHabit(title string) Habit {
	return Habit{Title: title, TargetMin: defaultHabitMin, Priority: defaultPriority}
}

func (h Habit) normalize() Habit {
	if h.TargetMin <= 0 {
		h.TargetMin = defaultHabitMin
	}
	if h.Priority <= 0 {
		h.Priority = defaultPriority
	}
	if h.Priority > 5 {
		h.Priority = 5
	}
	return h
}

// Slot is a free time window inside the planning day.
type Slot struct {
	Start time.Time
	End   time.Time
}

// Minutes returns the slot length in whole minutes, clamped at 0.
func (s Slot) Minutes() int {
	return minutesBetween(s.Start, s.End)
}

// minutesBetween returns whole minutes between s and e, clamped at 0.
func minutesBetween(s, e time.Time) int {
	m := int(e.Sub(s).Minutes())
	if m < 0 {
		return 0
	}
	return m
}

// dayBounds returns the canonical planning window for the given day.
func dayBounds(day time.Time) (time.Time, time.Time) {
	loc := day.Location()
	start := time.Date(day.Year(), day.Month(), day.Day(), dayStartHour, 0, 0, 0, loc)
	end := time.Date(day.Year(), day.Month(), day.Day(), dayEndHour, 0, 0, 0, loc)
	return start, end
}
