package planner

import (
	"fmt"
	"time"

	"github.com/lucasvidela/jornada/internal/event"
)

// Planner plans a single day. It holds no state besides the clock; every
// PlanDay call is independent and safe to run concurrently with others.
type Planner struct {
	clock Clock
}

// New creates a Planner. A nil clock falls back to the system clock.
func New(clock Clock) *Planner {
	if clock == nil {
		clock = SystemClock()
	}
	return &Planner{clock: clock}
}

// PlanResult is the outcome of a single planning run.
type PlanResult struct {
	Day         time.Time
	Blocks      []event.Event // task chunks, buffers, habit blocks, in placement order
	TaskMinutes int           // non-buffer task minutes placed
	HabitBlocks int           // habit blocks placed
	Summary     string
}

// PlanDay plans the given day:
//
//  1. Compute free windows from the existing busy blocks.
//  2. Carve tasks into those windows (with pre/post buffers).
//  3. Recompute free windows over existing plus the new task blocks.
//  4. Place habits into the remaining windows.
//
// The task and habit pools are taken exactly as given; an empty pool simply
// plans nothing for that pass. "Now" is captured once per call so urgency and
// earliness scoring stay consistent throughout the run. The result is
// deterministic for fixed inputs and a fixed clock.
func (p *Planner) PlanDay(day time.Time, existing []event.Event, tasks []Task, habits []Habit) *PlanResult {
	now := p.clock.Now()

	free := FreeWindows(day, existing, MinBlockMin)
	taskBlocks := scheduleTasksIntoWindows(free, tasks, now)

	busy := make([]event.Event, 0, len(existing)+len(taskBlocks))
	busy = append(busy, existing...)
	busy = append(busy, taskBlocks...)
	freeAfterTasks := FreeWindows(day, busy, MinBlockMin)

	habitBlocks := scheduleHabits(freeAfterTasks, habits)

	all := make([]event.Event, 0, len(taskBlocks)+len(habitBlocks))
	all = append(all, taskBlocks...)
	all = append(all, habitBlocks...)

	taskMin := 0
	for _, b := range taskBlocks {
		if !b.IsBuffer() {
			taskMin += b.Duration()
		}
	}

	return &PlanResult{
		Day:         day,
		Blocks:      all,
		TaskMinutes: taskMin,
		HabitBlocks: len(habitBlocks),
		Summary: fmt.Sprintf("Planned %d task min and %d habit block(s) for %s.",
			taskMin, len(habitBlocks), day.Format("2006-01-02")),
	}
}

// DefaultTasks returns a sample task pool for callers that have none.
func DefaultTasks() []Task {
	study := NewTask("Deep study block")
	study.EstimateMin = 90
	study.Priority = 5
	study.Morning = true

	review := NewTask("Review notes")
	review.EstimateMin = 45
	review.Priority = 4
	review.Afternoon = true
	review.MaxChunkMin = 45

	admin := NewTask("Email and admin batch")
	admin.EstimateMin = 30
	admin.Priority = 2
	admin.SplitOK = false

	return []Task{study, review, admin}
}

// DefaultHabits returns a sample habit pool for callers that have none.
func DefaultHabits() []Habit {
	walk := NewHabit("Walk")
	walk.Anchor = AnchorAfterLunch
	walk.Priority = 4

	read := NewHabit("Read")
	read.TargetMin = 25
	read.Anchor = AnchorEvening

	breathe := NewHabit("Breathing")
	breathe.TargetMin = 15
	breathe.Anchor = AnchorMorning

	return []Habit{walk, read, breathe}
}
