package planner

import (
	"math"
	"time"

	"github.com/lucasvidela/jornada/internal/event"
)

// scheduleHabits places at most one block per habit into the given windows.
// Scoring mildly prefers longer windows, applies the habit's anchor band as a
// soft bonus/penalty, and adds normalized priority. The habit's full target
// duration is placed even when it exceeds the chosen window; the placed span
// is consumed from the window so later habits cannot overlap it.
func scheduleHabits(windows []Slot, habits []Habit) []event.Event {
	var out []event.Event

	pool := make([]Slot, len(windows))
	copy(pool, windows)

	for _, h := range habits {
		h = h.normalize()

		bestIdx := -1
		best := math.Inf(-1)
		for i, w := range pool {
			if sc := habitScore(w, h); sc > best {
				best = sc
				bestIdx = i
			}
		}
		if bestIdx < 0 {
			continue
		}

		s := pool[bestIdx].Start
		e := s.Add(time.Duration(h.TargetMin) * time.Minute)
		out = append(out, habitBlock(h, s, e))

		pool[bestIdx].Start = e
		if !pool[bestIdx].Start.Before(pool[bestIdx].End) {
			pool = append(pool[:bestIdx], pool[bestIdx+1:]...)
		}
	}

	return out
}

func habitScore(w Slot, h Habit) float64 {
	startH := w.Start.Hour()

	sc := 0.2 * float64(w.Minutes()) / 60.0
	switch h.Anchor {
	case AnchorMorning:
		if startH <= 11 {
			sc += 1.0
		} else {
			sc -= 0.2
		}
	case AnchorAfterLunch:
		if startH >= 12 && startH <= 15 {
			sc += 1.0
		} else {
			sc -= 0.2
		}
	case AnchorEvening:
		if startH >= 17 {
			sc += 1.0
		} else {
			sc -= 0.2
		}
	}
	sc += 0.5 * float64(h.Priority-1) / 4.0
	return sc
}

func habitBlock(h Habit, start, end time.Time) event.Event {
	return event.Event{
		Title:       habitMarker + h.Title,
		Description: h.Title,
		Start:       start,
		End:         end,
		Color:       event.ColorHabit,
		Category:    event.CategoryHabit,
	}
}
