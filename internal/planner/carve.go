package planner

import (
	"math"
	"sort"
	"time"

	"github.com/lucasvidela/jornada/internal/event"
)

// Category markers prefixed to planned block titles.
const (
	taskMarker  = "🔵 "
	habitMarker = "🟢 "
	bufferTitle = "Buffer"
)

// scheduleTasksIntoWindows greedily carves tasks into free windows, wrapping
// each placed chunk in a short pre/post buffer. Tasks are ordered by priority
// descending, then deadline ascending (no deadline sorts last), then effort
// descending. Placement is best-effort: when no usable fragment remains, the
// rest of a task's effort is silently dropped.
//
// The windows slice is never mutated; carving works on a local copy.
func scheduleTasksIntoWindows(windows []Slot, tasks []Task, now time.Time) []event.Event {
	var out []event.Event
	if len(tasks) == 0 || len(windows) == 0 {
		return out
	}

	ordered := make([]Task, len(tasks))
	for i, t := range tasks {
		ordered[i] = t.normalize()
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		a, b := ordered[i], ordered[j]
		if a.Priority != b.Priority {
			return a.Priority > b.Priority
		}
		aHas, bHas := !a.Deadline.IsZero(), !b.Deadline.IsZero()
		if aHas && bHas && !a.Deadline.Equal(b.Deadline) {
			return a.Deadline.Before(b.Deadline)
		}
		if aHas != bHas {
			return aHas
		}
		return a.EstimateMin > b.EstimateMin
	})

	// Mutable pool of window fragments; fragments shrink as chunks are
	// placed and are removed once exhausted.
	pool := make([]Slot, len(windows))
	copy(pool, windows)

	for _, t := range ordered {
		need := t.EstimateMin
		if need < MinBlockMin {
			need = MinBlockMin
		}

		for need > 0 {
			bestIdx := -1
			bestScore := math.Inf(-1)
			for i, w := range pool {
				if w.Minutes() < MinBlockMin {
					continue
				}
				if sc := slotScore(w, t, now); sc > bestScore {
					bestScore = sc
					bestIdx = i
				}
			}
			if bestIdx < 0 {
				break // nowhere to place more time
			}

			chosen := pool[bestIdx]
			chunk := t.MaxChunkMin
			if need < chunk {
				chunk = need
			}
			if avail := chosen.Minutes(); avail < chunk {
				chunk = avail
			}

			// Chunk sits at the start of the chosen fragment.
			s := chosen.Start
			e := s.Add(time.Duration(chunk) * time.Minute)
			sBuf := s.Add(-preBufferMin * time.Minute)
			eBuf := e.Add(postBufferMin * time.Minute)

			out = append(out,
				taskBlock(t, s, e),
				bufferBlock(sBuf, s),
				bufferBlock(e, eBuf),
			)

			// Consume the fragment prefix through the trailing buffer.
			pool[bestIdx].Start = eBuf
			if !pool[bestIdx].Start.Before(pool[bestIdx].End) {
				pool = append(pool[:bestIdx], pool[bestIdx+1:]...)
			}

			need -= chunk
			if !t.SplitOK {
				break // single chunk only
			}
		}
	}

	return out
}

func taskBlock(t Task, start, end time.Time) event.Event {
	return event.Event{
		Title:       taskMarker + t.Title,
		Description: t.Title,
		Start:       start,
		End:         end,
		Color:       event.ColorTask,
		Category:    event.CategoryTask,
	}
}

func bufferBlock(start, end time.Time) event.Event {
	return event.Event{
		Title:       bufferTitle,
		Description: bufferTitle,
		Start:       start,
		End:         end,
		Color:       event.ColorBuffer,
		Category:    event.CategoryBuffer,
	}
}
