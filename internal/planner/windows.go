package planner

import (
	"sort"
	"time"

	"github.com/lucasvidela/jornada/internal/event"
)

// FreeWindows computes the maximal free slots in the canonical 06:00-22:00
// window of the given day, subtracting all busy events. Overlapping and
// adjacent busy spans are merged; windows shorter than minBlockMin are
// dropped. Busy events whose date range does not include the day are ignored,
// and degenerate spans (end <= start after clamping) are discarded.
//
// The function is pure: it never mutates its inputs.
func FreeWindows(day time.Time, busy []event.Event, minBlockMin int) []Slot {
	dayStart, dayEnd := dayBounds(day)

	type seg struct {
		s, e time.Time
	}

	// Clamp each busy event to the day window and collect.
	segs := make([]seg, 0, len(busy))
	for _, ev := range busy {
		if !ev.OnDate(day) {
			continue
		}
		s := ev.Start
		if s.Before(dayStart) {
			s = dayStart
		}
		e := ev.End
		if e.After(dayEnd) {
			e = dayEnd
		}
		if s.Before(e) {
			segs = append(segs, seg{s, e})
		}
	}

	sort.Slice(segs, func(i, j int) bool { return segs[i].s.Before(segs[j].s) })

	// Merge overlapping and adjacent spans into a minimal covering set.
	var merged []seg
	for _, sg := range segs {
		if len(merged) == 0 || sg.s.After(merged[len(merged)-1].e) {
			merged = append(merged, sg)
			continue
		}
		if sg.e.After(merged[len(merged)-1].e) {
			merged[len(merged)-1].e = sg.e
		}
	}

	// Invert the merged busy set to get free windows.
	var free []Slot
	cur := dayStart
	for _, m := range merged {
		if cur.Before(m.s) && minutesBetween(cur, m.s) >= minBlockMin {
			free = append(free, Slot{Start: cur, End: m.s})
		}
		if m.e.After(cur) {
			cur = m.e
		}
	}
	if cur.Before(dayEnd) && minutesBetween(cur, dayEnd) >= minBlockMin {
		free = append(free, Slot{Start: cur, End: dayEnd})
	}

	return free
}
