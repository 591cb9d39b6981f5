package planner

import (
	"math"
	"time"
)

// unusableScore marks a window/task pairing that must never be selected.
const unusableScore = -1e9

// Scoring weights. These are load-bearing: placement order between competing
// windows depends on the exact values.
const (
	weightPriority = 1.8
	weightUrgency  = 1.4
	weightCirc     = 0.8
	weightLength   = 0.5
	weightEarly    = 0.2
)

// urgencyHorizonMin is the deadline ramp: a deadline this many minutes away
// (one week) scores 0 urgency, an imminent or passed deadline scores 1.
const urgencyHorizonMin = 60.0 * 24 * 7

// slotScore rates how suitable a free slot is for a task. Factors:
// priority (strong), deadline urgency, circadian bias, slot length (up to
// 120m) and a mild preference for slots starting sooner. Returns
// unusableScore for slots under the minimum usable length.
func slotScore(w Slot, t Task, now time.Time) float64 {
	durMin := w.Minutes()
	if durMin < MinBlockMin {
		return unusableScore
	}

	h := w.Start.Hour()

	// Circadian bias: morning and afternoon preferences are independent
	// and summed.
	circ := 0.0
	if t.Morning {
		if h >= 7 && h <= 12 {
			circ += 1.0
		} else {
			circ -= 0.3
		}
	}
	if t.Afternoon {
		if h >= 13 && h <= 17 {
			circ += 1.0
		} else {
			circ -= 0.3
		}
	}

	// Deadline urgency: linear ramp within one week, clamped to [0,1].
	urgency := 0.0
	if !t.Deadline.IsZero() {
		minsLeft := t.Deadline.Sub(now).Minutes()
		urgency = clamp01(1.0 - minsLeft/urgencyHorizonMin)
	}

	early := 1.0 / math.Max(1.0, w.Start.Sub(now).Hours())
	length := math.Min(1.0, float64(durMin)/120.0)
	pr := float64(t.Priority-1) / 4.0

	return weightPriority*pr + weightUrgency*urgency + weightCirc*circ +
		weightLength*length + weightEarly*early
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
