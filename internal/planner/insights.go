package planner

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lucasvidela/jornada/internal/event"
)

// The helpers below are quick, heuristic rollups over a set of event blocks.
// They do no I/O and are independent of the planning passes.

// AnalyzeSchedule summarizes block count, total time, the day window spanned
// and the number of meetings (by title).
func AnalyzeSchedule(events []event.Event) string {
	totalMin := 0
	meetings := 0
	var first, last string

	for _, e := range events {
		totalMin += e.Duration()
		if strings.Contains(strings.ToLower(e.Title), "meeting") {
			meetings++
		}
		st := e.Start.Format("15:04")
		en := e.End.Format("15:04")
		if first == "" || st < first {
			first = st
		}
		if last == "" || en > last {
			last = en
		}
	}

	if first == "" {
		first, last = "--", "--"
	}
	return fmt.Sprintf("Blocks: %d  |  Total: %dh%dm  |  Window: %s-%s  |  Meetings: %d",
		len(events), totalMin/60, totalMin%60, first, last, meetings)
}

// InsightsReport holds minimal block-level insights.
type InsightsReport struct {
	TaskBlocks    int // planner-placed task chunks
	BufferMinutes int
	LongestMin    int // longest single block of any category
}

func (r InsightsReport) String() string {
	return fmt.Sprintf("Task blocks: %d\nBuffers: %d min\nLongest block: %d min\n"+
		"Tip: keep focus blocks >= 60m and surround with 5-10m buffers.",
		r.TaskBlocks, r.BufferMinutes, r.LongestMin)
}

// Insights computes block-level insights over the given events.
func Insights(events []event.Event) InsightsReport {
	var r InsightsReport
	for _, e := range events {
		m := e.Duration()
		if e.Category == event.CategoryTask {
			r.TaskBlocks++
		}
		if e.Category == event.CategoryBuffer {
			r.BufferMinutes += m
		}
		if m > r.LongestMin {
			r.LongestMin = m
		}
	}
	return r
}

// StressReport is a rough density-vs-recovery model of the day.
// Load is scheduled density, Recovery credits the gaps between blocks and
// Risk is the balance of the two; all on a 0..100 scale.
type StressReport struct {
	Load     int
	Recovery int
	Risk     int
}

func (r StressReport) String() string {
	return fmt.Sprintf("Load: %d/100\nRecovery: %d/100\nStress risk: %d/100\n"+
		"Tip: add micro-buffers (5-10m) after meetings and one 30m walk.",
		r.Load, r.Recovery, r.Risk)
}

// Stress estimates scheduling stress from block density and gap time.
func Stress(events []event.Event) StressReport {
	sorted := make([]event.Event, len(events))
	copy(sorted, events)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Start.Before(sorted[j].Start) })

	totalMin, gaps := 0, 0
	var lastEnd event.Event
	haveLast := false
	for _, e := range sorted {
		totalMin += e.Duration()
		if haveLast && lastEnd.End.Before(e.Start) {
			gaps += minutesBetween(lastEnd.End, e.Start)
		}
		lastEnd = e
		haveLast = true
	}

	density := totalMin / 6
	if density > 100 {
		density = 100
	}
	recovery := gaps / 3
	if recovery > 100 {
		recovery = 100
	}
	if recovery < 0 {
		recovery = 0
	}
	risk := density - recovery/2
	if risk < 0 {
		risk = 0
	}
	if risk > 100 {
		risk = 100
	}

	return StressReport{Load: density, Recovery: recovery, Risk: risk}
}

// BalanceReport splits the day into focus vs. recovery minutes and scores the
// balance between them, 0..100.
type BalanceReport struct {
	Score       int
	FocusMin    int
	RecoveryMin int
}

func (r BalanceReport) String() string {
	return fmt.Sprintf("Balance score: %d/100\nFocus: %dm | Recovery: %dm\n"+
		"Suggestion: schedule recovery up to ~35%% of total focus time.",
		r.Score, r.FocusMin, r.RecoveryMin)
}

// Balance computes a naive work/life balance score. Buffers and blocks whose
// title suggests movement or rest count as recovery; everything else is focus.
func Balance(events []event.Event) BalanceReport {
	focus, recovery := 0, 0
	for _, e := range events {
		m := e.Duration()
		title := strings.ToLower(e.Title)
		if e.Category == event.CategoryBuffer ||
			strings.Contains(title, "walk") ||
			strings.Contains(title, "break") ||
			strings.Contains(title, "exercise") {
			recovery += m
		} else {
			focus += m
		}
	}

	diff := focus - recovery
	if diff < 0 {
		diff = -diff
	}
	score := 70 + recovery/15 - diff/10
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	return BalanceReport{Score: score, FocusMin: focus, RecoveryMin: recovery}
}

// SuggestGoals returns a few generic daily goals.
func SuggestGoals() []string {
	return []string{
		"Ship two 60-90m deep-work blocks before noon",
		"Book 30-45m movement break",
		"Protect 1h for admin/email batching",
	}
}

// RecommendHabits returns a few generic habit suggestions.
func RecommendHabits() []string {
	return []string{
		"Walk 20m after lunch",
		"Read 25m in the evening",
		"5m breathing before the first meeting",
	}
}
