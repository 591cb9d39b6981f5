package planner

import (
	"testing"
	"time"

	"github.com/lucasvidela/jornada/internal/event"
)

var testDay = time.Date(2025, 3, 10, 0, 0, 0, 0, time.Local)

// at returns a clock time on testDay.
func at(hour, min int) time.Time {
	return time.Date(2025, 3, 10, hour, min, 0, 0, time.Local)
}

func busyAt(startH, startM, endH, endM int) event.Event {
	return event.Event{
		Title:    "busy",
		Start:    at(startH, startM),
		End:      at(endH, endM),
		Category: event.CategoryBusy,
	}
}

func TestFreeWindows_EmptyBusy(t *testing.T) {
	free := FreeWindows(testDay, nil, MinBlockMin)

	if len(free) != 1 {
		t.Fatalf("expected 1 window, got %d", len(free))
	}
	if !free[0].Start.Equal(at(6, 0)) || !free[0].End.Equal(at(22, 0)) {
		t.Errorf("expected 06:00-22:00, got %v-%v", free[0].Start, free[0].End)
	}
}

func TestFreeWindows_FullyBusy(t *testing.T) {
	busy := []event.Event{busyAt(6, 0, 22, 0)}
	free := FreeWindows(testDay, busy, MinBlockMin)

	if len(free) != 0 {
		t.Errorf("expected no windows on a fully busy day, got %d", len(free))
	}
}

func TestFreeWindows_SingleBusyBlock(t *testing.T) {
	busy := []event.Event{busyAt(9, 0, 10, 0)}
	free := FreeWindows(testDay, busy, MinBlockMin)

	if len(free) != 2 {
		t.Fatalf("expected 2 windows, got %d", len(free))
	}
	if !free[0].Start.Equal(at(6, 0)) || !free[0].End.Equal(at(9, 0)) {
		t.Errorf("window 0 = %v-%v, want 06:00-09:00", free[0].Start, free[0].End)
	}
	if !free[1].Start.Equal(at(10, 0)) || !free[1].End.Equal(at(22, 0)) {
		t.Errorf("window 1 = %v-%v, want 10:00-22:00", free[1].Start, free[1].End)
	}
}

func TestFreeWindows_MergesOverlappingAndAdjacent(t *testing.T) {
	busy := []event.Event{
		busyAt(9, 0, 11, 0),
		busyAt(10, 30, 12, 0), // overlaps previous
		busyAt(12, 0, 13, 0),  // adjacent to previous
		busyAt(15, 0, 16, 0),
	}
	free := FreeWindows(testDay, busy, MinBlockMin)

	want := []Slot{
		{at(6, 0), at(9, 0)},
		{at(13, 0), at(15, 0)},
		{at(16, 0), at(22, 0)},
	}
	if len(free) != len(want) {
		t.Fatalf("expected %d windows, got %d: %v", len(want), len(free), free)
	}
	for i := range want {
		if !free[i].Start.Equal(want[i].Start) || !free[i].End.Equal(want[i].End) {
			t.Errorf("window %d = %v-%v, want %v-%v",
				i, free[i].Start, free[i].End, want[i].Start, want[i].End)
		}
	}
}

func TestFreeWindows_DropsShortGaps(t *testing.T) {
	// 10-minute gap between blocks is below the minimum.
	busy := []event.Event{
		busyAt(6, 0, 12, 0),
		busyAt(12, 10, 22, 0),
	}
	free := FreeWindows(testDay, busy, MinBlockMin)
	if len(free) != 0 {
		t.Errorf("expected short gap to be dropped, got %v", free)
	}

	// The same gap survives with a smaller threshold.
	free = FreeWindows(testDay, busy, 5)
	if len(free) != 1 || free[0].Minutes() != 10 {
		t.Errorf("expected one 10m window with min 5, got %v", free)
	}
}

func TestFreeWindows_MinimumLengthInvariant(t *testing.T) {
	busy := []event.Event{
		busyAt(6, 30, 6, 50),
		busyAt(7, 5, 9, 0),
		busyAt(9, 20, 12, 0),
	}
	for _, w := range FreeWindows(testDay, busy, MinBlockMin) {
		if w.Minutes() < MinBlockMin {
			t.Errorf("window %v-%v shorter than %dm", w.Start, w.End, MinBlockMin)
		}
	}
}

func TestFreeWindows_ClampsToDayBounds(t *testing.T) {
	busy := []event.Event{
		{Title: "overnight", Start: at(4, 0), End: at(7, 0), Category: event.CategoryBusy},
		{Title: "late", Start: at(21, 0), End: at(23, 30), Category: event.CategoryBusy},
	}
	free := FreeWindows(testDay, busy, MinBlockMin)

	if len(free) != 1 {
		t.Fatalf("expected 1 window, got %d", len(free))
	}
	if !free[0].Start.Equal(at(7, 0)) || !free[0].End.Equal(at(21, 0)) {
		t.Errorf("window = %v-%v, want 07:00-21:00", free[0].Start, free[0].End)
	}
}

func TestFreeWindows_IgnoresOtherDays(t *testing.T) {
	otherDay := testDay.AddDate(0, 0, 1)
	busy := []event.Event{
		{
			Title:    "tomorrow",
			Start:    time.Date(2025, 3, 11, 9, 0, 0, 0, time.Local),
			End:      time.Date(2025, 3, 11, 10, 0, 0, 0, time.Local),
			Category: event.CategoryBusy,
		},
	}

	free := FreeWindows(testDay, busy, MinBlockMin)
	if len(free) != 1 || free[0].Minutes() != 16*60 {
		t.Errorf("other-day event should not affect today: %v", free)
	}

	free = FreeWindows(otherDay, busy, MinBlockMin)
	if len(free) != 2 {
		t.Errorf("expected the event to split tomorrow, got %v", free)
	}
}

func TestFreeWindows_DiscardsDegenerateIntervals(t *testing.T) {
	busy := []event.Event{
		{Title: "zero", Start: at(9, 0), End: at(9, 0), Category: event.CategoryBusy},
		{Title: "inverted", Start: at(12, 0), End: at(11, 0), Category: event.CategoryBusy},
	}
	free := FreeWindows(testDay, busy, MinBlockMin)
	if len(free) != 1 || free[0].Minutes() != 16*60 {
		t.Errorf("degenerate intervals should be dropped, got %v", free)
	}
}

// Free windows plus merged busy time must reconstruct the day exactly.
func TestFreeWindows_ReconstructsDay(t *testing.T) {
	busy := []event.Event{
		busyAt(7, 15, 8, 45),
		busyAt(8, 30, 9, 30), // overlaps
		busyAt(13, 0, 14, 0),
		busyAt(19, 50, 21, 10),
	}
	free := FreeWindows(testDay, busy, 1)

	for i, w := range free {
		for _, b := range busy {
			be := event.Event{Start: w.Start, End: w.End}
			if be.OverlapsWith(b) {
				t.Errorf("free window %d overlaps busy %v-%v", i, b.Start, b.End)
			}
		}
		if i > 0 && free[i-1].End.After(w.Start) {
			t.Errorf("free windows %d and %d overlap", i-1, i)
		}
	}

	freeMin := 0
	for _, w := range free {
		freeMin += w.Minutes()
	}
	// Merged busy inside the day: 07:15-09:30, 13:00-14:00, 19:50-21:10.
	busyMin := 135 + 60 + 80
	if freeMin+busyMin != 16*60 {
		t.Errorf("free %dm + busy %dm != %dm day span", freeMin, busyMin, 16*60)
	}
}

// Applying the merger twice, treating its own output as busy input, must
// return the original windows.
func TestFreeWindows_IdempotentRemerge(t *testing.T) {
	busy := []event.Event{
		busyAt(9, 0, 10, 0),
		busyAt(12, 30, 13, 15),
		busyAt(18, 0, 20, 0),
	}
	first := FreeWindows(testDay, busy, MinBlockMin)

	toEvents := func(slots []Slot) []event.Event {
		out := make([]event.Event, len(slots))
		for i, s := range slots {
			out[i] = event.Event{Title: "w", Start: s.Start, End: s.End, Category: event.CategoryBusy}
		}
		return out
	}

	inverted := FreeWindows(testDay, toEvents(first), MinBlockMin)
	again := FreeWindows(testDay, toEvents(inverted), MinBlockMin)

	if len(again) != len(first) {
		t.Fatalf("double re-merge changed window count: %d vs %d", len(again), len(first))
	}
	for i := range first {
		if !again[i].Start.Equal(first[i].Start) || !again[i].End.Equal(first[i].End) {
			t.Errorf("window %d changed: %v-%v vs %v-%v",
				i, again[i].Start, again[i].End, first[i].Start, first[i].End)
		}
	}
}

func TestFreeWindows_DoesNotMutateInput(t *testing.T) {
	busy := []event.Event{busyAt(9, 0, 10, 0)}
	orig := busy[0]
	_ = FreeWindows(testDay, busy, MinBlockMin)
	if !busy[0].Start.Equal(orig.Start) || !busy[0].End.Equal(orig.End) {
		t.Error("FreeWindows mutated its input")
	}
}
