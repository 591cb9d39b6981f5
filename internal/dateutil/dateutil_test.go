package dateutil

import (
	"errors"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2025-03-10")
	if err != nil {
		t.Fatalf("ParseDate failed: %v", err)
	}
	want := time.Date(2025, 3, 10, 0, 0, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Errorf("ParseDate = %v, want %v", got, want)
	}
}

func TestParseDate_Empty(t *testing.T) {
	got, err := ParseDate("")
	if err != nil {
		t.Fatalf("ParseDate failed: %v", err)
	}
	if !got.Equal(TruncateToDay(time.Now())) {
		t.Errorf("empty date should default to today, got %v", got)
	}
}

func TestParseDate_Invalid(t *testing.T) {
	for _, s := range []string{"10-03-2025", "2025/03/10", "not-a-date"} {
		if _, err := ParseDate(s); !errors.Is(err, ErrInvalidDateFormat) {
			t.Errorf("ParseDate(%q) error = %v, want ErrInvalidDateFormat", s, err)
		}
	}
}

func TestTruncateToDay(t *testing.T) {
	in := time.Date(2025, 3, 10, 14, 35, 22, 99, time.Local)
	got := TruncateToDay(in)
	want := time.Date(2025, 3, 10, 0, 0, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Errorf("TruncateToDay = %v, want %v", got, want)
	}
}

func TestParseRelativeDate(t *testing.T) {
	// Monday.
	ref := time.Date(2025, 3, 10, 15, 0, 0, 0, time.Local)

	tests := []struct {
		input string
		want  time.Time
	}{
		{"", time.Date(2025, 3, 10, 0, 0, 0, 0, time.Local)},
		{"today", time.Date(2025, 3, 10, 0, 0, 0, 0, time.Local)},
		{"Tomorrow", time.Date(2025, 3, 11, 0, 0, 0, 0, time.Local)},
		{"next-week", time.Date(2025, 3, 17, 0, 0, 0, 0, time.Local)},
		{"friday", time.Date(2025, 3, 14, 0, 0, 0, 0, time.Local)},
		{"monday", time.Date(2025, 3, 17, 0, 0, 0, 0, time.Local)}, // same weekday -> next week
		{"next-wednesday", time.Date(2025, 3, 12, 0, 0, 0, 0, time.Local)},
		{"2025-04-01", time.Date(2025, 4, 1, 0, 0, 0, 0, time.Local)},
		{"2025-01-01", time.Date(2025, 1, 1, 0, 0, 0, 0, time.Local)}, // past dates allowed
	}

	for _, tt := range tests {
		got, err := ParseRelativeDate(tt.input, ref)
		if err != nil {
			t.Errorf("ParseRelativeDate(%q) failed: %v", tt.input, err)
			continue
		}
		if !got.Equal(tt.want) {
			t.Errorf("ParseRelativeDate(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestParseRelativeDate_Invalid(t *testing.T) {
	ref := time.Date(2025, 3, 10, 15, 0, 0, 0, time.Local)
	for _, s := range []string{"next-fooday", "yesterday", "03/10"} {
		if _, err := ParseRelativeDate(s, ref); !errors.Is(err, ErrInvalidDateFormat) {
			t.Errorf("ParseRelativeDate(%q) error = %v, want ErrInvalidDateFormat", s, err)
		}
	}
}

func TestParseDeadline(t *testing.T) {
	got, err := ParseDeadline("2025-03-14 17:00")
	if err != nil {
		t.Fatalf("ParseDeadline failed: %v", err)
	}
	if !got.Equal(time.Date(2025, 3, 14, 17, 0, 0, 0, time.Local)) {
		t.Errorf("ParseDeadline = %v", got)
	}

	// Date-only deadlines mean end of that day.
	got, err = ParseDeadline("2025-03-14")
	if err != nil {
		t.Fatalf("ParseDeadline failed: %v", err)
	}
	if !got.Equal(time.Date(2025, 3, 14, 23, 59, 0, 0, time.Local)) {
		t.Errorf("date-only ParseDeadline = %v", got)
	}

	got, err = ParseDeadline("")
	if err != nil || !got.IsZero() {
		t.Errorf("empty deadline should be zero time, got %v, %v", got, err)
	}

	if _, err := ParseDeadline("friday at noon"); !errors.Is(err, ErrInvalidDeadline) {
		t.Errorf("expected ErrInvalidDeadline, got %v", err)
	}
}
