package todo

import (
	"testing"
	"time"
)

// A fixed Wednesday for deterministic weekday resolution.
var wednesday = time.Date(2024, 1, 10, 15, 30, 0, 0, time.Local)

func TestParseDueDateAt(t *testing.T) {
	day := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
	}

	tests := []struct {
		input  string
		want   time.Time
		wantOK bool
	}{
		{"today", day(2024, 1, 10), true},
		{"Today", day(2024, 1, 10), true},
		{"tomorrow", day(2024, 1, 11), true},
		{"next week", day(2024, 1, 17), true},
		{"friday", day(2024, 1, 12), true},
		{"fri", day(2024, 1, 12), true},
		// Same weekday resolves to the next occurrence, not today.
		{"wednesday", day(2024, 1, 17), true},
		{"monday", day(2024, 1, 15), true},
		{"2024-01-15", day(2024, 1, 15), true},
		{"01/15/2024", day(2024, 1, 15), true},
		{"1/5/2024", day(2024, 1, 5), true},
		{"02/30/2024", time.Time{}, false}, // no rollover
		{"2024-13-01", time.Time{}, false},
		{"nonsense", time.Time{}, false},
		{"", time.Time{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseDueDateAt(tt.input, wednesday)
			if ok != tt.wantOK {
				t.Fatalf("ok: got %v, want %v", ok, tt.wantOK)
			}
			if ok && !got.Equal(tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseDueDateToday(t *testing.T) {
	got, ok := ParseDueDate("today")
	if !ok {
		t.Fatal("expected ok")
	}
	if !got.Equal(StartOfDay(time.Now())) {
		t.Errorf("got %v, want start of today", got)
	}
}

func TestFormatDueDate(t *testing.T) {
	now := wednesday
	if got := FormatDueDate(StartOfDay(now), now); got != "Today" {
		t.Errorf("got %q, want Today", got)
	}
	if got := FormatDueDate(StartOfDay(now).AddDate(0, 0, 1), now); got != "Tomorrow" {
		t.Errorf("got %q, want Tomorrow", got)
	}
	if got := FormatDueDate(time.Date(2024, 3, 5, 0, 0, 0, 0, time.Local), now); got != "Mar 5" {
		t.Errorf("got %q, want Mar 5", got)
	}
}

func TestOverdueAndDueToday(t *testing.T) {
	now := wednesday
	yesterday := StartOfDay(now).AddDate(0, 0, -1)

	if !IsOverdue(yesterday, now) {
		t.Error("yesterday should be overdue")
	}
	if IsOverdue(StartOfDay(now), now) {
		t.Error("today is not overdue")
	}
	if !IsDueToday(StartOfDay(now), now) {
		t.Error("today should be due today")
	}
}
