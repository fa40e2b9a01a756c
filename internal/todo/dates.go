package todo

import (
	"strconv"
	"strings"
	"time"
)

var weekdays = map[string]time.Weekday{
	"monday": time.Monday, "mon": time.Monday,
	"tuesday": time.Tuesday, "tue": time.Tuesday,
	"wednesday": time.Wednesday, "wed": time.Wednesday,
	"thursday": time.Thursday, "thu": time.Thursday,
	"friday": time.Friday, "fri": time.Friday,
	"saturday": time.Saturday, "sat": time.Saturday,
	"sunday": time.Sunday, "sun": time.Sunday,
}

// ParseDueDate parses a due-date token relative to the current time.
// Accepted forms: "today", "tomorrow", "next week", weekday names and
// three-letter abbreviations (the next occurrence strictly after today),
// ISO YYYY-MM-DD, and MM/DD/YYYY. Results are at start of day in local
// time. Returns false for anything else.
func ParseDueDate(input string) (time.Time, bool) {
	return ParseDueDateAt(input, time.Now())
}

// ParseDueDateAt is ParseDueDate with an explicit "now", for tests.
func ParseDueDateAt(input string, now time.Time) (time.Time, bool) {
	trimmed := strings.ToLower(strings.TrimSpace(input))
	today := StartOfDay(now)

	switch trimmed {
	case "today":
		return today, true
	case "tomorrow":
		return today.AddDate(0, 0, 1), true
	case "next week":
		return today.AddDate(0, 0, 7), true
	}

	if wd, ok := weekdays[trimmed]; ok {
		days := int(wd-now.Weekday()+7) % 7
		if days == 0 {
			days = 7
		}
		return today.AddDate(0, 0, days), true
	}

	// ISO YYYY-MM-DD
	if t, err := time.ParseInLocation("2006-01-02", trimmed, now.Location()); err == nil {
		return t, true
	}

	// MM/DD/YYYY
	if t, ok := parseSlashDate(trimmed, now.Location()); ok {
		return t, true
	}

	return time.Time{}, false
}

// parseSlashDate parses MM/DD/YYYY, rejecting rollover dates like 02/30.
func parseSlashDate(s string, loc *time.Location) (time.Time, bool) {
	parts := strings.Split(s, "/")
	if len(parts) != 3 || len(parts[2]) != 4 {
		return time.Time{}, false
	}
	month, err1 := strconv.Atoi(parts[0])
	day, err2 := strconv.Atoi(parts[1])
	year, err3 := strconv.Atoi(parts[2])
	if err1 != nil || err2 != nil || err3 != nil {
		return time.Time{}, false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, loc)
	if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day {
		return time.Time{}, false
	}
	return t, true
}

// StartOfDay truncates t to midnight in its location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// FormatDueDate renders a due date for display: "Today", "Tomorrow", or
// a short month-day form.
func FormatDueDate(due, now time.Time) string {
	d := StartOfDay(due)
	today := StartOfDay(now)
	switch {
	case d.Equal(today):
		return "Today"
	case d.Equal(today.AddDate(0, 0, 1)):
		return "Tomorrow"
	default:
		return due.Format("Jan 2")
	}
}

// IsOverdue reports whether the due date is strictly before today.
func IsOverdue(due, now time.Time) bool {
	return StartOfDay(due).Before(StartOfDay(now))
}

// IsDueToday reports whether the due date falls on today.
func IsDueToday(due, now time.Time) bool {
	return StartOfDay(due).Equal(StartOfDay(now))
}
