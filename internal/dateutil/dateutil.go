// Package dateutil provides calendar-date parsing and working-day arithmetic.
package dateutil

import (
	"errors"
	"time"
)

// Validation errors.
var (
	ErrInvalidDateFormat = errors.New("date must be in YYYY-MM-DD format")
)

// DateFormat is the calendar-date layout used across the application.
const DateFormat = "2006-01-02"

// projectionBound caps the forward scan in ProjectEndFromWorkingDays.
const projectionBound = 365

// ParseDate parses a date string in YYYY-MM-DD format.
// If the string is empty, returns today's date.
func ParseDate(s string) (time.Time, error) {
	if s == "" {
		return TruncateToDay(time.Now()), nil
	}
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		return time.Time{}, ErrInvalidDateFormat
	}
	return t, nil
}

// FormatDate formats a date as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DateFormat)
}

// TruncateToDay returns t with time set to midnight.
func TruncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay reports whether a and b fall on the same calendar date.
func SameDay(a, b time.Time) bool {
	return TruncateToDay(a).Equal(TruncateToDay(b))
}

// AddDays returns the date n calendar days after t. n may be negative.
func AddDays(t time.Time, n int) time.Time {
	return TruncateToDay(t).AddDate(0, 0, n)
}

// DaysBetween returns the number of calendar days from start to end.
// Negative when end is before start.
func DaysBetween(start, end time.Time) int {
	s := TruncateToDay(start)
	e := TruncateToDay(end)
	return int(e.Sub(s).Hours() / 24)
}

// IsWeekend reports whether the date falls on Saturday or Sunday.
func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// IsWorkingDay reports whether the date is neither a weekend day nor a holiday.
func IsWorkingDay(t time.Time) bool {
	return !IsWeekend(t) && !IsHoliday(t)
}

// WorkingDaysBetween counts the working days in the inclusive range [start, end].
// Returns 0 when end is before start; callers treat that as a degenerate
// interval, not an error.
func WorkingDaysBetween(start, end time.Time) int {
	s := TruncateToDay(start)
	e := TruncateToDay(end)
	if e.Before(s) {
		return 0
	}

	count := 0
	for d := s; !d.After(e); d = d.AddDate(0, 0, 1) {
		if IsWorkingDay(d) {
			count++
		}
	}
	return count
}

// ProjectEndFromWorkingDays scans forward from start, day by day, until it has
// seen required working days, and returns the date on which the count is
// reached. A required count of zero or less returns start unchanged. The scan
// is bounded; if the bound is exhausted the last scanned date is returned.
func ProjectEndFromWorkingDays(start time.Time, required int) time.Time {
	d := TruncateToDay(start)
	if required <= 0 {
		return d
	}

	count := 0
	for i := 0; i < projectionBound; i++ {
		if IsWorkingDay(d) {
			count++
			if count >= required {
				return d
			}
		}
		d = d.AddDate(0, 0, 1)
	}
	return d
}
