// Package timeutil provides timezone-aware calendar-date bucketing for
// standup scheduling. Dates are represented as midnight-UTC time.Time values
// so they compare and sort as plain calendar days regardless of the zone the
// instant was observed in.
package timeutil

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateOf truncates t to its calendar date, normalized to midnight UTC.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// LocalDate returns the calendar date of now in the given timezone.
// An empty or unknown timezone falls back to fallbackTZ, then to UTC.
// It never fails the caller: bad zone data resolves to a UTC date.
func LocalDate(now time.Time, tz, fallbackTZ string) time.Time {
	loc := resolveLocation(tz, fallbackTZ)
	return DateOf(now.In(loc))
}

// LocalTime returns now in the given timezone with the same fallback rules
// as LocalDate.
func LocalTime(now time.Time, tz, fallbackTZ string) time.Time {
	return now.In(resolveLocation(tz, fallbackTZ))
}

func resolveLocation(tz, fallbackTZ string) *time.Location {
	if tz != "" {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}
	if fallbackTZ != "" {
		if loc, err := time.LoadLocation(fallbackTZ); err == nil {
			return loc
		}
	}
	return time.UTC
}

// ParseClock parses a "HH:MM" dispatch time string.
func ParseClock(s string) (hour, minute int, err error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid time format: %s", s)
	}

	hour, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid time format: %s", s)
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid time format: %s", s)
	}

	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("invalid time values: hour=%d, minute=%d", hour, minute)
	}

	return hour, minute, nil
}

// IsWorkday reports whether t falls on Monday through Friday.
func IsWorkday(t time.Time) bool {
	wd := t.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}

// PreviousWorkday returns the dispatch day immediately preceding date,
// skipping weekends (Monday's previous dispatch day is Friday).
func PreviousWorkday(date time.Time) time.Time {
	d := DateOf(date).AddDate(0, 0, -1)
	for !IsWorkday(d) {
		d = d.AddDate(0, 0, -1)
	}
	return d
}

// DaysBetween returns the number of calendar days from earlier to later.
func DaysBetween(earlier, later time.Time) int {
	return int(DateOf(later).Sub(DateOf(earlier)).Hours() / 24)
}

// FormatDate formats a date for user display, e.g. "Monday, Jan 15".
func FormatDate(date time.Time) string {
	return date.Format("Monday, Jan 2")
}
