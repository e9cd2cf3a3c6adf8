package calendar

import (
	"fmt"
	"time"
)

// DateLayout is the wire format for calendar dates across the API.
const DateLayout = "2006-01-02"

// ClockLayout is the wire format for times of day in schedule windows.
const ClockLayout = "15:04"

// Weekday returns the day of week for a date, 0=Sunday through 6=Saturday.
func Weekday(date time.Time) int {
	return int(date.Weekday())
}

// Truncate drops the time-of-day component, keeping the calendar date in UTC.
func Truncate(date time.Time) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DateRange returns every calendar date from start to end, both inclusive.
// Month and year boundaries are handled by time.AddDate. An end before start
// yields an empty slice.
func DateRange(start, end time.Time) []time.Time {
	start = Truncate(start)
	end = Truncate(end)

	var dates []time.Time
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}
	return dates
}

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(value string) (time.Time, error) {
	date, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", value, err)
	}
	return date, nil
}

// ParseClock parses an HH:MM clock time into minutes since midnight.
func ParseClock(value string) (int, error) {
	t, err := time.Parse(ClockLayout, value)
	if err != nil {
		return 0, fmt.Errorf("invalid clock time %q: %w", value, err)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// WindowMinutes returns the length in minutes of the window [start, end),
// both HH:MM clock times on the same day.
func WindowMinutes(start, end string) (int, error) {
	startMin, err := ParseClock(start)
	if err != nil {
		return 0, err
	}
	endMin, err := ParseClock(end)
	if err != nil {
		return 0, err
	}
	return endMin - startMin, nil
}

// WithinRange reports whether date falls inside [start, end], inclusive on
// both ends. Time-of-day components are ignored.
func WithinRange(date, start, end time.Time) bool {
	d := Truncate(date)
	return !d.Before(Truncate(start)) && !d.After(Truncate(end))
}

// SameDate reports whether two timestamps fall on the same calendar date.
func SameDate(a, b time.Time) bool {
	return Truncate(a).Equal(Truncate(b))
}
