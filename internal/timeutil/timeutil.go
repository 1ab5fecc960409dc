package timeutil

import "time"

// Common layouts. Date strings are fixed-width so they compare correctly
// as plain strings.
const (
	DateLayout     = "2006-01-02"
	TimeLayout     = "15:04"
	DateTimeLayout = "2006-01-02 15:04:05"
)

// Now returns the current local time.
func Now() time.Time {
	return time.Now()
}

// DateString formats a time as a YYYY-MM-DD date string.
func DateString(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate parses a YYYY-MM-DD date string at local midnight.
func ParseDate(value string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, value, time.Local)
}

// ParseClock parses an HH:MM wall-clock string.
func ParseClock(value string) (time.Time, error) {
	return time.Parse(TimeLayout, value)
}

// InRange reports whether t falls inside the inclusive [start, end] date
// range given as YYYY-MM-DD strings.
func InRange(t time.Time, start, end string) bool {
	d := DateString(t)
	return d >= start && d <= end
}

// StartOfDay returns the start of day (00:00:00) for the given time.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the end of day (23:59:59.999999999) for the given time.
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999999999, t.Location())
}
