package recurrence

import "time"

const day = 24 * time.Hour

// Day reduces t to midnight UTC of the calendar date t has in its own location.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the number of whole calendar days from a to b. It is
// negative when b falls before a.
func DaysBetween(a, b time.Time) int {
	return int(Day(b).Sub(Day(a)) / day)
}

// AddDays moves t by n calendar days and returns the result as a Day.
func AddDays(t time.Time, n int) time.Time {
	return Day(t).AddDate(0, 0, n)
}

// RoundDays rounds a non-negative day count half up.
func RoundDays(days float64) int {
	return int(days + 0.5)
}
