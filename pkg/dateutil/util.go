package dateutil

import "time"

// Date truncates t to its calendar date, dropping the time component but
// keeping the location.
func Date(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Today returns the current calendar date in the given location. A nil
// location falls back to UTC.
func Today(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}

	return Date(time.Now().In(loc))
}

// NextDay returns the calendar date one day after d. It uses AddDate, so DST
// transitions cannot produce a 23h or 25h drift of the date value.
func NextDay(d time.Time) time.Time {
	return Date(d.AddDate(0, 0, 1))
}

// PrevDay returns the calendar date one day before d.
func PrevDay(d time.Time) time.Time {
	return Date(d.AddDate(0, 0, -1))
}

// SameDate reports whether a and b fall on the same calendar date.
func SameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// IsConsecutive reports whether next is exactly one calendar day after prev.
func IsConsecutive(prev, next time.Time) bool {
	return SameDate(NextDay(prev), next)
}
