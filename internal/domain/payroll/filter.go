package payroll

import "time"

// Interval is a parsed shift.
type Interval struct {
	Start time.Time
	End   time.Time
}

// IsValidShift reports whether a shift contributes to the month of window.
//
// A shift is excluded when it is malformed (start after end), when it ends on the
// first day of the month, when it lies wholly before the month, or when it starts
// after the month.
func IsValidShift(shift Interval, window MonthWindow) bool {
	switch {
	case shift.Start.After(shift.End):
		return false
	case sameDay(window.First, shift.End):
		return false
	case shift.Start.Before(window.First) && shift.End.Before(window.First):
		return false
	case shift.Start.After(window.Last):
		return false
	}
	return true
}
