package payroll

// ClipShift truncates a valid shift to window.
//
// A start before the month moves to the first day of the month at the end's time of
// day. An end after the month moves to the day after the last day, again at its own
// time of day, so a shift spilling into next month is billed up to its real hand-off.
func ClipShift(shift Interval, window MonthWindow) Interval {
	clipped := shift

	if shift.Start.Before(window.First) {
		clipped.Start = CopyTimeOfDay(window.First, shift.End)
	}

	if shift.End.After(window.Last) {
		clipped.End = CopyTimeOfDay(window.Last, shift.End).AddDate(0, 0, 1)
	}

	return clipped
}
