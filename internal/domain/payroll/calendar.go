// Package payroll computes on-call payroll figures for a calendar month.
//
// All calendar arithmetic happens in an explicit location so that month edges and
// daylight-saving transitions do not depend on the machine running the report.
package payroll

import "time"

// MonthWindow is the billing window of a month: First is the first instant of day 1,
// Last is the final millisecond of the last day.
type MonthWindow struct {
	First time.Time
	Last  time.Time
}

// FetchWindow pads a MonthWindow by one day on each side. It is only used to query
// candidate shifts, never for billing.
type FetchWindow struct {
	Since time.Time
	Until time.Time
}

// Calendar produces month boundaries in a fixed location.
type Calendar struct {
	loc *time.Location
}

// NewCalendar creates a Calendar. A nil location means time.Local.
func NewCalendar(loc *time.Location) *Calendar {
	if loc == nil {
		loc = time.Local
	}
	return &Calendar{loc: loc}
}

// Location returns the calendar's location.
func (c *Calendar) Location() *time.Location {
	return c.loc
}

// MonthWindow returns the billing window for month (1-indexed) of year.
func (c *Calendar) MonthWindow(year, month int) (MonthWindow, error) {
	if month < 1 || month > 12 {
		return MonthWindow{}, &InvalidMonthError{Month: month}
	}

	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, c.loc)
	next := first.AddDate(0, 1, 0)

	return MonthWindow{
		First: first,
		Last:  next.Add(-time.Millisecond),
	}, nil
}

// FetchWindow returns the one-day padded query range around the month.
func (c *Calendar) FetchWindow(year, month int) (FetchWindow, error) {
	w, err := c.MonthWindow(year, month)
	if err != nil {
		return FetchWindow{}, err
	}
	return FetchWindow{
		Since: w.First.AddDate(0, 0, -1),
		Until: w.Last.AddDate(0, 0, 1),
	}, nil
}

// CopyTimeOfDay returns an instant on target's calendar day carrying reference's
// hour, minute, second and millisecond. Both are read in target's location.
func CopyTimeOfDay(target, reference time.Time) time.Time {
	loc := target.Location()
	ref := reference.In(loc)
	ms := ref.Nanosecond() / int(time.Millisecond)

	return time.Date(target.Year(), target.Month(), target.Day(),
		ref.Hour(), ref.Minute(), ref.Second(), ms*int(time.Millisecond), loc)
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.In(a.Location()).Date()
	return ay == by && am == bm && ad == bd
}
