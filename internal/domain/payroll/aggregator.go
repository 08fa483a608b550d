package payroll

import (
	"math"
	"time"

	"github.com/diillson/pd-payroll-go/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// Calculator turns raw on-call entries into payroll figures.
type Calculator struct {
	calendar *Calendar
}

// NewCalculator creates a Calculator working in loc. A nil loc means time.Local.
func NewCalculator(loc *time.Location) *Calculator {
	return &Calculator{calendar: NewCalendar(loc)}
}

// Calendar returns the calendar used by the calculator.
func (c *Calculator) Calendar() *Calendar {
	return c.calendar
}

// Calculate filters, clips and aggregates shifts for period at the given hourly rate.
// Every timestamp is parsed before filtering; the first unparsable one aborts the run.
func (c *Calculator) Calculate(raw []entity.RawShift, period entity.Period, rate float64) (entity.AggregateResult, error) {
	window, err := c.calendar.MonthWindow(period.Year, period.Month)
	if err != nil {
		return entity.AggregateResult{}, err
	}

	if err := ValidateRate(rate); err != nil {
		return entity.AggregateResult{}, err
	}

	intervals, err := c.parseShifts(raw)
	if err != nil {
		return entity.AggregateResult{}, err
	}

	return Aggregate(intervals, window, decimal.NewFromFloat(rate)), nil
}

// ValidateRate rejects non-positive and non-finite hourly rates.
func ValidateRate(rate float64) error {
	if rate <= 0 || math.IsNaN(rate) || math.IsInf(rate, 0) {
		return &InvalidRateError{Rate: rate}
	}
	return nil
}

func (c *Calculator) parseShifts(raw []entity.RawShift) ([]Interval, error) {
	loc := c.calendar.Location()
	intervals := make([]Interval, 0, len(raw))

	for i, s := range raw {
		start, err := ParseInstant(s.Start, loc)
		if err != nil {
			return nil, &MalformedShiftError{Index: i, Field: "start", Value: s.Start, Err: err}
		}
		end, err := ParseInstant(s.End, loc)
		if err != nil {
			return nil, &MalformedShiftError{Index: i, Field: "end", Value: s.End, Err: err}
		}
		intervals = append(intervals, Interval{Start: start, End: end})
	}

	return intervals, nil
}

// Aggregate applies the validity filter and the clipper to each shift, in order, and
// sums the billable figures.
func Aggregate(shifts []Interval, window MonthWindow, rate decimal.Decimal) entity.AggregateResult {
	result := entity.AggregateResult{
		Bill:   decimal.Zero,
		Shifts: []entity.ClippedShift{},
	}

	for _, s := range shifts {
		if !IsValidShift(s, window) {
			continue
		}

		clipped := ClipShift(s, window)
		hours := HoursInShift(clipped.Start, clipped.End)
		days := DaysInShift(clipped.Start, clipped.End)
		bill := decimal.NewFromInt(int64(hours)).Mul(rate)

		result.Shifts = append(result.Shifts, entity.ClippedShift{
			Start:        clipped.Start,
			End:          clipped.End,
			HoursInShift: hours,
			DaysInShift:  days,
			ShiftBill:    bill,
		})

		result.TotalHours += hours
		result.TotalDays += days
		result.Bill = result.Bill.Add(bill)
	}

	return result
}

// HoursInShift returns the whole hours elapsed between start and end. A night crossing
// a spring-forward transition yields one hour less than its wall-clock span.
func HoursInShift(start, end time.Time) int {
	if !end.After(start) {
		return 0
	}
	return int(end.Sub(start) / time.Hour)
}

// DaysInShift returns the number of calendar dates between start and end, read in
// start's location, never less than 1.
func DaysInShift(start, end time.Time) int {
	days := calendarDays(end.In(start.Location())) - calendarDays(start)
	if days < 1 {
		return 1
	}
	return days
}

// calendarDays maps a local date onto a day count that ignores DST offsets.
func calendarDays(t time.Time) int {
	y, m, d := t.Date()
	return int(time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Unix() / 86400)
}
