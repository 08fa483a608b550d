package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// RawShift is an on-call entry as received from PagerDuty. Start and End are ISO-8601 strings;
// nothing guarantees Start <= End.
type RawShift struct {
	Start           string `json:"start"`
	End             string `json:"end"`
	UserID          string `json:"user_id,omitempty"`
	ScheduleID      string `json:"schedule_id,omitempty"`
	EscalationLevel uint   `json:"escalation_level,omitempty"`
}

// ClippedShift is a shift truncated to the report month, with its billable figures.
type ClippedShift struct {
	Start        time.Time       `json:"start"`
	End          time.Time       `json:"end"`
	HoursInShift int             `json:"hoursInShift"`
	DaysInShift  int             `json:"daysInShift"`
	ShiftBill    decimal.Decimal `json:"shiftBill"`
}

// AggregateResult holds the per-shift figures and their running totals.
type AggregateResult struct {
	TotalDays  int             `json:"totalDays"`
	TotalHours int             `json:"totalHours"`
	Bill       decimal.Decimal `json:"bill"`
	Shifts     []ClippedShift  `json:"shifts"`
}

// Period identifies a calendar month. Month is 1-indexed.
type Period struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

// String returns the period as YYYY-MM.
func (p Period) String() string {
	return time.Date(p.Year, time.Month(p.Month), 1, 0, 0, 0, 0, time.UTC).Format("2006-01")
}
