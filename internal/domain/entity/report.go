package entity

import "github.com/shopspring/decimal"

// UserInfo is the PagerDuty user the report is generated for.
type UserInfo struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ScheduleInfo is the PagerDuty schedule the on-calls belong to.
type ScheduleInfo struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	HTMLURL string `json:"html_url"`
}

// PayrollReport combines the aggregate with the report metadata.
type PayrollReport struct {
	Date       Period          `json:"date"`
	User       UserInfo        `json:"user"`
	Schedule   ScheduleInfo    `json:"schedule"`
	Rate       float64         `json:"rate"`
	Timezone   string          `json:"timezone"`
	Shifts     []ClippedShift  `json:"shifts"`
	Bill       decimal.Decimal `json:"bill"`
	TotalDays  int             `json:"totalDays"`
	TotalHours int             `json:"totalHours"`
}

// NewPayrollReport assembles a report from an aggregate result.
func NewPayrollReport(period Period, user UserInfo, schedule ScheduleInfo, rate float64, timezone string, result AggregateResult) PayrollReport {
	shifts := result.Shifts
	if shifts == nil {
		shifts = []ClippedShift{}
	}
	return PayrollReport{
		Date:       period,
		User:       user,
		Schedule:   schedule,
		Rate:       rate,
		Timezone:   timezone,
		Shifts:     shifts,
		Bill:       result.Bill,
		TotalDays:  result.TotalDays,
		TotalHours: result.TotalHours,
	}
}
