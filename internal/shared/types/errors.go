package types

import "errors"

var (
	ErrTokenRequired     = errors.New("PagerDuty access token is required")
	ErrRateRequired      = errors.New("provide your hourly flat rate")
	ErrScheduleRequired  = errors.New("provide either schedule ID or schedule query")
	ErrScheduleNotFound  = errors.New("schedule not found")
	ErrAmbiguousSchedule = errors.New("more than one schedule matches the query")
	ErrNoOnCalls         = errors.New("no on-calls found")
	ErrUnknownConfigKey  = errors.New("unknown config field")

	ErrUnsupportedReportType = errors.New("unsupported report type")
)
