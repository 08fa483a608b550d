package payroll

import "fmt"

// MalformedShiftError reports a shift whose timestamp could not be parsed.
type MalformedShiftError struct {
	Index int
	Field string
	Value string
	Err   error
}

func (e *MalformedShiftError) Error() string {
	return fmt.Sprintf("malformed shift #%d: invalid %s %q: %v", e.Index, e.Field, e.Value, e.Err)
}

func (e *MalformedShiftError) Unwrap() error { return e.Err }

// InvalidRateError reports a non-positive or non-finite hourly rate.
type InvalidRateError struct {
	Rate float64
}

func (e *InvalidRateError) Error() string {
	return fmt.Sprintf("invalid hourly rate %v: must be a positive finite number", e.Rate)
}

// InvalidMonthError reports a month outside 1..12.
type InvalidMonthError struct {
	Month int
}

func (e *InvalidMonthError) Error() string {
	return fmt.Sprintf("invalid month %d: must be between 1 and 12", e.Month)
}
