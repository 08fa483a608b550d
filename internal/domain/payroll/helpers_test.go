package payroll_test

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/diillson/pd-payroll-go/internal/domain/entity"
	"github.com/diillson/pd-payroll-go/internal/domain/payroll"
	"github.com/stretchr/testify/require"
)

func warsaw(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Europe/Warsaw")
	require.NoError(t, err)
	return loc
}

func at(t *testing.T, loc *time.Location, value string) time.Time {
	t.Helper()
	ts, err := payroll.ParseInstant(value, loc)
	require.NoError(t, err)
	return ts
}

func shift(start, end string) entity.RawShift {
	return entity.RawShift{Start: start, End: end}
}

func interval(t *testing.T, loc *time.Location, start, end string) payroll.Interval {
	t.Helper()
	return payroll.Interval{Start: at(t, loc, start), End: at(t, loc, end)}
}

func january2022(t *testing.T, loc *time.Location) payroll.MonthWindow {
	t.Helper()
	w, err := payroll.NewCalendar(loc).MonthWindow(2022, 1)
	require.NoError(t, err)
	return w
}
