package payroll_test

import (
	"testing"
	"time"

	"github.com/diillson/pd-payroll-go/internal/domain/entity"
	"github.com/diillson/pd-payroll-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const rate = 17

type expectedShift struct {
	start, end string
	days       int
	hours      int
}

func TestCalculator_Calculate(t *testing.T) {
	loc := warsaw(t)
	calc := payroll.NewCalculator(loc)

	tests := []struct {
		name   string
		period entity.Period
		input  []entity.RawShift
		days   int
		hours  int
		shifts []expectedShift
	}{
		{
			name:   "one shift",
			period: entity.Period{Year: 2022, Month: 1},
			input: []entity.RawShift{
				shift("2021-12-28 17:00", "2021-12-31 09:00"),
				shift("2022-01-02 17:00", "2022-01-03 09:00"),
			},
			days:   1,
			hours:  16,
			shifts: []expectedShift{{"2022-01-02 17:00", "2022-01-03 09:00", 1, 16}},
		},
		{
			name:   "one shift without DST",
			period: entity.Period{Year: 2023, Month: 10},
			input:  []entity.RawShift{shift("2023-10-27 17:00", "2023-10-28 09:00")},
			days:   1,
			hours:  16,
			shifts: []expectedShift{{"2023-10-27 17:00", "2023-10-28 09:00", 1, 16}},
		},
		{
			name:   "one shift across fall-back",
			period: entity.Period{Year: 2023, Month: 10},
			input:  []entity.RawShift{shift("2023-10-28 17:00", "2023-10-29 09:00")},
			days:   1,
			hours:  17,
			shifts: []expectedShift{{"2023-10-28 17:00", "2023-10-29 09:00", 1, 17}},
		},
		{
			name:   "one shift across spring-forward",
			period: entity.Period{Year: 2023, Month: 3},
			input:  []entity.RawShift{shift("2023-03-25 17:00", "2023-03-26 09:00")},
			days:   1,
			hours:  15,
			shifts: []expectedShift{{"2023-03-25 17:00", "2023-03-26 09:00", 1, 15}},
		},
		{
			name:   "overlap from previous month",
			period: entity.Period{Year: 2022, Month: 1},
			input:  []entity.RawShift{shift("2021-12-30 17:00", "2022-01-02 09:00")},
			days:   1,
			hours:  24,
			shifts: []expectedShift{{"2022-01-01 09:00", "2022-01-02 09:00", 1, 24}},
		},
		{
			name:   "ending in next month",
			period: entity.Period{Year: 2022, Month: 1},
			input:  []entity.RawShift{shift("2022-01-31 15:00", "2022-02-03 08:00")},
			days:   1,
			hours:  17,
			shifts: []expectedShift{{"2022-01-31 15:00", "2022-02-01 08:00", 1, 17}},
		},
		{
			name:   "two shifts overlapping adjacent months",
			period: entity.Period{Year: 2022, Month: 1},
			input: []entity.RawShift{
				shift("2021-12-29 17:00", "2022-01-02 09:00"),
				shift("2022-01-31 17:00", "2022-02-03 09:00"),
			},
			days:  2,
			hours: 40,
			shifts: []expectedShift{
				{"2022-01-01 09:00", "2022-01-02 09:00", 1, 24},
				{"2022-01-31 17:00", "2022-02-01 09:00", 1, 16},
			},
		},
		{
			name:   "no shifts",
			period: entity.Period{Year: 2022, Month: 1},
			input:  []entity.RawShift{},
			shifts: []expectedShift{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := calc.Calculate(tt.input, tt.period, rate)
			require.NoError(t, err)

			assert.Equal(t, tt.days, got.TotalDays)
			assert.Equal(t, tt.hours, got.TotalHours)
			assert.True(t, decimal.NewFromInt(int64(tt.hours*rate)).Equal(got.Bill), "bill %s", got.Bill)

			require.Len(t, got.Shifts, len(tt.shifts))
			for i, want := range tt.shifts {
				s := got.Shifts[i]
				assert.True(t, at(t, loc, want.start).Equal(s.Start), "shift %d start %s", i, s.Start)
				assert.True(t, at(t, loc, want.end).Equal(s.End), "shift %d end %s", i, s.End)
				assert.Equal(t, want.days, s.DaysInShift)
				assert.Equal(t, want.hours, s.HoursInShift)
				assert.True(t, decimal.NewFromInt(int64(want.hours*rate)).Equal(s.ShiftBill))
			}
		})
	}
}

func TestCalculator_EmptyInputYieldsZeroResult(t *testing.T) {
	got, err := payroll.NewCalculator(time.UTC).Calculate(nil, entity.Period{Year: 2022, Month: 1}, rate)
	require.NoError(t, err)

	assert.Zero(t, got.TotalDays)
	assert.Zero(t, got.TotalHours)
	assert.True(t, got.Bill.IsZero())
	assert.NotNil(t, got.Shifts)
	assert.Empty(t, got.Shifts)
}

func TestCalculator_ScenarioJanuary2022(t *testing.T) {
	loc := warsaw(t)

	got, err := payroll.NewCalculator(loc).Calculate(
		[]entity.RawShift{shift("2022-01-02 17:00", "2022-01-03 09:00")},
		entity.Period{Year: 2022, Month: 1},
		rate,
	)
	require.NoError(t, err)

	assert.Equal(t, 1, got.TotalDays)
	assert.Equal(t, 16, got.TotalHours)
	assert.Equal(t, "272", got.Bill.String())
	require.Len(t, got.Shifts, 1)
	assert.Equal(t, "2022-01-02T17:00", got.Shifts[0].Start.Format("2006-01-02T15:04"))
	assert.Equal(t, "2022-01-03T09:00", got.Shifts[0].End.Format("2006-01-02T15:04"))
	assert.Equal(t, "272", got.Shifts[0].ShiftBill.String())
}

func TestCalculator_TotalsMatchShiftSums(t *testing.T) {
	loc := warsaw(t)

	input := []entity.RawShift{
		shift("2022-03-02 17:00", "2022-03-03 09:00"),
		shift("2022-03-05 09:00", "2022-03-07 09:00"),
		shift("2022-03-26 17:00", "2022-03-27 09:00"),
		shift("2022-02-27 09:00", "2022-03-02 09:00"),
		shift("2022-03-31 17:00", "2022-04-02 09:00"),
	}

	got, err := payroll.NewCalculator(loc).Calculate(input, entity.Period{Year: 2022, Month: 3}, 12.5)
	require.NoError(t, err)

	var hours, days int
	bill := decimal.Zero
	for _, s := range got.Shifts {
		hours += s.HoursInShift
		days += s.DaysInShift
		bill = bill.Add(s.ShiftBill)
	}

	assert.Equal(t, hours, got.TotalHours)
	assert.Equal(t, days, got.TotalDays)
	assert.True(t, bill.Equal(got.Bill))
}

func TestCalculator_PreservesInputOrder(t *testing.T) {
	loc := warsaw(t)

	input := []entity.RawShift{
		shift("2022-01-20 17:00", "2022-01-21 09:00"),
		shift("2021-12-01 17:00", "2021-12-02 09:00"),
		shift("2022-01-05 17:00", "2022-01-06 09:00"),
		shift("2022-01-10 17:00", "2022-01-11 09:00"),
	}

	got, err := payroll.NewCalculator(loc).Calculate(input, entity.Period{Year: 2022, Month: 1}, rate)
	require.NoError(t, err)

	require.Len(t, got.Shifts, 3)
	assert.Equal(t, 20, got.Shifts[0].Start.Day())
	assert.Equal(t, 5, got.Shifts[1].Start.Day())
	assert.Equal(t, 10, got.Shifts[2].Start.Day())
}

func TestCalculator_InvalidRate(t *testing.T) {
	calc := payroll.NewCalculator(time.UTC)

	for _, r := range []float64{0, -1} {
		_, err := calc.Calculate(nil, entity.Period{Year: 2022, Month: 1}, r)
		var rateErr *payroll.InvalidRateError
		require.ErrorAs(t, err, &rateErr)
		assert.Equal(t, r, rateErr.Rate)
	}
}

func TestCalculator_NonFiniteRate(t *testing.T) {
	calc := payroll.NewCalculator(time.UTC)
	zero := 0.0

	for _, r := range []float64{zero / zero, 1 / zero, -1 / zero} {
		_, err := calc.Calculate(nil, entity.Period{Year: 2022, Month: 1}, r)
		var rateErr *payroll.InvalidRateError
		assert.ErrorAs(t, err, &rateErr)
	}
}

func TestCalculator_InvalidMonth(t *testing.T) {
	_, err := payroll.NewCalculator(time.UTC).Calculate(nil, entity.Period{Year: 2022, Month: 13}, rate)

	var monthErr *payroll.InvalidMonthError
	require.ErrorAs(t, err, &monthErr)
	assert.Equal(t, 13, monthErr.Month)
}

func TestCalculator_MalformedShift(t *testing.T) {
	input := []entity.RawShift{
		shift("2022-01-02 17:00", "2022-01-03 09:00"),
		shift("2022-01-04 17:00", "not-a-date"),
	}

	_, err := payroll.NewCalculator(time.UTC).Calculate(input, entity.Period{Year: 2022, Month: 1}, rate)

	var malformed *payroll.MalformedShiftError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, 1, malformed.Index)
	assert.Equal(t, "end", malformed.Field)
	assert.Equal(t, "not-a-date", malformed.Value)
}

func TestCalculator_MalformedShiftOutsideMonthStillFails(t *testing.T) {
	input := []entity.RawShift{shift("garbage", "2021-06-01 09:00")}

	_, err := payroll.NewCalculator(time.UTC).Calculate(input, entity.Period{Year: 2022, Month: 1}, rate)

	var malformed *payroll.MalformedShiftError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, "start", malformed.Field)
}

func TestHoursInShift(t *testing.T) {
	loc := warsaw(t)

	assert.Equal(t, 15, payroll.HoursInShift(at(t, loc, "2023-03-25 17:00"), at(t, loc, "2023-03-26 09:00")))
	assert.Equal(t, 17, payroll.HoursInShift(at(t, loc, "2023-10-28 17:00"), at(t, loc, "2023-10-29 09:00")))
	assert.Equal(t, 0, payroll.HoursInShift(at(t, loc, "2022-01-02 17:00"), at(t, loc, "2022-01-02 17:59")))
	assert.Equal(t, 0, payroll.HoursInShift(at(t, loc, "2022-01-02 17:00"), at(t, loc, "2022-01-02 16:00")))
}

func TestDaysInShift(t *testing.T) {
	loc := warsaw(t)

	tests := []struct {
		name       string
		start, end string
		want       int
	}{
		{"same day", "2022-01-02 09:00", "2022-01-02 17:00", 1},
		{"overnight", "2022-01-02 17:00", "2022-01-03 09:00", 1},
		// 40 hours: calendar difference and ceil(hours/24) agree
		{"forty hours", "2022-01-03 17:00", "2022-01-05 09:00", 2},
		// 25 hours over one date boundary: pinned to the calendar difference, not ceil(25/24)
		{"twenty five hours", "2022-01-10 08:00", "2022-01-11 09:00", 1},
		{"week", "2022-01-10 09:00", "2022-01-17 09:00", 7},
		{"across spring-forward", "2023-03-25 00:00", "2023-03-27 00:00", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, payroll.DaysInShift(at(t, loc, tt.start), at(t, loc, tt.end)))
		})
	}
}

func TestAggregate_UsesDecimalRate(t *testing.T) {
	loc := warsaw(t)
	window := january2022(t, loc)

	got := payroll.Aggregate(
		[]payroll.Interval{interval(t, loc, "2022-01-02 17:00", "2022-01-03 09:00")},
		window,
		decimal.RequireFromString("10.10"),
	)

	assert.Equal(t, "161.6", got.Bill.String())
}
