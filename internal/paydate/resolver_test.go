package paydate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"paydate-engine/internal/calendar"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name          string
		fundDay       calendar.Instant
		payDay        calendar.Instant
		span          PaySpan
		directDeposit bool
		want          calendar.Instant
	}{
		{
			name:    "weekly, paper check",
			fundDay: day(2018, time.May, 10), payDay: day(2018, time.May, 7), span: Weekly,
			want: day(2018, time.May, 22),
		},
		{
			name:    "weekly, pay day from previous month",
			fundDay: day(2018, time.September, 5), payDay: day(2018, time.August, 27), span: Weekly,
			want: day(2018, time.September, 28),
		},
		{
			name:    "bi-weekly, pay day ahead of funding",
			fundDay: day(2018, time.May, 31), payDay: day(2018, time.June, 11), span: BiWeekly, directDeposit: true,
			want: day(2018, time.June, 22),
		},
		{
			name:    "bi-weekly, pay day behind funding",
			fundDay: day(2018, time.June, 11), payDay: day(2018, time.June, 4), span: BiWeekly, directDeposit: true,
			want: day(2018, time.July, 2),
		},
		{
			name:    "monthly, lands on independence day",
			fundDay: day(2018, time.June, 11), payDay: day(2018, time.June, 4), span: Monthly, directDeposit: true,
			want: day(2018, time.July, 3),
		},
		{
			name:    "monthly, pay day ahead of funding",
			fundDay: day(2018, time.June, 4), payDay: day(2018, time.June, 11), span: Monthly, directDeposit: true,
			want: day(2018, time.July, 11),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(tt.fundDay, holidays2018(), tt.span, tt.payDay, tt.directDeposit)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got, "got %s", got)
		})
	}
}

func TestDueDateTrace(t *testing.T) {
	res, err := Calculator{}.DueDate(FundingRecord{
		FundDay:     day(2018, time.May, 10),
		PaySpan:     Weekly,
		KnownPayDay: day(2018, time.May, 7),
		Holidays:    holidays2018(),
	})
	require.NoError(t, err)

	assert.Equal(t, 3, res.Iterations)
	assert.Equal(t, day(2018, time.May, 22), res.DueDate)
	assert.Equal(t, day(2018, time.May, 22), res.Nominal)
	assert.Equal(t, []Step{
		{Iteration: 0, Projected: day(2018, time.May, 7), Candidate: day(2018, time.May, 8), Adjusted: day(2018, time.May, 8)},
		{Iteration: 1, Projected: day(2018, time.May, 14), Candidate: day(2018, time.May, 15), Adjusted: day(2018, time.May, 15)},
		{Iteration: 2, Projected: day(2018, time.May, 21), Candidate: day(2018, time.May, 22), Adjusted: day(2018, time.May, 22)},
	}, res.Steps)
}

func TestDueDateAcceptsAdjustedDate(t *testing.T) {
	// The paper check candidate (Sat Jan 20) is a day short of the minimum
	// (Jan 21), but the weekend shift carries it to Monday, which is accepted.
	res, err := Calculator{}.DueDate(FundingRecord{
		FundDay:     day(2018, time.January, 11),
		PaySpan:     Weekly,
		KnownPayDay: day(2018, time.January, 5),
		Holidays:    holidays2018(),
	})
	require.NoError(t, err)

	assert.Equal(t, day(2018, time.January, 22), res.DueDate)
	assert.Equal(t, day(2018, time.January, 20), res.Nominal)
	assert.Less(t, int64(res.Nominal), int64(day(2018, time.January, 21)))
}

func TestDueDateRejectsCandidatePulledBelowMinimum(t *testing.T) {
	// Iteration 0 projects Sun Jan 14, past the minimum of Jan 13. The weekend
	// shift hits the Monday holiday and moves back to Fri Jan 12, below the
	// minimum, so the search continues to the next payday.
	res, err := Calculator{}.DueDate(FundingRecord{
		FundDay:       day(2018, time.January, 3),
		PaySpan:       Weekly,
		KnownPayDay:   day(2017, time.December, 14),
		DirectDeposit: true,
		Holidays:      holidays2018(),
	})
	require.NoError(t, err)

	require.Len(t, res.Steps, 2)
	assert.Equal(t, day(2018, time.January, 14), res.Steps[0].Candidate)
	assert.Equal(t, day(2018, time.January, 12), res.Steps[0].Adjusted)
	assert.Equal(t, day(2018, time.January, 22), res.DueDate)
}

func TestDueDateProperties(t *testing.T) {
	holidays := holidays2018()
	spans := []PaySpan{Weekly, BiWeekly, Monthly, "other"}

	for fund := day(2018, time.January, 1); fund <= day(2018, time.December, 1); fund = fund.AddDays(3) {
		for gap := -20; gap <= 20; gap += 3 {
			for _, span := range spans {
				rec := FundingRecord{
					FundDay:     fund,
					PaySpan:     span,
					KnownPayDay: fund.AddDays(gap),
					Holidays:    holidays,
				}

				rec.DirectDeposit = true
				direct, err := Calculator{}.DueDate(rec)
				require.NoError(t, err)

				rec.DirectDeposit = false
				paper, err := Calculator{}.DueDate(rec)
				require.NoError(t, err)

				for _, res := range []Result{direct, paper} {
					assert.GreaterOrEqual(t, int64(res.DueDate), int64(fund.AddDays(MinimumDays)))
					assert.False(t, res.DueDate.IsWeekend(), "weekend due date %s", res.DueDate)
					assert.False(t, holidays.Contains(res.DueDate), "holiday due date %s", res.DueDate)
				}

				n := len(direct.Steps)
				if len(paper.Steps) < n {
					n = len(paper.Steps)
				}
				for i := 0; i < n; i++ {
					assert.Equal(t, direct.Steps[i].Projected, paper.Steps[i].Projected)
					assert.Equal(t, direct.Steps[i].Candidate.AddDays(1), paper.Steps[i].Candidate)
					assert.GreaterOrEqual(t, int64(paper.Steps[i].Adjusted), int64(direct.Steps[i].Adjusted))
				}
			}
		}
	}
}

func TestDueDateHolidayMonday(t *testing.T) {
	// Bi-weekly paydays every other Monday; Memorial Day is one of them.
	res, err := Calculator{}.DueDate(FundingRecord{
		FundDay:       day(2018, time.May, 14),
		PaySpan:       BiWeekly,
		KnownPayDay:   day(2018, time.May, 14),
		DirectDeposit: true,
		Holidays:      holidays2018(),
	})
	require.NoError(t, err)

	assert.Equal(t, day(2018, time.May, 28), res.Nominal)
	assert.Equal(t, day(2018, time.May, 25), res.DueDate)
}

func TestDueDateErrors(t *testing.T) {
	valid := FundingRecord{
		FundDay:     day(2018, time.May, 10),
		PaySpan:     Weekly,
		KnownPayDay: day(2018, time.May, 7),
	}

	t.Run("fund day not at midday", func(t *testing.T) {
		rec := valid
		rec.FundDay = calendar.Instant(1525910400)
		_, err := Calculator{}.DueDate(rec)
		assert.ErrorIs(t, err, ErrInvalidInstant)
	})

	t.Run("pay day out of range", func(t *testing.T) {
		rec := valid
		rec.KnownPayDay = day(10000, time.January, 3)
		_, err := Calculator{}.DueDate(rec)
		assert.ErrorIs(t, err, ErrInvalidInstant)
	})

	t.Run("unknown pay span in strict mode", func(t *testing.T) {
		rec := valid
		rec.PaySpan = "fortnightly"
		_, err := Calculator{Strict: true}.DueDate(rec)
		assert.ErrorIs(t, err, ErrUnknownPaySpan)

		res, err := Calculator{}.DueDate(rec)
		require.NoError(t, err)
		assert.Equal(t, day(2018, time.June, 7), res.DueDate)
	})

	t.Run("adjustment does not settle", func(t *testing.T) {
		rec := valid
		rec.Holidays = calendar.NewHolidaySet(day(2018, time.May, 20))
		rec.KnownPayDay = day(2018, time.May, 19)
		rec.DirectDeposit = true
		_, err := Calculator{MaxShifts: 8}.DueDate(rec)
		assert.ErrorIs(t, err, ErrUnboundedAdjustment)
	})
}
