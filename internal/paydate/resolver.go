package paydate

import (
	"fmt"

	"paydate-engine/internal/calendar"
)

// Calculator resolves due dates. The zero value uses DefaultMaxShifts and
// accepts unknown pay spans with the 30-day fallback.
type Calculator struct {
	MaxShifts int
	// Strict rejects pay spans other than Weekly, BiWeekly and Monthly.
	Strict bool
}

// Step records one iteration of the search.
type Step struct {
	Iteration int
	Projected calendar.Instant
	Candidate calendar.Instant
	Adjusted  calendar.Instant
}

type Result struct {
	DueDate calendar.Instant
	// Nominal is the candidate of the accepting iteration before weekend and
	// holiday adjustment, direct deposit lag included.
	Nominal    calendar.Instant
	Iterations int
	Steps      []Step
}

// Resolve returns the due date for one funding using a zero Calculator.
func Resolve(fundDay calendar.Instant, holidays calendar.HolidaySet, span PaySpan, knownPayDay calendar.Instant, directDeposit bool) (calendar.Instant, error) {
	res, err := Calculator{}.DueDate(FundingRecord{
		FundDay:       fundDay,
		PaySpan:       span,
		KnownPayDay:   knownPayDay,
		DirectDeposit: directDeposit,
		Holidays:      holidays,
	})
	if err != nil {
		return 0, err
	}
	return res.DueDate, nil
}

// DueDate walks the projected paydays until the adjusted candidate is at
// least MinimumDays after the fund day. The check runs on the adjusted date,
// so a backward holiday shift on the accepting iteration can leave the result
// short of the minimum.
func (c Calculator) DueDate(rec FundingRecord) (Result, error) {
	if !rec.FundDay.Valid() {
		return Result{}, fmt.Errorf("%w: fund day %d", ErrInvalidInstant, int64(rec.FundDay))
	}
	if !rec.KnownPayDay.Valid() {
		return Result{}, fmt.Errorf("%w: pay day %d", ErrInvalidInstant, int64(rec.KnownPayDay))
	}
	if c.Strict && !rec.PaySpan.Known() {
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownPaySpan, string(rec.PaySpan))
	}

	maxShifts := c.MaxShifts
	if maxShifts <= 0 {
		maxShifts = DefaultMaxShifts
	}

	minimum := rec.FundDay.AddDays(MinimumDays)

	var res Result
	for iteration := 0; iteration == 0 || res.DueDate < minimum; iteration++ {
		projected := NextPayday(rec.FundDay, rec.PaySpan, rec.KnownPayDay, iteration)

		candidate := projected
		if !rec.DirectDeposit {
			candidate = candidate.AddDays(1)
		}

		adjusted, err := adjust(candidate, rec.Holidays, maxShifts)
		if err != nil {
			return Result{}, fmt.Errorf("iteration %d: %w", iteration, err)
		}

		res.Steps = append(res.Steps, Step{
			Iteration: iteration,
			Projected: projected,
			Candidate: candidate,
			Adjusted:  adjusted,
		})
		res.DueDate = adjusted
		res.Nominal = candidate
		res.Iterations = iteration + 1
	}

	return res, nil
}
