package paydate

import (
	"fmt"

	"paydate-engine/internal/calendar"
)

// Adjust moves candidate off weekends and holidays using DefaultMaxShifts.
func Adjust(candidate calendar.Instant, holidays calendar.HolidaySet) (calendar.Instant, error) {
	return adjust(candidate, holidays, DefaultMaxShifts)
}

// adjust applies the non-payday rule until candidate settles. A holiday always
// wins over a weekend: a holiday moves the date back one day, or back to the
// preceding Friday when it is a Monday. A weekend day moves it forward one day.
func adjust(candidate calendar.Instant, holidays calendar.HolidaySet, maxShifts int) (calendar.Instant, error) {
	start := candidate
	for shifts := 0; ; shifts++ {
		var next calendar.Instant
		switch {
		case holidays.Contains(candidate):
			if candidate.Weekday() == 1 {
				next = candidate.AddDays(-3)
			} else {
				next = candidate.AddDays(-1)
			}
		case candidate.IsWeekend():
			next = candidate.AddDays(1)
		default:
			return candidate, nil
		}

		if shifts >= maxShifts {
			return 0, fmt.Errorf("%w: %s still unsettled after %d shifts", ErrUnboundedAdjustment, start, maxShifts)
		}
		candidate = next
	}
}
