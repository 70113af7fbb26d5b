package paydate

import "paydate-engine/internal/calendar"

// cadenceDays returns the number of days between paydays for span. Monthly
// uses the length of the funding month for every iteration.
func cadenceDays(fundDay calendar.Instant, span PaySpan) int {
	switch span {
	case Weekly:
		return 7
	case BiWeekly:
		return 14
	case Monthly:
		return fundDay.DaysInMonth()
	default:
		return otherCadenceDays
	}
}

// NextPayday projects the payday iteration periods after the pay day aligned
// with fundDay. Alignment is done on day of month: the result is fundDay moved
// by the cadence offset minus the day-of-month gap between fundDay and
// knownPayDay. When the known pay day is still ahead of funding, iteration 0
// is that pay day itself.
func NextPayday(fundDay calendar.Instant, span PaySpan, knownPayDay calendar.Instant, iteration int) calendar.Instant {
	cadence := 0
	if knownPayDay <= fundDay || iteration != 0 {
		cadence = cadenceDays(fundDay, span)
	}

	offset := fundDay.DayOfMonth() - knownPayDay.DayOfMonth()
	remaining := cadence*iteration - offset

	return fundDay.AddDays(remaining)
}
