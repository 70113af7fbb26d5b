package paydate

import (
	"time"

	"paydate-engine/internal/calendar"
)

func day(year int, month time.Month, d int) calendar.Instant {
	return calendar.Date(year, month, d)
}

// holidays2018 is the US federal holiday list the due date examples are
// computed against.
func holidays2018() calendar.HolidaySet {
	return calendar.NewHolidaySet(
		day(2018, time.January, 1),
		day(2018, time.January, 15),
		day(2018, time.February, 19),
		day(2018, time.May, 28),
		day(2018, time.July, 4),
		day(2018, time.September, 3),
		day(2018, time.October, 8),
		day(2018, time.November, 12),
		day(2018, time.November, 22),
		day(2018, time.December, 25),
	)
}
