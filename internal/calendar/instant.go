// Package calendar holds the day-granularity time model used by the due date
// calculation. Every Instant is a civil date pinned to 12:00 UTC, so adding
// whole days never crosses a day boundary.
package calendar

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/civil"
)

// Instant is a count of seconds since the Unix epoch, normalized to midday UTC.
type Instant int64

const (
	// Day is the length of one calendar day in Instant units.
	Day Instant = 86400

	midday = 12 * 60 * 60
)

var ErrInvalidDate = errors.New("invalid date")

var (
	minInstant = Date(1, time.January, 1)
	maxInstant = Date(9999, time.December, 31)
)

// Date returns the Instant for the given civil date.
func Date(year int, month time.Month, day int) Instant {
	return Instant(time.Date(year, month, day, 12, 0, 0, 0, time.UTC).Unix())
}

// FromCivil converts a civil date into an Instant.
func FromCivil(d civil.Date) Instant {
	return Date(d.Year, d.Month, d.Day)
}

// FromTime pins the civil date of t, as seen in t's location, to midday UTC.
func FromTime(t time.Time) Instant {
	return Date(t.Date())
}

// Parse reads a "YYYY-MM-DD" date.
func Parse(s string) (Instant, error) {
	d, err := civil.ParseDate(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w %q: %v", ErrInvalidDate, s, err)
	}
	return FromCivil(d), nil
}

// Valid reports whether i is midday-normalized and within years 1 to 9999.
func (i Instant) Valid() bool {
	r := int64(i) % int64(Day)
	if r < 0 {
		r += int64(Day)
	}
	return r == midday && i >= minInstant && i <= maxInstant
}

func (i Instant) Time() time.Time {
	return time.Unix(int64(i), 0).UTC()
}

func (i Instant) Civil() civil.Date {
	return civil.DateOf(i.Time())
}

// AddDays shifts i by n whole days.
func (i Instant) AddDays(n int) Instant {
	return i + Instant(n)*Day
}

// Weekday returns the ISO weekday, Monday=1 through Sunday=7.
func (i Instant) Weekday() int {
	wd := i.Time().Weekday()
	if wd == time.Sunday {
		return 7
	}
	return int(wd)
}

func (i Instant) IsWeekend() bool {
	return i.Weekday() >= 6
}

func (i Instant) DayOfMonth() int {
	return i.Time().Day()
}

// DaysInMonth returns the length of the month containing i.
func (i Instant) DaysInMonth() int {
	t := i.Time()
	return time.Date(t.Year(), t.Month()+1, 0, 12, 0, 0, 0, time.UTC).Day()
}

func (i Instant) Format(layout string) string {
	return i.Time().Format(layout)
}

func (i Instant) String() string {
	return i.Civil().String()
}
