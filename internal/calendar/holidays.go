package calendar

import (
	"fmt"
	"sort"
)

// HolidaySet is an unordered set of holidays. Membership is exact Instant
// equality, so every member must be midday-normalized.
type HolidaySet map[Instant]struct{}

func NewHolidaySet(days ...Instant) HolidaySet {
	h := make(HolidaySet, len(days))
	h.Add(days...)
	return h
}

// ParseHolidays builds a set from "YYYY-MM-DD" strings, failing on the first
// malformed entry.
func ParseHolidays(dates []string) (HolidaySet, error) {
	h := make(HolidaySet, len(dates))
	for i, s := range dates {
		d, err := Parse(s)
		if err != nil {
			return nil, fmt.Errorf("holiday %d: %w", i, err)
		}
		h.Add(d)
	}
	return h, nil
}

func (h HolidaySet) Add(days ...Instant) {
	for _, d := range days {
		h[d] = struct{}{}
	}
}

// Contains is safe to call on a nil set.
func (h HolidaySet) Contains(i Instant) bool {
	_, ok := h[i]
	return ok
}

// Union returns a new set holding the members of h and every other set.
func (h HolidaySet) Union(others ...HolidaySet) HolidaySet {
	out := make(HolidaySet, len(h))
	for d := range h {
		out[d] = struct{}{}
	}
	for _, o := range others {
		for d := range o {
			out[d] = struct{}{}
		}
	}
	return out
}

// Sorted returns the members in ascending order.
func (h HolidaySet) Sorted() []Instant {
	days := make([]Instant, 0, len(h))
	for d := range h {
		days = append(days, d)
	}
	sort.Slice(days, func(a, b int) bool { return days[a] < days[b] })
	return days
}
