// Package paydate resolves the due date of a loan repayment from the funding
// date, the borrower's pay cadence and a set of holidays.
package paydate

import (
	"errors"

	"paydate-engine/internal/calendar"
)

// PaySpan is the borrower's pay cadence. Values other than the named
// constants fall back to a 30-day cadence.
type PaySpan string

const (
	Weekly   PaySpan = "weekly"
	BiWeekly PaySpan = "bi-weekly"
	Monthly  PaySpan = "monthly"
)

const (
	// MinimumDays is the minimum distance from the fund day to the due date.
	MinimumDays = 10

	// DefaultMaxShifts bounds the number of single-step moves Adjust makes.
	DefaultMaxShifts = 32

	otherCadenceDays = 30
)

var (
	ErrInvalidInstant      = errors.New("invalid instant")
	ErrUnboundedAdjustment = errors.New("non-payday adjustment did not settle")
	ErrUnknownPaySpan      = errors.New("unknown pay span")
)

// Known reports whether p is one of the recognized cadences.
func (p PaySpan) Known() bool {
	switch p {
	case Weekly, BiWeekly, Monthly:
		return true
	}
	return false
}

// FundingRecord is the complete input to one due date computation.
type FundingRecord struct {
	FundDay       calendar.Instant
	PaySpan       PaySpan
	KnownPayDay   calendar.Instant
	DirectDeposit bool
	Holidays      calendar.HolidaySet
}
