package engine

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"paydate-engine/internal/calendar"
	"paydate-engine/internal/holidays"
	"paydate-engine/internal/model"
	"paydate-engine/internal/paydate"
)

// Engine resolves due dates for a batch of loans sharing one holiday set.
type Engine struct {
	calc      paydate.Calculator
	calendars *holidays.Registry
	log       *logrus.Logger
}

func New(calc paydate.Calculator, calendars *holidays.Registry, log *logrus.Logger) *Engine {
	if calendars == nil {
		calendars = holidays.NewRegistry()
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Engine{calc: calc, calendars: calendars, log: log}
}

// messages collects calculation messages and assigns their ids.
type messages struct {
	list        []model.CalculationMessage
	hasCritical bool
}

func (m *messages) add(level, code, format string, args ...interface{}) int {
	id := len(m.list)
	m.list = append(m.list, model.CalculationMessage{
		ID:      id,
		Level:   level,
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	})
	if level == model.LevelCritical {
		m.hasCritical = true
	}
	return id
}

func (e *Engine) Process(req *model.CalculationRequest) *model.CalculationResponse {
	start := time.Now()

	msgs := &messages{}
	outcome := model.OutcomeSuccess

	holidaySet, sharedIndexes := e.holidays(req, msgs)
	sharedFailed := msgs.hasCritical

	dueDates := make([]model.DueDateResult, 0, len(req.Loans))
	for _, loan := range req.Loans {
		result := model.DueDateResult{LoanID: loan.LoanID}

		if sharedFailed {
			result.CalculationMessageIndexes = sharedIndexes
			dueDates = append(dueDates, result)
			outcome = model.OutcomeFailure
			continue
		}

		res, indexes, ok := e.resolve(loan, holidaySet, msgs)
		result.CalculationMessageIndexes = indexes
		if ok {
			due := res.DueDate.String()
			nominal := res.Nominal.String()
			result.DueDate = &due
			result.NominalDate = &nominal
			result.Iterations = res.Iterations
		} else {
			outcome = model.OutcomeFailure
		}
		dueDates = append(dueDates, result)
	}

	elapsed := time.Since(start)
	now := time.Now().UTC()

	allMessages := msgs.list
	if allMessages == nil {
		allMessages = []model.CalculationMessage{}
	}

	calculationID := uuid.New().String()
	e.log.WithFields(logrus.Fields{
		"calculation_id": calculationID,
		"tenant_id":      req.TenantID,
		"loans":          len(req.Loans),
		"messages":       len(allMessages),
		"outcome":        outcome,
		"duration_ms":    elapsed.Milliseconds(),
	}).Info("Due date calculation completed")

	return &model.CalculationResponse{
		CalculationMetadata: model.CalculationMetadata{
			CalculationID:          calculationID,
			TenantID:               req.TenantID,
			CalculationStartedAt:   now.Add(-elapsed).Format(time.RFC3339),
			CalculationCompletedAt: now.Format(time.RFC3339),
			CalculationDurationMs:  elapsed.Milliseconds(),
			CalculationOutcome:     outcome,
		},
		CalculationResult: model.CalculationResult{
			Messages: allMessages,
			DueDates: dueDates,
		},
	}
}

// holidays merges the named calendar with the inline holiday list. Problems
// are reported once and shared by every loan of the request.
func (e *Engine) holidays(req *model.CalculationRequest, msgs *messages) (calendar.HolidaySet, []int) {
	var indexes []int
	set := calendar.NewHolidaySet()

	if req.HolidayCalendar != "" {
		named, err := e.calendars.Get(req.HolidayCalendar)
		if err != nil {
			indexes = append(indexes, msgs.add(model.LevelCritical, model.CodeUnknownHolidayCalendar,
				"Unknown holiday calendar: %s", req.HolidayCalendar))
		} else {
			set = set.Union(named)
		}
	}

	for i, s := range req.Holidays {
		d, err := calendar.Parse(s)
		if err != nil {
			indexes = append(indexes, msgs.add(model.LevelCritical, model.CodeInvalidHoliday,
				"Holiday %d is not a valid date: %q", i, s))
			continue
		}
		set.Add(d)
	}

	return set, indexes
}

func (e *Engine) resolve(loan model.FundingRecord, holidaySet calendar.HolidaySet, msgs *messages) (paydate.Result, []int, bool) {
	var indexes []int
	critical := false

	fundDay, err := calendar.Parse(loan.FundDay)
	if err != nil {
		indexes = append(indexes, msgs.add(model.LevelCritical, model.CodeInvalidFundDay,
			"Fund day is not a valid date: %q", loan.FundDay))
		critical = true
	}

	payDay, err := calendar.Parse(loan.PayDay)
	if err != nil {
		indexes = append(indexes, msgs.add(model.LevelCritical, model.CodeInvalidPayDay,
			"Pay day is not a valid date: %q", loan.PayDay))
		critical = true
	}

	span := paydate.PaySpan(loan.PaySpan)
	if !span.Known() {
		if e.calc.Strict {
			indexes = append(indexes, msgs.add(model.LevelCritical, model.CodeUnknownPaySpan,
				"Unknown pay span: %q", loan.PaySpan))
			critical = true
		} else {
			indexes = append(indexes, msgs.add(model.LevelWarning, model.CodeUnknownPaySpan,
				"Unknown pay span %q, using a 30 day cadence", loan.PaySpan))
		}
	}

	if critical {
		return paydate.Result{}, indexes, false
	}

	res, err := e.calc.DueDate(paydate.FundingRecord{
		FundDay:       fundDay,
		PaySpan:       span,
		KnownPayDay:   payDay,
		DirectDeposit: loan.DirectDeposit,
		Holidays:      holidaySet,
	})
	if err != nil {
		code := model.CodeCalculationFailed
		if errors.Is(err, paydate.ErrUnboundedAdjustment) {
			code = model.CodeUnboundedAdjustment
		}
		indexes = append(indexes, msgs.add(model.LevelCritical, code, "%v", err))
		return paydate.Result{}, indexes, false
	}

	return res, indexes, true
}
