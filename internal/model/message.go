package model

type CalculationMessage struct {
	ID      int    `json:"id"`
	Level   string `json:"level"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

const (
	LevelCritical = "CRITICAL"
	LevelWarning  = "WARNING"
)

const (
	CodeInvalidFundDay         = "INVALID_FUND_DAY"
	CodeInvalidPayDay          = "INVALID_PAY_DAY"
	CodeInvalidHoliday         = "INVALID_HOLIDAY"
	CodeUnknownHolidayCalendar = "UNKNOWN_HOLIDAY_CALENDAR"
	CodeUnknownPaySpan         = "UNKNOWN_PAY_SPAN"
	CodeUnboundedAdjustment    = "UNBOUNDED_ADJUSTMENT"
	CodeCalculationFailed      = "CALCULATION_FAILED"
)
