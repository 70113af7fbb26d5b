package model

type CalculationRequest struct {
	TenantID        string          `json:"tenant_id"`
	HolidayCalendar string          `json:"holiday_calendar,omitempty"`
	Holidays        []string        `json:"holidays,omitempty"`
	Loans           []FundingRecord `json:"loans"`
}

type FundingRecord struct {
	LoanID        string `json:"loan_id"`
	FundDay       string `json:"fund_day"`
	PayDay        string `json:"pay_day"`
	PaySpan       string `json:"pay_span"`
	DirectDeposit bool   `json:"direct_deposit"`
}
