package model

type CalculationResponse struct {
	CalculationMetadata CalculationMetadata `json:"calculation_metadata"`
	CalculationResult   CalculationResult   `json:"calculation_result"`
}

type CalculationMetadata struct {
	CalculationID          string `json:"calculation_id"`
	TenantID               string `json:"tenant_id"`
	CalculationStartedAt   string `json:"calculation_started_at"`
	CalculationCompletedAt string `json:"calculation_completed_at"`
	CalculationDurationMs  int64  `json:"calculation_duration_ms"`
	CalculationOutcome     string `json:"calculation_outcome"`
}

type CalculationResult struct {
	Messages []CalculationMessage `json:"messages"`
	DueDates []DueDateResult      `json:"due_dates"`
}

// DueDateResult is the outcome for one loan. DueDate and NominalDate are null
// when a critical message stopped the calculation.
type DueDateResult struct {
	LoanID                    string  `json:"loan_id"`
	DueDate                   *string `json:"due_date"`
	NominalDate               *string `json:"nominal_date"`
	Iterations                int     `json:"iterations"`
	CalculationMessageIndexes []int   `json:"calculation_message_indexes,omitempty"`
}

type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

const (
	OutcomeSuccess = "SUCCESS"
	OutcomeFailure = "FAILURE"
)
