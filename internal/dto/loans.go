package dto

import "time"

type ApplyLoanRequestDTO struct {
	Principal    float64 `json:"principal" example:"1000"`
	Rate         float64 `json:"rate" example:"0.05"`
	PeriodMonths int     `json:"period_months" example:"2"`
}

type LoanResponseDTO struct {
	ID           int       `json:"id" example:"7"`
	Principal    float64   `json:"principal" example:"1000"`
	Rate         float64   `json:"rate" example:"0.05"`
	PeriodMonths int       `json:"period_months" example:"2"`
	Outstanding  float64   `json:"outstanding" example:"1050"`
	Status       string    `json:"status" example:"active"`
	CreatedAt    time.Time `json:"created_at" example:"2025-03-01T10:00:00+03:00"`
}

type LoanReminderDTO struct {
	LoanID      int       `json:"loan_id" example:"7"`
	Outstanding float64   `json:"outstanding" example:"525"`
	DueDate     time.Time `json:"due_date" example:"2025-05-01T00:00:00+03:00"`
	DaysLeft    int       `json:"days_left" example:"3"`
}
