package dto

import "time"

type TransactionRequestDTO struct {
	Amount      float64 `json:"amount" example:"125.5"`
	Description string  `json:"description" example:"groceries"`
}

type TransactionResponseDTO struct {
	ID          int64     `json:"id" example:"42"`
	Kind        string    `json:"kind" example:"Debit"`
	Amount      float64   `json:"amount" example:"125.5"`
	Description string    `json:"description" example:"groceries"`
	Timestamp   time.Time `json:"timestamp" example:"2025-03-31T16:09:57+03:00"`
}

type SummaryResponseDTO struct {
	Balance         float64 `json:"balance" example:"1040.25"`
	Savings         float64 `json:"savings" example:"52.3"`
	LoanOutstanding float64 `json:"loan_outstanding" example:"1050"`
}
