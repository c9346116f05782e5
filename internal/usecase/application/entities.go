package application

import "time"

type SubmitInput struct {
	LoanID string  `json:"loan_id"`
	Email  string  `json:"email"`
	Amount float64 `json:"amount"`
}

type PaymentInput struct {
	TransactionID string    `json:"transaction_id"`
	Amount        float64   `json:"amount"`
	PaidAt        time.Time `json:"paid_at"`
}

type ApplicationDTO struct {
	ApplicationID string     `json:"application_id"`
	LoanID        string     `json:"loan_id"`
	LoanTitle     string     `json:"loan_title"`
	Email         string     `json:"email"`
	Amount        float64    `json:"amount"`
	Status        string     `json:"status"`
	FeeStatus     string     `json:"fee_status"`
	TransactionID *string    `json:"transaction_id,omitempty"`
	PaidAmount    *float64   `json:"paid_amount,omitempty"`
	PaidAt        *time.Time `json:"paid_at,omitempty"`
	ApprovedAt    *time.Time `json:"approved_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}
