package loan

import "time"

type CreateInput struct {
	Title          string  `json:"title"`
	Category       string  `json:"category"`
	Description    string  `json:"description"`
	MinAmount      float64 `json:"min_amount"`
	MaxAmount      float64 `json:"max_amount"`
	InterestRate   float64 `json:"interest_rate"`
	TermMonths     int     `json:"term_months"`
	ApplicationFee float64 `json:"application_fee"`
	ShowOnHome     bool    `json:"show_on_home"`
}

type UpdateInput struct {
	Title          *string  `json:"title"`
	Category       *string  `json:"category"`
	Description    *string  `json:"description"`
	MinAmount      *float64 `json:"min_amount"`
	MaxAmount      *float64 `json:"max_amount"`
	InterestRate   *float64 `json:"interest_rate"`
	TermMonths     *int     `json:"term_months"`
	ApplicationFee *float64 `json:"application_fee"`
	ShowOnHome     *bool    `json:"show_on_home"`
}

type ListInput struct {
	Search   string
	Category string
	Page     int
	Limit    int
}

type LoanDTO struct {
	LoanID         string    `json:"loan_id"`
	ManagerEmail   string    `json:"manager_email"`
	Title          string    `json:"title"`
	Category       string    `json:"category"`
	Description    string    `json:"description"`
	MinAmount      float64   `json:"min_amount"`
	MaxAmount      float64   `json:"max_amount"`
	InterestRate   float64   `json:"interest_rate"`
	TermMonths     int       `json:"term_months"`
	ApplicationFee float64   `json:"application_fee"`
	ShowOnHome     bool      `json:"show_on_home"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type ListResult struct {
	Total int64     `json:"total"`
	Page  int       `json:"page"`
	Limit int       `json:"limit"`
	Data  []LoanDTO `json:"data"`
}
