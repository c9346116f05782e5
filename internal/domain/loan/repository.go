package loan

import "context"

type ListFilter struct {
	Search   string // case-insensitive contains on title
	Category string // exact match
	Page     int
	Limit    int
}

type Repository interface {
	Create(ctx context.Context, l *Loan) error
	GetByLoanID(ctx context.Context, loanID string) (*Loan, error)
	List(ctx context.Context, f ListFilter) ([]Loan, int64, error)
	ListByManager(ctx context.Context, managerEmail string) ([]Loan, error)
	Featured(ctx context.Context) ([]Loan, error)
	Count(ctx context.Context) (int64, error)

	// Update and Delete return rows affected; zero means the loan id did not
	// resolve.
	Update(ctx context.Context, loanID string, patch Update) (int64, error)
	ToggleHome(ctx context.Context, loanID string) (int64, error)
	Delete(ctx context.Context, loanID string) (int64, error)
}
