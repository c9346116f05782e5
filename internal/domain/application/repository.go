package application

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, a *Application) error
	GetByApplicationID(ctx context.Context, applicationID string) (*Application, error)
	ListByApplicant(ctx context.Context, email string) ([]Application, error)
	ListByLoanIDs(ctx context.Context, loanIDs []string) ([]Application, error)
	ListByStatus(ctx context.Context, s Status) ([]Application, error)
	Count(ctx context.Context) (int64, error)

	// State transitions are single conditional updates scoped by the current
	// state. Rows affected == 0 means the guard did not match: either the id
	// does not resolve or a concurrent racer already moved the state.
	UpdateStatusIfPending(ctx context.Context, applicationID string, s Status, approvedAt *time.Time) (int64, error)
	MarkPaidIfUnpaid(ctx context.Context, applicationID, transactionID string, amount float64, paidAt time.Time) (int64, error)
	DeleteIfPending(ctx context.Context, applicationID string) (int64, error)
}
