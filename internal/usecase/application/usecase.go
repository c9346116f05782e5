package application

import (
	"context"
	"errors"
	"time"

	domain "loanlink-backend/internal/domain/application"
	loanDomain "loanlink-backend/internal/domain/loan"
	userDomain "loanlink-backend/internal/domain/user"
	"loanlink-backend/pkg/id"

	"gorm.io/gorm"
)

type Usecase struct {
	apps  domain.Repository
	loans loanDomain.Repository
}

func NewUsecase(apps domain.Repository, loans loanDomain.Repository) *Usecase {
	return &Usecase{apps: apps, loans: loans}
}

// Submit creates the application in its initial state. Status and fee status
// are server-assigned; whatever the client sent for them is ignored.
func (u *Usecase) Submit(ctx context.Context, in SubmitInput) (*ApplicationDTO, error) {
	l, err := u.loans.GetByLoanID(ctx, in.LoanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUnknownLoan
		}
		return nil, err
	}

	a := &domain.Application{
		ApplicationID: id.NewID32(),
		LoanID:        l.LoanID,
		Email:         in.Email,
		LoanTitle:     l.Title,
		Amount:        in.Amount,
		Status:        domain.StatusPending,
		FeeStatus:     domain.FeeUnpaid,
	}
	if err := u.apps.Create(ctx, a); err != nil {
		return nil, err
	}
	return toDTO(a), nil
}

func (u *Usecase) Get(ctx context.Context, applicationID string) (*ApplicationDTO, error) {
	a, err := u.get(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	return toDTO(a), nil
}

// SetStatus moves a pending application to approved or rejected. Allowed for
// an admin or the manager owning the referenced loan. The transition itself
// is a conditional update; a lost race surfaces as ErrInvalidTransition.
func (u *Usecase) SetStatus(ctx context.Context, applicationID string, next domain.Status, actorEmail string, actorRole userDomain.Role) (*ApplicationDTO, error) {
	if !domain.Decision(next) {
		return nil, domain.ErrInvalidTransition
	}

	a, err := u.get(ctx, applicationID)
	if err != nil {
		return nil, err
	}

	if actorRole != userDomain.RoleAdmin {
		if actorRole != userDomain.RoleManager {
			return nil, domain.ErrForbidden
		}
		l, err := u.loans.GetByLoanID(ctx, a.LoanID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, domain.ErrForbidden
			}
			return nil, err
		}
		if l.ManagerEmail != actorEmail {
			return nil, domain.ErrForbidden
		}
	}

	var approvedAt *time.Time
	if next == domain.StatusApproved {
		now := time.Now().UTC()
		approvedAt = &now
	}
	rows, err := u.apps.UpdateStatusIfPending(ctx, applicationID, next, approvedAt)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, domain.ErrInvalidTransition
	}
	return u.Get(ctx, applicationID)
}

// RecordPayment marks the fee paid exactly once. The guard and the payment
// fields land in a single statement, so of two concurrent confirmations one
// wins and the other reports ErrInvalidTransition with the winner's payload
// intact.
func (u *Usecase) RecordPayment(ctx context.Context, applicationID string, in PaymentInput) (*ApplicationDTO, error) {
	paidAt := in.PaidAt
	if paidAt.IsZero() {
		paidAt = time.Now().UTC()
	}
	rows, err := u.apps.MarkPaidIfUnpaid(ctx, applicationID, in.TransactionID, in.Amount, paidAt)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		if _, err := u.get(ctx, applicationID); err != nil {
			return nil, err
		}
		return nil, domain.ErrInvalidTransition
	}
	return u.Get(ctx, applicationID)
}

// Cancel deletes the applicant's own application while it is still pending.
func (u *Usecase) Cancel(ctx context.Context, applicationID, actorEmail string) error {
	a, err := u.get(ctx, applicationID)
	if err != nil {
		return err
	}
	if a.Email != actorEmail {
		return domain.ErrForbidden
	}
	rows, err := u.apps.DeleteIfPending(ctx, applicationID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrInvalidTransition
	}
	return nil
}

func (u *Usecase) ListByApplicant(ctx context.Context, email string) ([]ApplicationDTO, error) {
	apps, err := u.apps.ListByApplicant(ctx, email)
	if err != nil {
		return nil, err
	}
	return toDTOs(apps), nil
}

// ListByLoanOwner projects the applications whose loan belongs to the given
// manager.
func (u *Usecase) ListByLoanOwner(ctx context.Context, managerEmail string) ([]ApplicationDTO, error) {
	loans, err := u.loans.ListByManager(ctx, managerEmail)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(loans))
	for i := range loans {
		ids = append(ids, loans[i].LoanID)
	}
	apps, err := u.apps.ListByLoanIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	return toDTOs(apps), nil
}

func (u *Usecase) ListByStatus(ctx context.Context, s domain.Status) ([]ApplicationDTO, error) {
	apps, err := u.apps.ListByStatus(ctx, s)
	if err != nil {
		return nil, err
	}
	return toDTOs(apps), nil
}

func (u *Usecase) get(ctx context.Context, applicationID string) (*domain.Application, error) {
	a, err := u.apps.GetByApplicationID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return a, nil
}

func toDTO(a *domain.Application) *ApplicationDTO {
	return &ApplicationDTO{
		ApplicationID: a.ApplicationID,
		LoanID:        a.LoanID,
		LoanTitle:     a.LoanTitle,
		Email:         a.Email,
		Amount:        a.Amount,
		Status:        string(a.Status),
		FeeStatus:     string(a.FeeStatus),
		TransactionID: a.TransactionID,
		PaidAmount:    a.PaidAmount,
		PaidAt:        a.PaidAt,
		ApprovedAt:    a.ApprovedAt,
		CreatedAt:     a.CreatedAt,
	}
}

func toDTOs(apps []domain.Application) []ApplicationDTO {
	out := make([]ApplicationDTO, 0, len(apps))
	for i := range apps {
		out = append(out, *toDTO(&apps[i]))
	}
	return out
}
