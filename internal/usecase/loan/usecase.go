package loan

import (
	"context"
	"errors"

	domain "loanlink-backend/internal/domain/loan"
	userDomain "loanlink-backend/internal/domain/user"
	"loanlink-backend/pkg/id"

	"gorm.io/gorm"
)

const DefaultPageSize = 12

type Usecase struct{ repo domain.Repository }

func NewUsecase(r domain.Repository) *Usecase { return &Usecase{repo: r} }

func (u *Usecase) Create(ctx context.Context, managerEmail string, in CreateInput) (*LoanDTO, error) {
	l := &domain.Loan{
		LoanID:         id.NewID32(),
		ManagerEmail:   managerEmail,
		Title:          in.Title,
		Category:       in.Category,
		Description:    in.Description,
		MinAmount:      in.MinAmount,
		MaxAmount:      in.MaxAmount,
		InterestRate:   in.InterestRate,
		TermMonths:     in.TermMonths,
		ApplicationFee: in.ApplicationFee,
		ShowOnHome:     in.ShowOnHome,
	}
	if err := u.repo.Create(ctx, l); err != nil {
		return nil, err
	}
	return toDTO(l), nil
}

func (u *Usecase) Get(ctx context.Context, loanID string) (*LoanDTO, error) {
	l, err := u.repo.GetByLoanID(ctx, loanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return toDTO(l), nil
}

func (u *Usecase) List(ctx context.Context, in ListInput) (*ListResult, error) {
	if in.Page <= 0 {
		in.Page = 1
	}
	if in.Limit <= 0 {
		in.Limit = DefaultPageSize
	}
	loans, total, err := u.repo.List(ctx, domain.ListFilter{
		Search:   in.Search,
		Category: in.Category,
		Page:     in.Page,
		Limit:    in.Limit,
	})
	if err != nil {
		return nil, err
	}
	return &ListResult{Total: total, Page: in.Page, Limit: in.Limit, Data: toDTOs(loans)}, nil
}

func (u *Usecase) Featured(ctx context.Context) ([]LoanDTO, error) {
	loans, err := u.repo.Featured(ctx)
	if err != nil {
		return nil, err
	}
	return toDTOs(loans), nil
}

func (u *Usecase) Update(ctx context.Context, loanID, actorEmail string, actorRole userDomain.Role, in UpdateInput) (*LoanDTO, error) {
	if err := u.authorize(ctx, loanID, actorEmail, actorRole); err != nil {
		return nil, err
	}
	rows, err := u.repo.Update(ctx, loanID, domain.Update{
		Title:          in.Title,
		Category:       in.Category,
		Description:    in.Description,
		MinAmount:      in.MinAmount,
		MaxAmount:      in.MaxAmount,
		InterestRate:   in.InterestRate,
		TermMonths:     in.TermMonths,
		ApplicationFee: in.ApplicationFee,
		ShowOnHome:     in.ShowOnHome,
	})
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, domain.ErrNotFound
	}
	return u.Get(ctx, loanID)
}

func (u *Usecase) Delete(ctx context.Context, loanID, actorEmail string, actorRole userDomain.Role) error {
	if err := u.authorize(ctx, loanID, actorEmail, actorRole); err != nil {
		return err
	}
	rows, err := u.repo.Delete(ctx, loanID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (u *Usecase) ToggleHome(ctx context.Context, loanID string) (*LoanDTO, error) {
	rows, err := u.repo.ToggleHome(ctx, loanID)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, domain.ErrNotFound
	}
	return u.Get(ctx, loanID)
}

// authorize resolves the loan and checks owner-or-admin before any mutation.
func (u *Usecase) authorize(ctx context.Context, loanID, actorEmail string, actorRole userDomain.Role) error {
	l, err := u.repo.GetByLoanID(ctx, loanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrNotFound
		}
		return err
	}
	if actorRole != userDomain.RoleAdmin && l.ManagerEmail != actorEmail {
		return domain.ErrForbidden
	}
	return nil
}

func toDTO(l *domain.Loan) *LoanDTO {
	return &LoanDTO{
		LoanID:         l.LoanID,
		ManagerEmail:   l.ManagerEmail,
		Title:          l.Title,
		Category:       l.Category,
		Description:    l.Description,
		MinAmount:      l.MinAmount,
		MaxAmount:      l.MaxAmount,
		InterestRate:   l.InterestRate,
		TermMonths:     l.TermMonths,
		ApplicationFee: l.ApplicationFee,
		ShowOnHome:     l.ShowOnHome,
		CreatedAt:      l.CreatedAt,
		UpdatedAt:      l.UpdatedAt,
	}
}

func toDTOs(loans []domain.Loan) []LoanDTO {
	out := make([]LoanDTO, 0, len(loans))
	for i := range loans {
		out = append(out, *toDTO(&loans[i]))
	}
	return out
}
