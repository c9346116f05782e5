package user

import (
	"context"
	"errors"
	"strings"

	domain "loanlink-backend/internal/domain/user"
	"loanlink-backend/pkg/id"

	"gorm.io/gorm"
)

type Usecase struct{ repo domain.Repository }

func NewUsecase(r domain.Repository) *Usecase { return &Usecase{repo: r} }

// Register is idempotent on email: a second call with the same email leaves
// the stored record untouched and reports existed=true.
func (u *Usecase) Register(ctx context.Context, in RegisterInput) (*UserDTO, bool, error) {
	email := normalizeEmail(in.Email)
	if email == "" {
		return nil, false, errors.New("email is required")
	}

	existing, err := u.repo.GetByEmail(ctx, email)
	switch {
	case err == nil:
		return toDTO(existing), true, nil
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, false, err
	}

	nu := &domain.User{
		UserID:   id.NewID32(),
		Email:    email,
		Name:     in.Name,
		PhotoURL: in.PhotoURL,
		Role:     domain.RoleBorrower,
		Status:   domain.StatusActive,
	}
	if err := u.repo.Create(ctx, nu); err != nil {
		return nil, false, err
	}
	return toDTO(nu), false, nil
}

func (u *Usecase) Get(ctx context.Context, email string) (*UserDTO, error) {
	out, err := u.repo.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return toDTO(out), nil
}

func (u *Usecase) List(ctx context.Context, in ListInput) (*ListResult, error) {
	if in.Page <= 0 {
		in.Page = 1
	}
	if in.Limit <= 0 {
		in.Limit = 12
	}
	users, total, err := u.repo.List(ctx, domain.ListFilter{
		Search: in.Search,
		Page:   in.Page,
		Limit:  in.Limit,
	})
	if err != nil {
		return nil, err
	}
	data := make([]UserDTO, 0, len(users))
	for i := range users {
		data = append(data, *toDTO(&users[i]))
	}
	return &ListResult{Total: total, Page: in.Page, Limit: in.Limit, Data: data}, nil
}

func (u *Usecase) SetRole(ctx context.Context, userID string, role domain.Role) error {
	if !domain.ValidRole(role) {
		return errors.New("invalid role")
	}
	rows, err := u.repo.UpdateRole(ctx, userID, role)
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SetStatus enforces the suspension invariant: suspending requires a
// non-empty reason, reactivating always clears it.
func (u *Usecase) SetStatus(ctx context.Context, userID string, status domain.Status, reason string) error {
	var stored *string
	switch status {
	case domain.StatusSuspended:
		reason = strings.TrimSpace(reason)
		if reason == "" {
			return domain.ErrReasonRequired
		}
		stored = &reason
	case domain.StatusActive:
		stored = nil
	default:
		return errors.New("invalid status")
	}

	rows, err := u.repo.UpdateStatus(ctx, userID, status, stored)
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (u *Usecase) UpdateProfile(ctx context.Context, email, name, photoURL string) error {
	rows, err := u.repo.UpdateProfile(ctx, normalizeEmail(email), name, photoURL)
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func normalizeEmail(e string) string { return strings.ToLower(strings.TrimSpace(e)) }

func toDTO(u *domain.User) *UserDTO {
	return &UserDTO{
		UserID:           u.UserID,
		Email:            u.Email,
		Name:             u.Name,
		PhotoURL:         u.PhotoURL,
		Role:             string(u.Role),
		Status:           string(u.Status),
		SuspensionReason: u.SuspensionReason,
		CreatedAt:        u.CreatedAt,
	}
}
