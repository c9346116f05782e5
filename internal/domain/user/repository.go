package user

import "context"

type ListFilter struct {
	Search string // case-insensitive contains on name or email
	Page   int
	Limit  int
}

type Repository interface {
	Create(ctx context.Context, u *User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByUserID(ctx context.Context, userID string) (*User, error)
	List(ctx context.Context, f ListFilter) ([]User, int64, error)
	All(ctx context.Context) ([]User, error)
	Count(ctx context.Context) (int64, error)

	// Conditional updates keyed by user_id; all return rows affected so the
	// caller can distinguish "no such user" from success.
	UpdateRole(ctx context.Context, userID string, role Role) (int64, error)
	UpdateStatus(ctx context.Context, userID string, status Status, reason *string) (int64, error)
	UpdateProfile(ctx context.Context, email, name, photoURL string) (int64, error)
}
