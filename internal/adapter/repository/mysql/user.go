package mysql

import (
	"context"

	userDomain "loanlink-backend/internal/domain/user"

	"gorm.io/gorm"
)

type UserRepository struct{ db *gorm.DB }

func NewUserRepository(db *gorm.DB) *UserRepository { return &UserRepository{db: db} }

func (r *UserRepository) Create(ctx context.Context, u *userDomain.User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*userDomain.User, error) {
	var out userDomain.User
	res := r.db.WithContext(ctx).Where("email = ?", email).First(&out)
	return &out, res.Error
}

func (r *UserRepository) GetByUserID(ctx context.Context, userID string) (*userDomain.User, error) {
	var out userDomain.User
	res := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&out)
	return &out, res.Error
}

func (r *UserRepository) List(ctx context.Context, f userDomain.ListFilter) ([]userDomain.User, int64, error) {
	q := r.db.WithContext(ctx).Model(&userDomain.User{})
	if f.Search != "" {
		like := "%" + f.Search + "%"
		q = q.Where("name LIKE ? OR email LIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if f.Page > 0 && f.Limit > 0 {
		q = q.Offset((f.Page - 1) * f.Limit).Limit(f.Limit)
	}
	var out []userDomain.User
	if err := q.Order("created_at DESC, id DESC").Find(&out).Error; err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (r *UserRepository) All(ctx context.Context) ([]userDomain.User, error) {
	var out []userDomain.User
	err := r.db.WithContext(ctx).Order("id ASC").Find(&out).Error
	return out, err
}

func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&userDomain.User{}).Count(&n).Error
	return n, err
}

func (r *UserRepository) UpdateRole(ctx context.Context, userID string, role userDomain.Role) (int64, error) {
	res := r.db.WithContext(ctx).Model(&userDomain.User{}).
		Where("user_id = ?", userID).
		Update("role", role)
	return res.RowsAffected, res.Error
}

// UpdateStatus writes status and suspension_reason together so the
// "reason present iff suspended" invariant holds after every write.
func (r *UserRepository) UpdateStatus(ctx context.Context, userID string, status userDomain.Status, reason *string) (int64, error) {
	res := r.db.WithContext(ctx).Model(&userDomain.User{}).
		Where("user_id = ?", userID).
		Updates(map[string]any{"status": status, "suspension_reason": reason})
	return res.RowsAffected, res.Error
}

func (r *UserRepository) UpdateProfile(ctx context.Context, email, name, photoURL string) (int64, error) {
	res := r.db.WithContext(ctx).Model(&userDomain.User{}).
		Where("email = ?", email).
		Updates(map[string]any{"name": name, "photo_url": photoURL})
	return res.RowsAffected, res.Error
}
