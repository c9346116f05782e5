package mysql

import (
	"context"
	"time"

	appDomain "loanlink-backend/internal/domain/application"

	"gorm.io/gorm"
)

type ApplicationRepository struct{ db *gorm.DB }

func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

func (r *ApplicationRepository) Create(ctx context.Context, a *appDomain.Application) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *ApplicationRepository) GetByApplicationID(ctx context.Context, applicationID string) (*appDomain.Application, error) {
	var out appDomain.Application
	res := r.db.WithContext(ctx).Where("application_id = ?", applicationID).First(&out)
	return &out, res.Error
}

func (r *ApplicationRepository) ListByApplicant(ctx context.Context, email string) ([]appDomain.Application, error) {
	var out []appDomain.Application
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		Order("id ASC").
		Find(&out).Error
	return out, err
}

func (r *ApplicationRepository) ListByLoanIDs(ctx context.Context, loanIDs []string) ([]appDomain.Application, error) {
	if len(loanIDs) == 0 {
		return nil, nil
	}
	var out []appDomain.Application
	err := r.db.WithContext(ctx).
		Where("loan_id IN ?", loanIDs).
		Order("id ASC").
		Find(&out).Error
	return out, err
}

func (r *ApplicationRepository) ListByStatus(ctx context.Context, s appDomain.Status) ([]appDomain.Application, error) {
	var out []appDomain.Application
	err := r.db.WithContext(ctx).
		Where("status = ?", s).
		Order("id ASC").
		Find(&out).Error
	return out, err
}

func (r *ApplicationRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&appDomain.Application{}).Count(&n).Error
	return n, err
}

// UpdateStatusIfPending moves status off pending in one conditional UPDATE.
// With two concurrent reviewers exactly one statement matches; the loser sees
// zero rows.
func (r *ApplicationRepository) UpdateStatusIfPending(ctx context.Context, applicationID string, s appDomain.Status, approvedAt *time.Time) (int64, error) {
	res := r.db.WithContext(ctx).Model(&appDomain.Application{}).
		Where("application_id = ? AND status = ?", applicationID, appDomain.StatusPending).
		Updates(map[string]any{"status": s, "approved_at": approvedAt})
	return res.RowsAffected, res.Error
}

// MarkPaidIfUnpaid writes fee_status and the payment fields atomically with
// the guard, so a duplicate confirmation can never overwrite the winner's
// transaction id or amount.
func (r *ApplicationRepository) MarkPaidIfUnpaid(ctx context.Context, applicationID, transactionID string, amount float64, paidAt time.Time) (int64, error) {
	res := r.db.WithContext(ctx).Model(&appDomain.Application{}).
		Where("application_id = ? AND fee_status = ?", applicationID, appDomain.FeeUnpaid).
		Updates(map[string]any{
			"fee_status":     appDomain.FeePaid,
			"transaction_id": transactionID,
			"paid_amount":    amount,
			"paid_at":        paidAt.UTC(),
		})
	return res.RowsAffected, res.Error
}

func (r *ApplicationRepository) DeleteIfPending(ctx context.Context, applicationID string) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("application_id = ? AND status = ?", applicationID, appDomain.StatusPending).
		Delete(&appDomain.Application{})
	return res.RowsAffected, res.Error
}
