package mysql

import (
	"context"

	loanDomain "loanlink-backend/internal/domain/loan"

	"gorm.io/gorm"
)

type LoanRepository struct{ db *gorm.DB }

func NewLoanRepository(db *gorm.DB) *LoanRepository { return &LoanRepository{db: db} }

func (r *LoanRepository) Create(ctx context.Context, l *loanDomain.Loan) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *LoanRepository) GetByLoanID(ctx context.Context, loanID string) (*loanDomain.Loan, error) {
	var out loanDomain.Loan
	res := r.db.WithContext(ctx).Where("loan_id = ?", loanID).First(&out)
	return &out, res.Error
}

func (r *LoanRepository) List(ctx context.Context, f loanDomain.ListFilter) ([]loanDomain.Loan, int64, error) {
	q := r.db.WithContext(ctx).Model(&loanDomain.Loan{})
	if f.Search != "" {
		// LIKE is case-insensitive under the default utf8mb4 collation,
		// matching the catalog's contains-search contract.
		q = q.Where("title LIKE ?", "%"+f.Search+"%")
	}
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if f.Page > 0 && f.Limit > 0 {
		q = q.Offset((f.Page - 1) * f.Limit).Limit(f.Limit)
	}
	var out []loanDomain.Loan
	if err := q.Order("created_at DESC, id DESC").Find(&out).Error; err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (r *LoanRepository) ListByManager(ctx context.Context, managerEmail string) ([]loanDomain.Loan, error) {
	var out []loanDomain.Loan
	err := r.db.WithContext(ctx).
		Where("manager_email = ?", managerEmail).
		Order("created_at DESC, id DESC").
		Find(&out).Error
	return out, err
}

func (r *LoanRepository) Featured(ctx context.Context) ([]loanDomain.Loan, error) {
	var out []loanDomain.Loan
	err := r.db.WithContext(ctx).
		Where("show_on_home = ?", true).
		Order("created_at DESC, id DESC").
		Find(&out).Error
	return out, err
}

func (r *LoanRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&loanDomain.Loan{}).Count(&n).Error
	return n, err
}

func (r *LoanRepository) Update(ctx context.Context, loanID string, patch loanDomain.Update) (int64, error) {
	values := map[string]any{}
	if patch.Title != nil {
		values["title"] = *patch.Title
	}
	if patch.Category != nil {
		values["category"] = *patch.Category
	}
	if patch.Description != nil {
		values["description"] = *patch.Description
	}
	if patch.MinAmount != nil {
		values["min_amount"] = *patch.MinAmount
	}
	if patch.MaxAmount != nil {
		values["max_amount"] = *patch.MaxAmount
	}
	if patch.InterestRate != nil {
		values["interest_rate"] = *patch.InterestRate
	}
	if patch.TermMonths != nil {
		values["term_months"] = *patch.TermMonths
	}
	if patch.ApplicationFee != nil {
		values["application_fee"] = *patch.ApplicationFee
	}
	if patch.ShowOnHome != nil {
		values["show_on_home"] = *patch.ShowOnHome
	}
	if len(values) == 0 {
		// Nothing to write; treat as a matched no-op if the loan exists.
		var n int64
		err := r.db.WithContext(ctx).Model(&loanDomain.Loan{}).Where("loan_id = ?", loanID).Count(&n).Error
		return n, err
	}

	res := r.db.WithContext(ctx).Model(&loanDomain.Loan{}).
		Where("loan_id = ?", loanID).
		Updates(values)
	return res.RowsAffected, res.Error
}

// ToggleHome flips the featured flag in a single statement so concurrent
// toggles never read a stale value.
func (r *LoanRepository) ToggleHome(ctx context.Context, loanID string) (int64, error) {
	res := r.db.WithContext(ctx).Model(&loanDomain.Loan{}).
		Where("loan_id = ?", loanID).
		Update("show_on_home", gorm.Expr("NOT show_on_home"))
	return res.RowsAffected, res.Error
}

func (r *LoanRepository) Delete(ctx context.Context, loanID string) (int64, error) {
	res := r.db.WithContext(ctx).Where("loan_id = ?", loanID).Delete(&loanDomain.Loan{})
	return res.RowsAffected, res.Error
}
