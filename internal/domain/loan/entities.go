package loan

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrNotFound = errors.New("loan not found")
	// ErrForbidden: loans are mutable only by the owning manager or an admin.
	ErrForbidden = errors.New("not the loan owner")
)

type Loan struct {
	ID           uint64 `gorm:"primaryKey;column:id" json:"-"`
	LoanID       string `gorm:"column:loan_id;type:char(32);not null;uniqueIndex:ux_loans_loan_id_active" json:"loan_id"`
	ManagerEmail string `gorm:"column:manager_email;size:191;not null;index:idx_loans_manager" json:"manager_email"`
	Title        string `gorm:"column:title;size:255;not null" json:"title"`
	Category     string `gorm:"column:category;size:64;index:idx_loans_category" json:"category"`
	Description  string `gorm:"column:description;type:text" json:"description"`

	MinAmount      float64 `gorm:"column:min_amount;type:decimal(18,2)" json:"min_amount"`
	MaxAmount      float64 `gorm:"column:max_amount;type:decimal(18,2)" json:"max_amount"`
	InterestRate   float64 `gorm:"column:interest_rate;type:decimal(6,4)" json:"interest_rate"`
	TermMonths     int     `gorm:"column:term_months" json:"term_months"`
	ApplicationFee float64 `gorm:"column:application_fee;type:decimal(18,2)" json:"application_fee"`

	ShowOnHome bool `gorm:"column:show_on_home;default:false" json:"show_on_home"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (Loan) TableName() string { return "loans" }

// Update is the tagged patch for a loan edit; nil fields are left untouched.
// Built from the request body and validated before it reaches the store; no
// untyped patch maps cross this boundary.
type Update struct {
	Title          *string
	Category       *string
	Description    *string
	MinAmount      *float64
	MaxAmount      *float64
	InterestRate   *float64
	TermMonths     *int
	ApplicationFee *float64
	ShowOnHome     *bool
}
