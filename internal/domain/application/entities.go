package application

import (
	"errors"
	"time"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

type FeeStatus string

const (
	FeeUnpaid FeeStatus = "unpaid"
	FeePaid   FeeStatus = "paid"
)

var (
	ErrNotFound = errors.New("application not found")
	// ErrInvalidTransition covers any state-machine violation, including a
	// lost race: the conditional update matched zero rows because a
	// concurrent writer got there first.
	ErrInvalidTransition = errors.New("invalid application transition")
	// ErrForbidden: caller lacks the role or ownership the operation needs.
	ErrForbidden = errors.New("not allowed on this application")
	// ErrUnknownLoan: submit referenced a loan id that does not resolve.
	ErrUnknownLoan = errors.New("application references unknown loan")
)

// Application tracks two independent state machines: status
// (pending → approved|rejected) and fee_status (unpaid → paid). Both axes are
// terminal after a single transition.
type Application struct {
	ID            uint64 `gorm:"primaryKey;column:id" json:"-"`
	ApplicationID string `gorm:"column:application_id;type:char(32);not null;uniqueIndex:ux_applications_app_id" json:"application_id"`
	LoanID        string `gorm:"column:loan_id;type:char(32);not null;index:idx_applications_loan" json:"loan_id"`
	Email         string `gorm:"column:email;size:191;not null;index:idx_applications_email" json:"email"`

	// Snapshot of the loan title at submit time, so listings survive loan
	// edits.
	LoanTitle string  `gorm:"column:loan_title;size:255" json:"loan_title"`
	Amount    float64 `gorm:"column:amount;type:decimal(18,2)" json:"amount"`

	Status    Status    `gorm:"column:status;type:enum('pending','approved','rejected');default:'pending'" json:"status"`
	FeeStatus FeeStatus `gorm:"column:fee_status;type:enum('unpaid','paid');default:'unpaid'" json:"fee_status"`

	TransactionID *string    `gorm:"column:transaction_id;size:191" json:"transaction_id,omitempty"`
	PaidAmount    *float64   `gorm:"column:paid_amount;type:decimal(18,2)" json:"paid_amount,omitempty"`
	PaidAt        *time.Time `gorm:"column:paid_at" json:"paid_at,omitempty"`
	ApprovedAt    *time.Time `gorm:"column:approved_at" json:"approved_at,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Application) TableName() string { return "applications" }

// Decision reports whether s is a value a reviewer may move a pending
// application to.
func Decision(s Status) bool { return s == StatusApproved || s == StatusRejected }
