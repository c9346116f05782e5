package user

import (
	"errors"
	"time"
)

type Role string

const (
	RoleBorrower Role = "borrower"
	RoleManager  Role = "manager"
	RoleAdmin    Role = "admin"
)

type Status string

const (
	StatusActive    Status = "active"
	StatusSuspended Status = "suspended"
)

var (
	ErrNotFound = errors.New("user not found")
	// ErrReasonRequired: suspending without a reason violates the
	// "suspensionReason present iff suspended" rule.
	ErrReasonRequired = errors.New("suspension reason required")
)

type User struct {
	ID       uint64 `gorm:"primaryKey;column:id" json:"-"`
	UserID   string `gorm:"column:user_id;type:char(32);not null;uniqueIndex:ux_users_user_id" json:"user_id"`
	Email    string `gorm:"column:email;size:191;not null;uniqueIndex:ux_users_email" json:"email"`
	Name     string `gorm:"column:name;size:191" json:"name"`
	PhotoURL string `gorm:"column:photo_url;type:text" json:"photo_url"`
	Role     Role   `gorm:"column:role;type:enum('borrower','manager','admin');default:'borrower'" json:"role"`
	Status   Status `gorm:"column:status;type:enum('active','suspended');default:'active'" json:"status"`
	// NULL whenever status is active.
	SuspensionReason *string   `gorm:"column:suspension_reason;type:text" json:"suspension_reason,omitempty"`
	CreatedAt        time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string { return "users" }

func ValidRole(r Role) bool {
	switch r {
	case RoleBorrower, RoleManager, RoleAdmin:
		return true
	}
	return false
}
