package mysql

import (
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// --- SQLite-friendly schemas only for tests (no ENUM columns) ---

type userSQLite struct {
	ID               uint64  `gorm:"primaryKey;column:id"`
	UserID           string  `gorm:"size:32;column:user_id"`
	Email            string  `gorm:"size:191;column:email;uniqueIndex"`
	Name             string  `gorm:"size:191;column:name"`
	PhotoURL         string  `gorm:"column:photo_url"`
	Role             string  `gorm:"type:text;column:role"`
	Status           string  `gorm:"type:text;column:status"`
	SuspensionReason *string `gorm:"column:suspension_reason"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (userSQLite) TableName() string { return "users" }

type loanSQLite struct {
	ID             uint64 `gorm:"primaryKey;column:id"`
	LoanID         string `gorm:"size:32;column:loan_id"`
	ManagerEmail   string `gorm:"size:191;column:manager_email"`
	Title          string `gorm:"column:title"`
	Category       string `gorm:"column:category"`
	Description    string `gorm:"column:description"`
	MinAmount      float64
	MaxAmount      float64
	InterestRate   float64
	TermMonths     int
	ApplicationFee float64
	ShowOnHome     bool `gorm:"column:show_on_home"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (loanSQLite) TableName() string { return "loans" }

type applicationSQLite struct {
	ID            uint64 `gorm:"primaryKey;column:id"`
	ApplicationID string `gorm:"size:32;column:application_id"`
	LoanID        string `gorm:"size:32;column:loan_id"`
	Email         string `gorm:"size:191;column:email"`
	LoanTitle     string `gorm:"column:loan_title"`
	Amount        float64
	Status        string `gorm:"type:text;column:status"`
	FeeStatus     string `gorm:"type:text;column:fee_status"`
	TransactionID *string
	PaidAmount    *float64
	PaidAt        *time.Time
	ApprovedAt    *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (applicationSQLite) TableName() string { return "applications" }

// openTestDB creates an in-memory sqlite DB and migrates ONLY the sqlite-safe
// schemas. A single pooled connection keeps concurrent writers queued instead
// of tripping SQLITE_BUSY.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("db handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := db.AutoMigrate(&userSQLite{}, &loanSQLite{}, &applicationSQLite{}); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}
