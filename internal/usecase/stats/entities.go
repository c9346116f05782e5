package stats

import "time"

type AdminStatsDTO struct {
	TotalUsers        int64            `json:"total_users"`
	TotalLoans        int64            `json:"total_loans"`
	TotalApplications int64            `json:"total_applications"`
	UsersByRole       map[string]int64 `json:"users_by_role"`
}

type ManagerStatsDTO struct {
	TotalLoans        int64               `json:"total_loans"`
	TotalApplications int64               `json:"total_applications"`
	Pending           int64               `json:"pending"`
	Approved          int64               `json:"approved"`
	Recent            []RecentApplication `json:"recent"`
}

type BorrowerStatsDTO struct {
	TotalApplications int64               `json:"total_applications"`
	Pending           int64               `json:"pending"`
	Approved          int64               `json:"approved"`
	Rejected          int64               `json:"rejected"`
	Recent            []RecentApplication `json:"recent"`
}

type RecentApplication struct {
	ApplicationID string    `json:"application_id"`
	LoanID        string    `json:"loan_id"`
	LoanTitle     string    `json:"loan_title"`
	Email         string    `json:"email"`
	Status        string    `json:"status"`
	FeeStatus     string    `json:"fee_status"`
	CreatedAt     time.Time `json:"created_at"`
}
