package stats

import (
	"context"
	"sort"

	appDomain "loanlink-backend/internal/domain/application"
	loanDomain "loanlink-backend/internal/domain/loan"
	userDomain "loanlink-backend/internal/domain/user"
)

const recentLimit = 5

// Usecase recomputes every dashboard from the current rows on each call.
// Nothing here is cached; correctness of the reduction is the whole contract.
type Usecase struct {
	users userDomain.Repository
	loans loanDomain.Repository
	apps  appDomain.Repository
}

func NewUsecase(users userDomain.Repository, loans loanDomain.Repository, apps appDomain.Repository) *Usecase {
	return &Usecase{users: users, loans: loans, apps: apps}
}

func (u *Usecase) AdminStats(ctx context.Context) (*AdminStatsDTO, error) {
	totalLoans, err := u.loans.Count(ctx)
	if err != nil {
		return nil, err
	}
	totalApps, err := u.apps.Count(ctx)
	if err != nil {
		return nil, err
	}
	users, err := u.users.All(ctx)
	if err != nil {
		return nil, err
	}

	byRole := map[string]int64{
		string(userDomain.RoleBorrower): 0,
		string(userDomain.RoleManager):  0,
		string(userDomain.RoleAdmin):    0,
	}
	for i := range users {
		byRole[string(users[i].Role)]++
	}

	return &AdminStatsDTO{
		TotalUsers:        int64(len(users)),
		TotalLoans:        totalLoans,
		TotalApplications: totalApps,
		UsersByRole:       byRole,
	}, nil
}

// ManagerStats reduces over the applications whose loan belongs to the given
// manager; applications against other managers' loans never enter the counts.
func (u *Usecase) ManagerStats(ctx context.Context, managerEmail string) (*ManagerStatsDTO, error) {
	loans, err := u.loans.ListByManager(ctx, managerEmail)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(loans))
	for i := range loans {
		ids = append(ids, loans[i].LoanID)
	}
	apps, err := u.apps.ListByLoanIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := &ManagerStatsDTO{TotalLoans: int64(len(loans))}
	for i := range apps {
		out.TotalApplications++
		switch apps[i].Status {
		case appDomain.StatusPending:
			out.Pending++
		case appDomain.StatusApproved:
			out.Approved++
		}
	}
	out.Recent = recent(apps)
	return out, nil
}

func (u *Usecase) BorrowerStats(ctx context.Context, email string) (*BorrowerStatsDTO, error) {
	apps, err := u.apps.ListByApplicant(ctx, email)
	if err != nil {
		return nil, err
	}

	out := &BorrowerStatsDTO{}
	for i := range apps {
		out.TotalApplications++
		switch apps[i].Status {
		case appDomain.StatusPending:
			out.Pending++
		case appDomain.StatusApproved:
			out.Approved++
		case appDomain.StatusRejected:
			out.Rejected++
		}
	}
	out.Recent = recent(apps)
	return out, nil
}

// recent returns up to five applications, newest first. The sort is stable:
// records sharing a createdAt keep their original relative order, which the
// dashboards rely on for deterministic output.
func recent(apps []appDomain.Application) []RecentApplication {
	sorted := make([]appDomain.Application, len(apps))
	copy(sorted, apps)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})
	if len(sorted) > recentLimit {
		sorted = sorted[:recentLimit]
	}
	out := make([]RecentApplication, 0, len(sorted))
	for i := range sorted {
		a := &sorted[i]
		out = append(out, RecentApplication{
			ApplicationID: a.ApplicationID,
			LoanID:        a.LoanID,
			LoanTitle:     a.LoanTitle,
			Email:         a.Email,
			Status:        string(a.Status),
			FeeStatus:     string(a.FeeStatus),
			CreatedAt:     a.CreatedAt,
		})
	}
	return out
}
