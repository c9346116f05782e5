package mysql

import (
	"context"
	"errors"
	"testing"

	userDomain "loanlink-backend/internal/domain/user"
	"loanlink-backend/pkg/id"

	"gorm.io/gorm"
)

func makeUser(email string, role userDomain.Role) *userDomain.User {
	return &userDomain.User{
		UserID: id.NewID32(),
		Email:  email,
		Name:   "Test User",
		Role:   role,
		Status: userDomain.StatusActive,
	}
}

func TestUserCreateAndGetByEmail(t *testing.T) {
	db := openTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	u := makeUser("a@x.com", userDomain.RoleBorrower)
	if err := repo.Create(ctx, u); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.GetByEmail(ctx, "a@x.com")
	if err != nil {
		t.Fatalf("GetByEmail: %v", err)
	}
	if got.UserID != u.UserID || got.Role != userDomain.RoleBorrower {
		t.Fatalf("row = %+v", got)
	}

	if _, err := repo.GetByEmail(ctx, "missing@x.com"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("missing email err = %v", err)
	}
}

func TestUserCreate_DuplicateEmailRejected(t *testing.T) {
	db := openTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	if err := repo.Create(ctx, makeUser("dup@x.com", userDomain.RoleBorrower)); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := repo.Create(ctx, makeUser("dup@x.com", userDomain.RoleBorrower)); err == nil {
		t.Fatal("second insert with the same email did not fail")
	}
}

func TestUserUpdateStatus_ReasonTracksStatus(t *testing.T) {
	db := openTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	u := makeUser("s@x.com", userDomain.RoleManager)
	if err := repo.Create(ctx, u); err != nil {
		t.Fatalf("Create: %v", err)
	}

	reason := "fee disputes"
	rows, err := repo.UpdateStatus(ctx, u.UserID, userDomain.StatusSuspended, &reason)
	if err != nil || rows != 1 {
		t.Fatalf("suspend rows=%d err=%v", rows, err)
	}
	got, err := repo.GetByUserID(ctx, u.UserID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Status != userDomain.StatusSuspended || got.SuspensionReason == nil || *got.SuspensionReason != reason {
		t.Fatalf("after suspend: status=%s reason=%v", got.Status, got.SuspensionReason)
	}

	rows, err = repo.UpdateStatus(ctx, u.UserID, userDomain.StatusActive, nil)
	if err != nil || rows != 1 {
		t.Fatalf("activate rows=%d err=%v", rows, err)
	}
	got, err = repo.GetByUserID(ctx, u.UserID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Status != userDomain.StatusActive || got.SuspensionReason != nil {
		t.Fatalf("after activate: status=%s reason=%v", got.Status, got.SuspensionReason)
	}
}

func TestUserUpdateRole_UnknownUser(t *testing.T) {
	db := openTestDB(t)
	repo := NewUserRepository(db)

	rows, err := repo.UpdateRole(context.Background(), id.NewID32(), userDomain.RoleAdmin)
	if err != nil {
		t.Fatalf("UpdateRole: %v", err)
	}
	if rows != 0 {
		t.Fatalf("rows = %d, want 0 for unknown user", rows)
	}
}

func TestUserList_SearchMatchesNameOrEmail(t *testing.T) {
	db := openTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	alice := makeUser("alice@x.com", userDomain.RoleBorrower)
	alice.Name = "Alice Walker"
	bob := makeUser("bob@x.com", userDomain.RoleManager)
	bob.Name = "Bob Stone"
	carol := makeUser("carol@alice-corp.com", userDomain.RoleBorrower)
	carol.Name = "Carol"
	for _, u := range []*userDomain.User{alice, bob, carol} {
		if err := repo.Create(ctx, u); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	got, total, err := repo.List(ctx, userDomain.ListFilter{Search: "alice", Page: 1, Limit: 10})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total != 2 || len(got) != 2 {
		t.Fatalf("total=%d len=%d, want 2/2 (name and email matches)", total, len(got))
	}

	_, total, err = repo.List(ctx, userDomain.ListFilter{Page: 1, Limit: 10})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total != 3 {
		t.Fatalf("unfiltered total = %d", total)
	}
}

func TestUserUpdateProfile(t *testing.T) {
	db := openTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	u := makeUser("p@x.com", userDomain.RoleBorrower)
	if err := repo.Create(ctx, u); err != nil {
		t.Fatalf("Create: %v", err)
	}

	rows, err := repo.UpdateProfile(ctx, "p@x.com", "Renamed", "https://cdn.x.com/p.png")
	if err != nil || rows != 1 {
		t.Fatalf("UpdateProfile rows=%d err=%v", rows, err)
	}
	got, err := repo.GetByEmail(ctx, "p@x.com")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Name != "Renamed" || got.PhotoURL != "https://cdn.x.com/p.png" {
		t.Fatalf("row = %+v", got)
	}
}
