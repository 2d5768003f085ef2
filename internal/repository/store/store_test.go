package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/fitplanhub/fitplanhub/internal/domain/follow"
	"github.com/fitplanhub/fitplanhub/internal/domain/plan"
	"github.com/fitplanhub/fitplanhub/internal/domain/subscription"
	"github.com/fitplanhub/fitplanhub/internal/domain/user"
	"github.com/fitplanhub/fitplanhub/internal/pkg/errors"
	"github.com/fitplanhub/fitplanhub/internal/repository/store"
	"github.com/fitplanhub/fitplanhub/internal/testutil"
)

func createUser(t *testing.T, repo user.Repository, name string, role user.Role) *user.User {
	t.Helper()
	u := &user.User{
		Name:         name,
		Email:        name + "@example.com",
		PasswordHash: "hash",
		Role:         role,
	}
	if err := repo.Create(context.Background(), u); err != nil {
		t.Fatalf("create user %s: %v", name, err)
	}
	return u
}

func createPlan(t *testing.T, repo plan.Repository, trainerID int64, title string, duration int) *plan.Plan {
	t.Helper()
	p := &plan.Plan{
		Title:       title,
		Description: "description for " + title,
		Price:       29.99,
		Duration:    duration,
		TrainerID:   trainerID,
	}
	if err := repo.Create(context.Background(), p); err != nil {
		t.Fatalf("create plan %s: %v", title, err)
	}
	return p
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := store.NewUserRepository(db)
	ctx := context.Background()

	createUser(t, repo, "alice", user.RoleUser)

	dup := &user.User{Name: "Other", Email: "alice@example.com", PasswordHash: "x", Role: user.RoleTrainer}
	err := repo.Create(ctx, dup)
	if !errors.IsConflict(err) {
		t.Errorf("Create() duplicate email error = %v, want conflict", err)
	}
}

func TestUserRepository_RoundTrip(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := store.NewUserRepository(db)
	ctx := context.Background()

	created := createUser(t, repo, "coach", user.RoleTrainer)

	byID, err := repo.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if byID.Role != user.RoleTrainer {
		t.Errorf("GetByID() role = %v, want trainer", byID.Role)
	}

	byEmail, err := repo.GetByEmail(ctx, "coach@example.com")
	if err != nil {
		t.Fatalf("GetByEmail() error = %v", err)
	}
	if byEmail.ID != created.ID {
		t.Errorf("GetByEmail() ID = %d, want %d", byEmail.ID, created.ID)
	}

	if _, err := repo.GetByID(ctx, 999); !errors.IsNotFound(err) {
		t.Errorf("GetByID(999) error = %v, want not found", err)
	}
}

func TestPlanRepository_ResolvesTrainer(t *testing.T) {
	db := testutil.NewTestDB(t)
	users := store.NewUserRepository(db)
	plans := store.NewPlanRepository(db)
	ctx := context.Background()

	trainer := createUser(t, users, "coach", user.RoleTrainer)
	created := createPlan(t, plans, trainer.ID, "5K Training", 56)

	got, err := plans.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.Trainer == nil || got.Trainer.Name != "coach" {
		t.Error("GetByID() did not resolve the trainer")
	}
}

func TestPlanRepository_ListByTrainers(t *testing.T) {
	db := testutil.NewTestDB(t)
	users := store.NewUserRepository(db)
	plans := store.NewPlanRepository(db)
	ctx := context.Background()

	coachA := createUser(t, users, "coach-a", user.RoleTrainer)
	coachB := createUser(t, users, "coach-b", user.RoleTrainer)
	coachC := createUser(t, users, "coach-c", user.RoleTrainer)

	createPlan(t, plans, coachA.ID, "Plan A", 30)
	createPlan(t, plans, coachB.ID, "Plan B", 30)
	createPlan(t, plans, coachC.ID, "Plan C", 30)

	got, err := plans.ListByTrainers(ctx, []int64{coachA.ID, coachB.ID})
	if err != nil {
		t.Fatalf("ListByTrainers() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("ListByTrainers() returned %d plans, want 2", len(got))
	}
	// Newest first
	if got[0].Title != "Plan B" {
		t.Errorf("ListByTrainers() first plan = %q, want %q", got[0].Title, "Plan B")
	}

	empty, err := plans.ListByTrainers(ctx, nil)
	if err != nil {
		t.Fatalf("ListByTrainers(nil) error = %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("ListByTrainers(nil) returned %d plans, want 0", len(empty))
	}
}

func TestFollowRepository_UniqueIndex(t *testing.T) {
	db := testutil.NewTestDB(t)
	users := store.NewUserRepository(db)
	follows := store.NewFollowRepository(db)
	ctx := context.Background()

	trainer := createUser(t, users, "coach", user.RoleTrainer)
	member := createUser(t, users, "member", user.RoleUser)

	first := &follow.Follow{FollowerID: member.ID, TrainerID: trainer.ID}
	if err := follows.Create(ctx, first); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	// The unique index turns a racing duplicate into a conflict
	dup := &follow.Follow{FollowerID: member.ID, TrainerID: trainer.ID}
	if err := follows.Create(ctx, dup); !errors.IsConflict(err) {
		t.Errorf("Create() duplicate error = %v, want conflict", err)
	}

	listed, err := follows.ListByFollower(ctx, member.ID)
	if err != nil {
		t.Fatalf("ListByFollower() error = %v", err)
	}
	if len(listed) != 1 {
		t.Fatalf("ListByFollower() returned %d rows, want exactly 1", len(listed))
	}
	if listed[0].Trainer == nil || listed[0].Trainer.Name != "coach" {
		t.Error("ListByFollower() did not resolve the trainer")
	}
}

func TestFollowRepository_Delete(t *testing.T) {
	db := testutil.NewTestDB(t)
	users := store.NewUserRepository(db)
	follows := store.NewFollowRepository(db)
	ctx := context.Background()

	trainer := createUser(t, users, "coach", user.RoleTrainer)
	member := createUser(t, users, "member", user.RoleUser)

	if err := follows.Delete(ctx, member.ID, trainer.ID); !errors.IsNotFound(err) {
		t.Errorf("Delete() with no edge error = %v, want not found", err)
	}

	if err := follows.Create(ctx, &follow.Follow{FollowerID: member.ID, TrainerID: trainer.ID}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if err := follows.Delete(ctx, member.ID, trainer.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := follows.Get(ctx, member.ID, trainer.ID); !errors.IsNotFound(err) {
		t.Errorf("Get() after delete error = %v, want not found", err)
	}
}

func TestSubscriptionRepository_UniqueIndex(t *testing.T) {
	db := testutil.NewTestDB(t)
	users := store.NewUserRepository(db)
	plans := store.NewPlanRepository(db)
	subs := store.NewSubscriptionRepository(db)
	ctx := context.Background()

	trainer := createUser(t, users, "coach", user.RoleTrainer)
	member := createUser(t, users, "member", user.RoleUser)
	p := createPlan(t, plans, trainer.ID, "5K Training", 56)

	if err := subs.Create(ctx, &subscription.Subscription{UserID: member.ID, PlanID: p.ID}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	err := subs.Create(ctx, &subscription.Subscription{UserID: member.ID, PlanID: p.ID})
	if !errors.IsConflict(err) {
		t.Errorf("Create() duplicate error = %v, want conflict", err)
	}
}

func TestSubscriptionRepository_ListByUser(t *testing.T) {
	db := testutil.NewTestDB(t)
	users := store.NewUserRepository(db)
	plans := store.NewPlanRepository(db)
	subs := store.NewSubscriptionRepository(db)
	ctx := context.Background()

	trainer := createUser(t, users, "coach", user.RoleTrainer)
	member := createUser(t, users, "member", user.RoleUser)
	p := createPlan(t, plans, trainer.ID, "5K Training", 56)

	if err := subs.Create(ctx, &subscription.Subscription{UserID: member.ID, PlanID: p.ID}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	listed, err := subs.ListByUser(ctx, member.ID)
	if err != nil {
		t.Fatalf("ListByUser() error = %v", err)
	}
	if len(listed) != 1 {
		t.Fatalf("ListByUser() returned %d rows, want 1", len(listed))
	}

	sub := listed[0]
	if sub.Status != subscription.StatusActive {
		t.Errorf("ListByUser() status = %v, want active", sub.Status)
	}
	if sub.Plan == nil || sub.Plan.Title != "5K Training" {
		t.Error("ListByUser() did not resolve the plan")
	}
	if sub.Plan.Trainer == nil || sub.Plan.Trainer.Name != "coach" {
		t.Error("ListByUser() did not resolve the plan's trainer")
	}
}

func TestSubscriptionRepository_ExpireOlderThan(t *testing.T) {
	db := testutil.NewTestDB(t)
	users := store.NewUserRepository(db)
	plans := store.NewPlanRepository(db)
	subs := store.NewSubscriptionRepository(db)
	ctx := context.Background()

	trainer := createUser(t, users, "coach", user.RoleTrainer)
	member := createUser(t, users, "member", user.RoleUser)
	short := createPlan(t, plans, trainer.ID, "Short Plan", 30)
	long := createPlan(t, plans, trainer.ID, "Long Plan", 90)

	for _, planID := range []int64{short.ID, long.ID} {
		if err := subs.Create(ctx, &subscription.Subscription{UserID: member.ID, PlanID: planID}); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}

	// Backdate both purchases by 31 days: only the 30-day plan has lapsed
	backdated := time.Now().Add(-31 * 24 * time.Hour).Unix()
	if _, err := db.Exec("UPDATE subscriptions SET purchased_at = ?", backdated); err != nil {
		t.Fatalf("backdate subscriptions: %v", err)
	}

	n, err := subs.ExpireOlderThan(ctx, time.Now())
	if err != nil {
		t.Fatalf("ExpireOlderThan() error = %v", err)
	}
	if n != 1 {
		t.Errorf("ExpireOlderThan() = %d, want 1", n)
	}

	active, err := subs.ActivePlanIDs(ctx, member.ID)
	if err != nil {
		t.Fatalf("ActivePlanIDs() error = %v", err)
	}
	if active[short.ID] {
		t.Error("ActivePlanIDs() still contains the lapsed plan")
	}
	if !active[long.ID] {
		t.Error("ActivePlanIDs() dropped the still-active plan")
	}

	// A second sweep finds nothing new
	n, err = subs.ExpireOlderThan(ctx, time.Now())
	if err != nil {
		t.Fatalf("ExpireOlderThan() second pass error = %v", err)
	}
	if n != 0 {
		t.Errorf("ExpireOlderThan() second pass = %d, want 0", n)
	}
}
