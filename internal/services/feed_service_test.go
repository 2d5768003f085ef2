package services

import (
	"context"
	"testing"

	"github.com/fitplanhub/fitplanhub/internal/access"
	"github.com/fitplanhub/fitplanhub/internal/domain/follow"
	"github.com/fitplanhub/fitplanhub/internal/domain/subscription"
	"github.com/fitplanhub/fitplanhub/internal/domain/user"
	"github.com/fitplanhub/fitplanhub/internal/pkg/errors"
	"github.com/fitplanhub/fitplanhub/internal/testutil"
)

type feedFixture struct {
	service    *FeedService
	planRepo   *testutil.MockPlanRepository
	followRepo *testutil.MockFollowRepository
	subRepo    *testutil.MockSubscriptionRepository
	userRepo   *testutil.MockUserRepository
}

func newFeedFixture(t *testing.T) *feedFixture {
	t.Helper()
	f := &feedFixture{
		planRepo:   testutil.NewMockPlanRepository(),
		followRepo: testutil.NewMockFollowRepository(),
		subRepo:    testutil.NewMockSubscriptionRepository(),
		userRepo:   testutil.NewMockUserRepository(),
	}
	f.service = NewFeedService(f.planRepo, f.followRepo, f.subRepo, f.userRepo, testLogger())
	return f
}

func TestFeedService_Feed(t *testing.T) {
	f := newFeedFixture(t)
	ctx := context.Background()

	followed := seedUser(t, f.userRepo, "followed-coach", user.RoleTrainer)
	ignored := seedUser(t, f.userRepo, "other-coach", user.RoleTrainer)
	member := seedUser(t, f.userRepo, "member", user.RoleUser)

	followedPlan := seedPlan(t, f.planRepo, followed.ID, "5K Training")
	seedPlan(t, f.planRepo, ignored.ID, "Powerlifting")

	if err := f.followRepo.Create(ctx, &follow.Follow{FollowerID: member.ID, TrainerID: followed.ID}); err != nil {
		t.Fatalf("seed follow: %v", err)
	}
	if err := f.subRepo.Create(ctx, &subscription.Subscription{
		UserID: member.ID, PlanID: followedPlan.ID, Status: subscription.StatusActive,
	}); err != nil {
		t.Fatalf("seed subscription: %v", err)
	}

	items, err := f.service.Feed(ctx, member.ID)
	if err != nil {
		t.Fatalf("Feed() error = %v", err)
	}

	if len(items) != 1 {
		t.Fatalf("Feed() returned %d items, want 1", len(items))
	}
	if items[0].ID != followedPlan.ID {
		t.Errorf("Feed() plan = %d, want %d", items[0].ID, followedPlan.ID)
	}
	// Feed items are full records with the subscription flag set
	if !items[0].Full() {
		t.Error("Feed() returned a redacted item")
	}
	if items[0].IsSubscribed == nil || !*items[0].IsSubscribed {
		t.Error("Feed() did not mark the subscribed plan")
	}
}

func TestFeedService_Feed_NoFollows(t *testing.T) {
	f := newFeedFixture(t)

	items, err := f.service.Feed(context.Background(), 42)
	if err != nil {
		t.Fatalf("Feed() error = %v", err)
	}
	if len(items) != 0 {
		t.Errorf("Feed() returned %d items, want 0", len(items))
	}
}

func TestFeedService_Profile(t *testing.T) {
	f := newFeedFixture(t)
	ctx := context.Background()

	trainer := seedUser(t, f.userRepo, "coach", user.RoleTrainer)
	member := seedUser(t, f.userRepo, "member", user.RoleUser)
	seedPlan(t, f.planRepo, trainer.ID, "5K Training")

	if err := f.followRepo.Create(ctx, &follow.Follow{FollowerID: member.ID, TrainerID: trainer.ID}); err != nil {
		t.Fatalf("seed follow: %v", err)
	}

	profile, err := f.service.Profile(ctx, access.NewViewer(member.ID, user.RoleUser), trainer.ID)
	if err != nil {
		t.Fatalf("Profile() error = %v", err)
	}

	if profile.Trainer.Name != "coach" {
		t.Errorf("Profile() trainer = %q, want %q", profile.Trainer.Name, "coach")
	}
	if len(profile.Plans) != 1 {
		t.Errorf("Profile() returned %d plans, want 1", len(profile.Plans))
	}
	if !profile.IsFollowing {
		t.Error("Profile() isFollowing = false for a follower")
	}

	// Anonymous viewers get the same plans without a follow edge
	anon, err := f.service.Profile(ctx, access.Anonymous, trainer.ID)
	if err != nil {
		t.Fatalf("Profile() anonymous error = %v", err)
	}
	if anon.IsFollowing {
		t.Error("Profile() isFollowing = true for anonymous viewer")
	}
}

func TestFeedService_Profile_NotATrainer(t *testing.T) {
	f := newFeedFixture(t)
	ctx := context.Background()

	member := seedUser(t, f.userRepo, "member", user.RoleUser)

	_, err := f.service.Profile(ctx, access.Anonymous, member.ID)
	if !errors.IsNotFound(err) {
		t.Errorf("Profile() for a non-trainer error = %v, want not found", err)
	}

	_, err = f.service.Profile(ctx, access.Anonymous, 999)
	if !errors.IsNotFound(err) {
		t.Errorf("Profile() for unknown ID error = %v, want not found", err)
	}
}

func TestFeedService_Profile_EmptyPlansIsList(t *testing.T) {
	f := newFeedFixture(t)

	trainer := seedUser(t, f.userRepo, "coach", user.RoleTrainer)

	profile, err := f.service.Profile(context.Background(), access.Anonymous, trainer.ID)
	if err != nil {
		t.Fatalf("Profile() error = %v", err)
	}
	if profile.Plans == nil {
		t.Error("Profile() plans is nil, want empty slice")
	}
}
