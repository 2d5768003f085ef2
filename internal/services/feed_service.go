package services

import (
	"context"

	"github.com/fitplanhub/fitplanhub/internal/access"
	"github.com/fitplanhub/fitplanhub/internal/domain/follow"
	"github.com/fitplanhub/fitplanhub/internal/domain/plan"
	"github.com/fitplanhub/fitplanhub/internal/domain/subscription"
	"github.com/fitplanhub/fitplanhub/internal/domain/user"
	"github.com/fitplanhub/fitplanhub/internal/pkg/errors"
	"github.com/fitplanhub/fitplanhub/internal/pkg/logger"
)

// FeedService assembles the personalized feed and trainer profile listings.
// Both return full plan records regardless of subscription state: following a
// trainer, or visiting their profile, shows their catalog unredacted.
type FeedService struct {
	plans   plan.Repository
	follows follow.Repository
	subs    subscription.Repository
	users   user.Repository
	logger  *logger.Logger
}

// NewFeedService creates a new feed service
func NewFeedService(
	plans plan.Repository,
	follows follow.Repository,
	subs subscription.Repository,
	users user.Repository,
	log *logger.Logger,
) *FeedService {
	return &FeedService{
		plans:   plans,
		follows: follows,
		subs:    subs,
		users:   users,
		logger:  log,
	}
}

// Feed lists plans by the user's followed trainers, newest first, each
// annotated with the viewer's subscription state
func (s *FeedService) Feed(ctx context.Context, userID int64) ([]*access.PlanView, error) {
	follows, err := s.follows.ListByFollower(ctx, userID)
	if err != nil {
		return nil, err
	}

	trainerIDs := make([]int64, 0, len(follows))
	for _, f := range follows {
		trainerIDs = append(trainerIDs, f.TrainerID)
	}

	plans, err := s.plans.ListByTrainers(ctx, trainerIDs)
	if err != nil {
		return nil, err
	}

	subscribed, err := s.subs.ActivePlanIDs(ctx, userID)
	if err != nil {
		return nil, err
	}

	items := make([]*access.PlanView, 0, len(plans))
	for _, p := range plans {
		items = append(items, access.FullView(p, subscribed[p.ID]))
	}
	return items, nil
}

// TrainerProfile is a trainer's public info, their full plan listing, and
// whether the viewer follows them
type TrainerProfile struct {
	Trainer     user.Public  `json:"trainer"`
	Plans       []*plan.Plan `json:"plans"`
	IsFollowing bool         `json:"isFollowing"`
}

// Profile assembles the trainer profile for the viewer. Trainer viewers never
// hold follow edges, so isFollowing stays false for them.
func (s *FeedService) Profile(ctx context.Context, viewer access.Viewer, trainerID int64) (*TrainerProfile, error) {
	trainer, err := s.users.GetByID(ctx, trainerID)
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, errors.NotFound("Trainer")
		}
		return nil, err
	}
	if trainer.Role != user.RoleTrainer {
		return nil, errors.NotFound("Trainer")
	}

	plans, err := s.plans.ListByTrainer(ctx, trainerID)
	if err != nil {
		return nil, err
	}
	if plans == nil {
		plans = []*plan.Plan{}
	}

	isFollowing := false
	if viewer.Role == user.RoleUser {
		if _, err := s.follows.Get(ctx, viewer.UserID, trainerID); err == nil {
			isFollowing = true
		} else if !errors.IsNotFound(err) {
			return nil, err
		}
	}

	return &TrainerProfile{
		Trainer:     trainer.Public(),
		Plans:       plans,
		IsFollowing: isFollowing,
	}, nil
}
