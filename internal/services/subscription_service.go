package services

import (
	"context"

	"github.com/fitplanhub/fitplanhub/internal/domain/plan"
	"github.com/fitplanhub/fitplanhub/internal/domain/subscription"
	"github.com/fitplanhub/fitplanhub/internal/pkg/errors"
	"github.com/fitplanhub/fitplanhub/internal/pkg/logger"
)

// SubscriptionService implements subscription.Service
type SubscriptionService struct {
	subs   subscription.Repository
	plans  plan.Repository
	logger *logger.Logger
}

// NewSubscriptionService creates a new subscription service
func NewSubscriptionService(subs subscription.Repository, plans plan.Repository, log *logger.Logger) subscription.Service {
	return &SubscriptionService{
		subs:   subs,
		plans:  plans,
		logger: log,
	}
}

// Subscribe creates a subscription from the user to the plan. The pre-check
// keeps error messages specific; the store's unique index settles races.
func (s *SubscriptionService) Subscribe(ctx context.Context, userID, planID int64) (*subscription.Subscription, error) {
	p, err := s.plans.GetByID(ctx, planID)
	if err != nil {
		return nil, err
	}

	if _, err := s.subs.Get(ctx, userID, planID); err == nil {
		return nil, errors.Conflict("Already subscribed to this plan")
	} else if !errors.IsNotFound(err) {
		return nil, err
	}

	sub := &subscription.Subscription{
		UserID: userID,
		PlanID: planID,
		Status: subscription.StatusActive,
	}
	if err := s.subs.Create(ctx, sub); err != nil {
		return nil, err
	}

	s.logger.WithFields(map[string]interface{}{
		"user_id": userID,
		"plan_id": planID,
	}).Info("Plan subscribed")

	sub.Plan = p
	return sub, nil
}

// Unsubscribe removes the subscription. A second call fails NotFound.
func (s *SubscriptionService) Unsubscribe(ctx context.Context, userID, planID int64) error {
	if err := s.subs.Delete(ctx, userID, planID); err != nil {
		return err
	}

	s.logger.WithFields(map[string]interface{}{
		"user_id": userID,
		"plan_id": planID,
	}).Info("Plan unsubscribed")

	return nil
}

// ListSubscriptions retrieves the user's subscriptions, newest first
func (s *SubscriptionService) ListSubscriptions(ctx context.Context, userID int64) ([]*subscription.Subscription, error) {
	return s.subs.ListByUser(ctx, userID)
}
