package services

import (
	"context"

	"github.com/fitplanhub/fitplanhub/internal/access"
	"github.com/fitplanhub/fitplanhub/internal/domain/plan"
	"github.com/fitplanhub/fitplanhub/internal/domain/subscription"
	"github.com/fitplanhub/fitplanhub/internal/pkg/errors"
	"github.com/fitplanhub/fitplanhub/internal/pkg/logger"
)

// PlanService owns plan CRUD and the catalog listing. Every read that leaves
// this service for a non-owner goes through the access policy.
type PlanService struct {
	plans  plan.Repository
	subs   subscription.Repository
	logger *logger.Logger
}

// NewPlanService creates a new plan service
func NewPlanService(plans plan.Repository, subs subscription.Repository, log *logger.Logger) *PlanService {
	return &PlanService{
		plans:  plans,
		subs:   subs,
		logger: log,
	}
}

// Create publishes a new plan owned by the trainer
func (s *PlanService) Create(ctx context.Context, trainerID int64, title, description string, price float64, duration int) (*plan.Plan, error) {
	p := &plan.Plan{
		Title:       title,
		Description: description,
		Price:       price,
		Duration:    duration,
		TrainerID:   trainerID,
	}

	if err := s.plans.Create(ctx, p); err != nil {
		s.logger.ErrorWithErr(err, "Failed to create plan")
		return nil, err
	}

	s.logger.WithFields(map[string]interface{}{
		"plan_id":    p.ID,
		"trainer_id": trainerID,
	}).Info("Plan created")

	// Re-read to resolve the trainer
	return s.plans.GetByID(ctx, p.ID)
}

// Update applies a partial update to the trainer's own plan
func (s *PlanService) Update(ctx context.Context, trainerID, planID int64, upd plan.Update) (*plan.Plan, error) {
	p, err := s.plans.GetByID(ctx, planID)
	if err != nil {
		return nil, err
	}
	if p.TrainerID != trainerID {
		return nil, errors.Forbidden("You can only edit your own plans")
	}

	if upd.Title != nil {
		p.Title = *upd.Title
	}
	if upd.Description != nil {
		p.Description = *upd.Description
	}
	if upd.Price != nil {
		p.Price = *upd.Price
	}
	if upd.Duration != nil {
		p.Duration = *upd.Duration
	}

	if err := s.plans.Update(ctx, p); err != nil {
		s.logger.ErrorWithErr(err, "Failed to update plan")
		return nil, err
	}

	return p, nil
}

// Delete removes the trainer's own plan and every subscription referencing it.
// Follows are trainer-scoped and stay untouched.
func (s *PlanService) Delete(ctx context.Context, trainerID, planID int64) error {
	p, err := s.plans.GetByID(ctx, planID)
	if err != nil {
		return err
	}
	if p.TrainerID != trainerID {
		return errors.Forbidden("You can only delete your own plans")
	}

	if err := s.subs.DeleteByPlan(ctx, planID); err != nil {
		s.logger.ErrorWithErr(err, "Failed to cascade subscriptions")
		return err
	}
	if err := s.plans.Delete(ctx, planID); err != nil {
		s.logger.ErrorWithErr(err, "Failed to delete plan")
		return err
	}

	s.logger.WithFields(map[string]interface{}{
		"plan_id":    planID,
		"trainer_id": trainerID,
	}).Info("Plan deleted")

	return nil
}

// Catalog lists every plan through the viewer's access policy. Anonymous
// viewers get previews across the board.
func (s *PlanService) Catalog(ctx context.Context, viewer access.Viewer) ([]*access.PlanView, error) {
	plans, err := s.plans.List(ctx)
	if err != nil {
		return nil, err
	}

	subscribed := map[int64]bool{}
	if !viewer.IsAnonymous() {
		subscribed, err = s.subs.ActivePlanIDs(ctx, viewer.UserID)
		if err != nil {
			return nil, err
		}
	}

	views := make([]*access.PlanView, 0, len(plans))
	for _, p := range plans {
		views = append(views, access.Evaluate(viewer, p, subscribed[p.ID]))
	}
	return views, nil
}

// MyPlans lists the trainer's own plans in full, without policy evaluation
func (s *PlanService) MyPlans(ctx context.Context, trainerID int64) ([]*plan.Plan, error) {
	return s.plans.ListByTrainer(ctx, trainerID)
}

// Get returns the single-plan view for the viewer: the same policy as the
// catalog, with only the one relevant subscription fetched. A redacted result
// carries an explicit isSubscribed=false.
func (s *PlanService) Get(ctx context.Context, viewer access.Viewer, planID int64) (*access.PlanView, error) {
	p, err := s.plans.GetByID(ctx, planID)
	if err != nil {
		return nil, err
	}

	isSubscribed := false
	if !viewer.IsAnonymous() {
		sub, err := s.subs.Get(ctx, viewer.UserID, planID)
		if err != nil && !errors.IsNotFound(err) {
			return nil, err
		}
		isSubscribed = sub != nil && sub.Active()
	}

	view := access.Evaluate(viewer, p, isSubscribed)
	if !view.Full() {
		view = access.PreviewWithFlag(p)
	}
	return view, nil
}
