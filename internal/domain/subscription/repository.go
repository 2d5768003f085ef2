package subscription

import (
	"context"
	"time"
)

// Repository defines the interface for subscription data access
type Repository interface {
	// Create inserts a subscription. A racing duplicate insert must surface
	// as a Conflict error backed by the store's unique index.
	Create(ctx context.Context, s *Subscription) error

	// Get retrieves the subscription for a (user, plan) pair
	Get(ctx context.Context, userID, planID int64) (*Subscription, error)

	// Delete removes the subscription for a (user, plan) pair. NotFound if
	// none exists.
	Delete(ctx context.Context, userID, planID int64) error

	// DeleteByPlan removes all subscriptions referencing the plan
	DeleteByPlan(ctx context.Context, planID int64) error

	// ListByUser retrieves a user's subscriptions with plans and trainers
	// resolved, newest purchase first
	ListByUser(ctx context.Context, userID int64) ([]*Subscription, error)

	// ActivePlanIDs returns the set of plan IDs the user holds an active
	// subscription for
	ActivePlanIDs(ctx context.Context, userID int64) (map[int64]bool, error)

	// ExpireOlderThan marks active subscriptions as expired when the plan's
	// duration has elapsed relative to now. Returns the number updated.
	ExpireOlderThan(ctx context.Context, now time.Time) (int64, error)
}
