package subscription

import "context"

// Service defines the subscription side of the relationship manager
type Service interface {
	// Subscribe creates a subscription from the user to the plan
	Subscribe(ctx context.Context, userID, planID int64) (*Subscription, error)

	// Unsubscribe removes the subscription; NotFound when none exists
	Unsubscribe(ctx context.Context, userID, planID int64) error

	// ListSubscriptions retrieves the user's subscriptions, newest first
	ListSubscriptions(ctx context.Context, userID int64) ([]*Subscription, error)
}
