package subscription

import (
	"time"

	"github.com/fitplanhub/fitplanhub/internal/domain/plan"
)

// Status of a subscription
type Status string

const (
	// StatusActive grants full plan content visibility
	StatusActive Status = "active"
	// StatusExpired is set once the plan's duration has elapsed
	StatusExpired Status = "expired"
)

// Subscription is a paid user-to-plan edge gating full content visibility.
// At most one exists per (user, plan) pair, enforced by a unique index.
type Subscription struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"userId"`
	PlanID      int64     `json:"planId"`
	PurchasedAt time.Time `json:"purchasedAt"`
	Status      Status    `json:"status"`

	// Plan is the resolved plan with its trainer, populated on list reads
	Plan *plan.Plan `json:"plan,omitempty"`
}

// Active reports whether the subscription currently grants access
func (s *Subscription) Active() bool {
	return s.Status == StatusActive
}
