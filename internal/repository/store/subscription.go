package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/fitplanhub/fitplanhub/internal/domain/plan"
	"github.com/fitplanhub/fitplanhub/internal/domain/subscription"
	"github.com/fitplanhub/fitplanhub/internal/domain/user"
	"github.com/fitplanhub/fitplanhub/internal/pkg/errors"
)

// SubscriptionRepository implements subscription.Repository
type SubscriptionRepository struct {
	db *sql.DB
}

// NewSubscriptionRepository creates a new subscription repository
func NewSubscriptionRepository(db *sql.DB) subscription.Repository {
	return &SubscriptionRepository{db: db}
}

// Create inserts a subscription. The unique index on (user_id, plan_id) is the
// backstop against racing duplicate inserts.
func (r *SubscriptionRepository) Create(ctx context.Context, s *subscription.Subscription) error {
	now := time.Now()
	s.PurchasedAt = now
	if s.Status == "" {
		s.Status = subscription.StatusActive
	}

	query := `
		INSERT INTO subscriptions (user_id, plan_id, purchased_at, status)
		VALUES (?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query, s.UserID, s.PlanID, now.Unix(), string(s.Status))
	if err != nil {
		if isUniqueViolation(err) {
			return errors.Conflict("Already subscribed to this plan")
		}
		return errors.DatabaseError("Failed to create subscription", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return errors.DatabaseError("Failed to get subscription ID", err)
	}

	s.ID = id
	return nil
}

// Get retrieves the subscription for a (user, plan) pair
func (r *SubscriptionRepository) Get(ctx context.Context, userID, planID int64) (*subscription.Subscription, error) {
	query := `
		SELECT id, user_id, plan_id, purchased_at, status
		FROM subscriptions WHERE user_id = ? AND plan_id = ?
	`

	var s subscription.Subscription
	var purchasedAt int64
	var status string

	err := r.db.QueryRowContext(ctx, query, userID, planID).Scan(
		&s.ID, &s.UserID, &s.PlanID, &purchasedAt, &status,
	)
	if err == sql.ErrNoRows {
		return nil, errors.NotFound("Subscription")
	}
	if err != nil {
		return nil, errors.DatabaseError("Failed to get subscription", err)
	}

	s.PurchasedAt = time.Unix(purchasedAt, 0)
	s.Status = subscription.Status(status)
	return &s, nil
}

// Delete removes the subscription for a (user, plan) pair
func (r *SubscriptionRepository) Delete(ctx context.Context, userID, planID int64) error {
	query := `DELETE FROM subscriptions WHERE user_id = ? AND plan_id = ?`

	result, err := r.db.ExecContext(ctx, query, userID, planID)
	if err != nil {
		return errors.DatabaseError("Failed to delete subscription", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return errors.DatabaseError("Failed to get affected rows", err)
	}
	if rows == 0 {
		return errors.NotFound("Subscription")
	}

	return nil
}

// DeleteByPlan removes all subscriptions referencing the plan
func (r *SubscriptionRepository) DeleteByPlan(ctx context.Context, planID int64) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM subscriptions WHERE plan_id = ?", planID)
	if err != nil {
		return errors.DatabaseError("Failed to delete subscriptions", err)
	}
	return nil
}

// ListByUser retrieves a user's subscriptions with plans and trainers resolved,
// newest purchase first
func (r *SubscriptionRepository) ListByUser(ctx context.Context, userID int64) ([]*subscription.Subscription, error) {
	query := `
		SELECT s.id, s.user_id, s.plan_id, s.purchased_at, s.status,
		       p.id, p.title, p.description, p.price, p.duration, p.trainer_id,
		       p.created_at, p.updated_at,
		       u.id, u.name, u.email, u.bio
		FROM subscriptions s
		JOIN plans p ON p.id = s.plan_id
		JOIN users u ON u.id = p.trainer_id
		WHERE s.user_id = ?
		ORDER BY s.purchased_at DESC, s.id DESC
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, errors.DatabaseError("Failed to list subscriptions", err)
	}
	defer rows.Close()

	var subs []*subscription.Subscription
	for rows.Next() {
		var s subscription.Subscription
		var p plan.Plan
		var t user.Public
		var purchasedAt, planCreated, planUpdated int64
		var status string

		err := rows.Scan(
			&s.ID, &s.UserID, &s.PlanID, &purchasedAt, &status,
			&p.ID, &p.Title, &p.Description, &p.Price, &p.Duration, &p.TrainerID,
			&planCreated, &planUpdated,
			&t.ID, &t.Name, &t.Email, &t.Bio,
		)
		if err != nil {
			return nil, errors.DatabaseError("Failed to scan subscription", err)
		}

		s.PurchasedAt = time.Unix(purchasedAt, 0)
		s.Status = subscription.Status(status)
		p.CreatedAt = time.Unix(planCreated, 0)
		p.UpdatedAt = time.Unix(planUpdated, 0)
		p.Trainer = &t
		s.Plan = &p
		subs = append(subs, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.DatabaseError("Failed to iterate subscriptions", err)
	}

	return subs, nil
}

// ActivePlanIDs returns the set of plan IDs the user actively subscribes to
func (r *SubscriptionRepository) ActivePlanIDs(ctx context.Context, userID int64) (map[int64]bool, error) {
	query := `SELECT plan_id FROM subscriptions WHERE user_id = ? AND status = ?`

	rows, err := r.db.QueryContext(ctx, query, userID, string(subscription.StatusActive))
	if err != nil {
		return nil, errors.DatabaseError("Failed to list active subscriptions", err)
	}
	defer rows.Close()

	ids := make(map[int64]bool)
	for rows.Next() {
		var planID int64
		if err := rows.Scan(&planID); err != nil {
			return nil, errors.DatabaseError("Failed to scan subscription", err)
		}
		ids[planID] = true
	}

	if err := rows.Err(); err != nil {
		return nil, errors.DatabaseError("Failed to iterate subscriptions", err)
	}

	return ids, nil
}

// ExpireOlderThan marks active subscriptions as expired once the plan's
// duration in days has elapsed since purchase
func (r *SubscriptionRepository) ExpireOlderThan(ctx context.Context, now time.Time) (int64, error) {
	query := `
		UPDATE subscriptions
		SET status = ?
		WHERE status = ?
		  AND purchased_at + (SELECT duration FROM plans WHERE plans.id = subscriptions.plan_id) * 86400 < ?
	`

	result, err := r.db.ExecContext(ctx, query,
		string(subscription.StatusExpired), string(subscription.StatusActive), now.Unix(),
	)
	if err != nil {
		return 0, errors.DatabaseError("Failed to expire subscriptions", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, errors.DatabaseError("Failed to get affected rows", err)
	}

	return rows, nil
}
