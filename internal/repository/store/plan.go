package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/fitplanhub/fitplanhub/internal/domain/plan"
	"github.com/fitplanhub/fitplanhub/internal/domain/user"
	"github.com/fitplanhub/fitplanhub/internal/pkg/errors"
)

// PlanRepository implements plan.Repository
type PlanRepository struct {
	db *sql.DB
}

// NewPlanRepository creates a new plan repository
func NewPlanRepository(db *sql.DB) plan.Repository {
	return &PlanRepository{db: db}
}

const planColumns = `
	p.id, p.title, p.description, p.price, p.duration, p.trainer_id,
	p.created_at, p.updated_at,
	u.id, u.name, u.email, u.bio
`

const planJoin = `
	FROM plans p
	JOIN users u ON u.id = p.trainer_id
`

// Create creates a new plan
func (r *PlanRepository) Create(ctx context.Context, p *plan.Plan) error {
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now

	query := `
		INSERT INTO plans (title, description, price, duration, trainer_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		p.Title, p.Description, p.Price, p.Duration, p.TrainerID, now.Unix(), now.Unix(),
	)
	if err != nil {
		return errors.DatabaseError("Failed to create plan", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return errors.DatabaseError("Failed to get plan ID", err)
	}

	p.ID = id
	return nil
}

// GetByID retrieves a plan by ID with its trainer resolved
func (r *PlanRepository) GetByID(ctx context.Context, id int64) (*plan.Plan, error) {
	query := "SELECT " + planColumns + planJoin + " WHERE p.id = ?"

	p, err := scanPlan(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, errors.NotFound("Plan")
	}
	if err != nil {
		return nil, errors.DatabaseError("Failed to get plan", err)
	}
	return p, nil
}

// Update updates a plan
func (r *PlanRepository) Update(ctx context.Context, p *plan.Plan) error {
	p.UpdatedAt = time.Now()

	query := `
		UPDATE plans
		SET title = ?, description = ?, price = ?, duration = ?, updated_at = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		p.Title, p.Description, p.Price, p.Duration, p.UpdatedAt.Unix(), p.ID,
	)
	if err != nil {
		return errors.DatabaseError("Failed to update plan", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return errors.DatabaseError("Failed to get affected rows", err)
	}
	if rows == 0 {
		return errors.NotFound("Plan")
	}

	return nil
}

// Delete deletes a plan
func (r *PlanRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM plans WHERE id = ?", id)
	if err != nil {
		return errors.DatabaseError("Failed to delete plan", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return errors.DatabaseError("Failed to get affected rows", err)
	}
	if rows == 0 {
		return errors.NotFound("Plan")
	}

	return nil
}

// List retrieves all plans, newest first
func (r *PlanRepository) List(ctx context.Context) ([]*plan.Plan, error) {
	query := "SELECT " + planColumns + planJoin + " ORDER BY p.created_at DESC, p.id DESC"
	return r.queryPlans(ctx, query)
}

// ListByTrainer retrieves a trainer's plans, newest first
func (r *PlanRepository) ListByTrainer(ctx context.Context, trainerID int64) ([]*plan.Plan, error) {
	query := "SELECT " + planColumns + planJoin +
		" WHERE p.trainer_id = ? ORDER BY p.created_at DESC, p.id DESC"
	return r.queryPlans(ctx, query, trainerID)
}

// ListByTrainers retrieves plans owned by any of the given trainers, newest first
func (r *PlanRepository) ListByTrainers(ctx context.Context, trainerIDs []int64) ([]*plan.Plan, error) {
	if len(trainerIDs) == 0 {
		return nil, nil
	}

	placeholders := make([]string, len(trainerIDs))
	args := make([]interface{}, len(trainerIDs))
	for i, id := range trainerIDs {
		placeholders[i] = "?"
		args[i] = id
	}

	query := fmt.Sprintf("SELECT %s %s WHERE p.trainer_id IN (%s) ORDER BY p.created_at DESC, p.id DESC",
		planColumns, planJoin, strings.Join(placeholders, ", "))
	return r.queryPlans(ctx, query, args...)
}

func (r *PlanRepository) queryPlans(ctx context.Context, query string, args ...interface{}) ([]*plan.Plan, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.DatabaseError("Failed to list plans", err)
	}
	defer rows.Close()

	var plans []*plan.Plan
	for rows.Next() {
		p, err := scanPlan(rows)
		if err != nil {
			return nil, errors.DatabaseError("Failed to scan plan", err)
		}
		plans = append(plans, p)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.DatabaseError("Failed to iterate plans", err)
	}

	return plans, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanPlan(row rowScanner) (*plan.Plan, error) {
	var p plan.Plan
	var t user.Public
	var createdAt, updatedAt int64

	err := row.Scan(
		&p.ID, &p.Title, &p.Description, &p.Price, &p.Duration, &p.TrainerID,
		&createdAt, &updatedAt,
		&t.ID, &t.Name, &t.Email, &t.Bio,
	)
	if err != nil {
		return nil, err
	}

	p.CreatedAt = time.Unix(createdAt, 0)
	p.UpdatedAt = time.Unix(updatedAt, 0)
	p.Trainer = &t
	return &p, nil
}
