package plan

import "context"

// Repository defines the interface for plan data access. Reads resolve the
// owning trainer.
type Repository interface {
	// Create creates a new plan
	Create(ctx context.Context, p *Plan) error

	// GetByID retrieves a plan by ID
	GetByID(ctx context.Context, id int64) (*Plan, error)

	// Update updates a plan
	Update(ctx context.Context, p *Plan) error

	// Delete deletes a plan
	Delete(ctx context.Context, id int64) error

	// List retrieves all plans, newest first
	List(ctx context.Context) ([]*Plan, error)

	// ListByTrainer retrieves a trainer's plans, newest first
	ListByTrainer(ctx context.Context, trainerID int64) ([]*Plan, error)

	// ListByTrainers retrieves plans owned by any of the given trainers,
	// newest first
	ListByTrainers(ctx context.Context, trainerIDs []int64) ([]*Plan, error)
}
