package follow

import "context"

// Repository defines the interface for follow data access
type Repository interface {
	// Create inserts a follow edge. A racing duplicate insert must surface
	// as a Conflict error backed by the store's unique index.
	Create(ctx context.Context, f *Follow) error

	// Get retrieves the edge for a (follower, trainer) pair
	Get(ctx context.Context, followerID, trainerID int64) (*Follow, error)

	// Delete removes the edge for a (follower, trainer) pair. NotFound if
	// no edge exists.
	Delete(ctx context.Context, followerID, trainerID int64) error

	// ListByFollower retrieves a user's follows with trainers resolved,
	// newest first
	ListByFollower(ctx context.Context, followerID int64) ([]*Follow, error)
}
