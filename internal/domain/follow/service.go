package follow

import "context"

// Service defines the follow side of the relationship manager
type Service interface {
	// Follow creates an edge from the user to the trainer
	Follow(ctx context.Context, userID, trainerID int64) (*Follow, error)

	// Unfollow removes the edge; NotFound when none exists
	Unfollow(ctx context.Context, userID, trainerID int64) error

	// IsFollowing reports whether the edge exists
	IsFollowing(ctx context.Context, userID, trainerID int64) (bool, error)

	// ListFollows retrieves the user's follows, newest first
	ListFollows(ctx context.Context, userID int64) ([]*Follow, error)
}
