package follow

import (
	"time"

	"github.com/fitplanhub/fitplanhub/internal/domain/user"
)

// Follow is a free user-to-trainer edge subscribing the follower to the
// trainer's updates. At most one edge exists per (follower, trainer) pair,
// enforced by a unique index in the store.
type Follow struct {
	ID         int64     `json:"id"`
	FollowerID int64     `json:"followerId"`
	TrainerID  int64     `json:"trainerId"`
	FollowedAt time.Time `json:"followedAt"`

	// Trainer is the resolved followed trainer, populated on list reads
	Trainer *user.Public `json:"trainer,omitempty"`
}
