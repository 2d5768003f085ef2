package services

import (
	"context"
	"net/http"

	"github.com/fitplanhub/fitplanhub/internal/domain/follow"
	"github.com/fitplanhub/fitplanhub/internal/domain/user"
	"github.com/fitplanhub/fitplanhub/internal/pkg/errors"
	"github.com/fitplanhub/fitplanhub/internal/pkg/logger"
)

// FollowService implements follow.Service
type FollowService struct {
	follows follow.Repository
	users   user.Repository
	logger  *logger.Logger
}

// NewFollowService creates a new follow service
func NewFollowService(follows follow.Repository, users user.Repository, log *logger.Logger) follow.Service {
	return &FollowService{
		follows: follows,
		users:   users,
		logger:  log,
	}
}

// Follow creates an edge from the user to the trainer. The pre-check keeps
// error messages specific; the store's unique index settles races.
func (s *FollowService) Follow(ctx context.Context, userID, trainerID int64) (*follow.Follow, error) {
	trainer, err := s.users.GetByID(ctx, trainerID)
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, errors.NotFound("Trainer")
		}
		return nil, err
	}

	if trainer.Role != user.RoleTrainer {
		return nil, errors.BadRequest("Can only follow trainers")
	}
	if trainerID == userID {
		return nil, errors.BadRequest("Cannot follow yourself")
	}

	if _, err := s.follows.Get(ctx, userID, trainerID); err == nil {
		return nil, errors.Conflict("Already following this trainer")
	} else if !errors.IsNotFound(err) {
		return nil, err
	}

	f := &follow.Follow{FollowerID: userID, TrainerID: trainerID}
	if err := s.follows.Create(ctx, f); err != nil {
		return nil, err
	}

	s.logger.WithFields(map[string]interface{}{
		"follower_id": userID,
		"trainer_id":  trainerID,
	}).Info("Trainer followed")

	f.Trainer = ptrPublic(trainer.Public())
	return f, nil
}

// Unfollow removes the edge. A second call fails NotFound, not a silent no-op.
func (s *FollowService) Unfollow(ctx context.Context, userID, trainerID int64) error {
	if err := s.follows.Delete(ctx, userID, trainerID); err != nil {
		if errors.IsNotFound(err) {
			return errors.New(errors.ErrCodeNotFound, "Not following this trainer", http.StatusNotFound)
		}
		return err
	}

	s.logger.WithFields(map[string]interface{}{
		"follower_id": userID,
		"trainer_id":  trainerID,
	}).Info("Trainer unfollowed")

	return nil
}

// IsFollowing reports whether the edge exists
func (s *FollowService) IsFollowing(ctx context.Context, userID, trainerID int64) (bool, error) {
	_, err := s.follows.Get(ctx, userID, trainerID)
	if err != nil {
		if errors.IsNotFound(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// ListFollows retrieves the user's follows, newest first
func (s *FollowService) ListFollows(ctx context.Context, userID int64) ([]*follow.Follow, error) {
	return s.follows.ListByFollower(ctx, userID)
}

func ptrPublic(p user.Public) *user.Public { return &p }
