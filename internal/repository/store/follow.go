package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/fitplanhub/fitplanhub/internal/domain/follow"
	"github.com/fitplanhub/fitplanhub/internal/domain/user"
	"github.com/fitplanhub/fitplanhub/internal/pkg/errors"
)

// FollowRepository implements follow.Repository
type FollowRepository struct {
	db *sql.DB
}

// NewFollowRepository creates a new follow repository
func NewFollowRepository(db *sql.DB) follow.Repository {
	return &FollowRepository{db: db}
}

// Create inserts a follow edge. The unique index on (follower_id, trainer_id)
// is the backstop against racing duplicate inserts.
func (r *FollowRepository) Create(ctx context.Context, f *follow.Follow) error {
	now := time.Now()
	f.FollowedAt = now

	query := `
		INSERT INTO follows (follower_id, trainer_id, followed_at)
		VALUES (?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query, f.FollowerID, f.TrainerID, now.Unix())
	if err != nil {
		if isUniqueViolation(err) {
			return errors.Conflict("Already following this trainer")
		}
		return errors.DatabaseError("Failed to create follow", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return errors.DatabaseError("Failed to get follow ID", err)
	}

	f.ID = id
	return nil
}

// Get retrieves the edge for a (follower, trainer) pair
func (r *FollowRepository) Get(ctx context.Context, followerID, trainerID int64) (*follow.Follow, error) {
	query := `
		SELECT id, follower_id, trainer_id, followed_at
		FROM follows WHERE follower_id = ? AND trainer_id = ?
	`

	var f follow.Follow
	var followedAt int64

	err := r.db.QueryRowContext(ctx, query, followerID, trainerID).Scan(
		&f.ID, &f.FollowerID, &f.TrainerID, &followedAt,
	)
	if err == sql.ErrNoRows {
		return nil, errors.NotFound("Follow")
	}
	if err != nil {
		return nil, errors.DatabaseError("Failed to get follow", err)
	}

	f.FollowedAt = time.Unix(followedAt, 0)
	return &f, nil
}

// Delete removes the edge for a (follower, trainer) pair
func (r *FollowRepository) Delete(ctx context.Context, followerID, trainerID int64) error {
	query := `DELETE FROM follows WHERE follower_id = ? AND trainer_id = ?`

	result, err := r.db.ExecContext(ctx, query, followerID, trainerID)
	if err != nil {
		return errors.DatabaseError("Failed to delete follow", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return errors.DatabaseError("Failed to get affected rows", err)
	}
	if rows == 0 {
		return errors.NotFound("Follow")
	}

	return nil
}

// ListByFollower retrieves a user's follows with trainers resolved, newest first
func (r *FollowRepository) ListByFollower(ctx context.Context, followerID int64) ([]*follow.Follow, error) {
	query := `
		SELECT f.id, f.follower_id, f.trainer_id, f.followed_at,
		       u.id, u.name, u.email, u.bio
		FROM follows f
		JOIN users u ON u.id = f.trainer_id
		WHERE f.follower_id = ?
		ORDER BY f.followed_at DESC, f.id DESC
	`

	rows, err := r.db.QueryContext(ctx, query, followerID)
	if err != nil {
		return nil, errors.DatabaseError("Failed to list follows", err)
	}
	defer rows.Close()

	var follows []*follow.Follow
	for rows.Next() {
		var f follow.Follow
		var t user.Public
		var followedAt int64

		err := rows.Scan(&f.ID, &f.FollowerID, &f.TrainerID, &followedAt,
			&t.ID, &t.Name, &t.Email, &t.Bio)
		if err != nil {
			return nil, errors.DatabaseError("Failed to scan follow", err)
		}

		f.FollowedAt = time.Unix(followedAt, 0)
		f.Trainer = &t
		follows = append(follows, &f)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.DatabaseError("Failed to iterate follows", err)
	}

	return follows, nil
}
