package worker

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/fitplanhub/fitplanhub/internal/domain/subscription"
	"github.com/fitplanhub/fitplanhub/internal/pkg/logger"
	"github.com/fitplanhub/fitplanhub/internal/testutil"
)

// sweepRepo overrides ExpireOlderThan to observe sweeper behavior
type sweepRepo struct {
	subscription.Repository
	expired int64
	err     error
	calls   int
}

func (r *sweepRepo) ExpireOlderThan(ctx context.Context, now time.Time) (int64, error) {
	r.calls++
	return r.expired, r.err
}

func TestExpirySweeper_SweepsImmediatelyOnStart(t *testing.T) {
	repo := &sweepRepo{Repository: testutil.NewMockSubscriptionRepository(), expired: 3}
	log := logger.New(logger.Config{Level: "error", Format: "json"})

	sweeper := NewExpirySweeper(repo, "@hourly", log)
	if err := sweeper.Start(context.Background()); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	defer sweeper.Stop()

	if repo.calls != 1 {
		t.Errorf("Start() ran %d sweeps, want 1 immediate sweep", repo.calls)
	}
}

func TestExpirySweeper_BadSchedule(t *testing.T) {
	repo := &sweepRepo{Repository: testutil.NewMockSubscriptionRepository()}
	log := logger.New(logger.Config{Level: "error", Format: "json"})

	sweeper := NewExpirySweeper(repo, "not a schedule", log)
	if err := sweeper.Start(context.Background()); err == nil {
		t.Error("Start() accepted an invalid schedule")
	}
}

func TestExpirySweeper_SweepSurvivesRepositoryError(t *testing.T) {
	repo := &sweepRepo{Repository: testutil.NewMockSubscriptionRepository(), err: fmt.Errorf("db down")}
	log := logger.New(logger.Config{Level: "error", Format: "json"})

	sweeper := NewExpirySweeper(repo, "@hourly", log)
	// Must not panic
	sweeper.Sweep(context.Background())
	if repo.calls != 1 {
		t.Errorf("Sweep() ran %d times, want 1", repo.calls)
	}
}
