package worker

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/fitplanhub/fitplanhub/internal/domain/subscription"
	"github.com/fitplanhub/fitplanhub/internal/pkg/logger"
	"github.com/fitplanhub/fitplanhub/internal/pkg/metrics"
)

// ExpirySweeper periodically marks subscriptions as expired once the plan's
// duration has elapsed since purchase
type ExpirySweeper struct {
	subs     subscription.Repository
	schedule string
	cron     *cron.Cron
	logger   *logger.Logger
}

// NewExpirySweeper creates a new expiry sweeper. schedule is a cron expression,
// e.g. "@hourly".
func NewExpirySweeper(subs subscription.Repository, schedule string, log *logger.Logger) *ExpirySweeper {
	return &ExpirySweeper{
		subs:     subs,
		schedule: schedule,
		cron:     cron.New(),
		logger:   log,
	}
}

// Start registers the sweep and begins the cron scheduler. An initial sweep
// runs immediately so a restart never leaves stale rows for a full interval.
func (s *ExpirySweeper) Start(ctx context.Context) error {
	s.Sweep(ctx)

	if _, err := s.cron.AddFunc(s.schedule, func() {
		s.Sweep(ctx)
	}); err != nil {
		return err
	}

	s.cron.Start()
	s.logger.Infof("Subscription expiry sweeper started (%s)", s.schedule)
	return nil
}

// Stop halts the scheduler and waits for a running sweep to finish
func (s *ExpirySweeper) Stop() {
	stopCtx := s.cron.Stop()
	<-stopCtx.Done()
	s.logger.Info("Subscription expiry sweeper stopped")
}

// Sweep runs a single expiry pass
func (s *ExpirySweeper) Sweep(ctx context.Context) {
	n, err := s.subs.ExpireOlderThan(ctx, time.Now())
	if err != nil {
		s.logger.ErrorWithErr(err, "Subscription expiry sweep failed")
		return
	}
	if n > 0 {
		metrics.ObserveExpired(n)
		s.logger.Infof("Expired %d subscriptions", n)
	}
}
