package jobs

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

//go:generate mockgen -source=scheduler.go -destination=mock_jobs.go -package=jobs

const purgeSchedule = "0 * * * *"

type AuthCodePurger interface {
	PurgeExpiredCodes(ctx context.Context) error
}

// Scheduler owns the background cron jobs.
type Scheduler struct {
	cron     *cron.Cron
	purger   AuthCodePurger
	schedule string
}

func NewScheduler(purger AuthCodePurger) *Scheduler {
	return &Scheduler{
		cron:     cron.New(),
		purger:   purger,
		schedule: purgeSchedule,
	}
}

func (s *Scheduler) Start(ctx context.Context) error {
	_, err := s.cron.AddFunc(s.schedule, func() {
		if err := s.purger.PurgeExpiredCodes(ctx); err != nil {
			zap.L().Error("auth code purge failed", zap.Error(err))
		}
	})
	if err != nil {
		return fmt.Errorf("can't schedule auth code purge: %w", err)
	}
	s.cron.Start()
	zap.L().Info("scheduler started")

	go func() {
		<-ctx.Done()
		s.cron.Stop()
	}()
	return nil
}
