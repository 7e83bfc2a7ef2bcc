package scheduler

import (
	"context"
	"time"

	"plotbook/internal/usecase"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// Scheduler runs the daily overdue sweep. The cron spec comes from
// configuration so deployments can stagger it per region.
type Scheduler struct {
	cron      *cron.Cron
	overdueUC usecase.IOverdueUseCase
	logger    *logrus.Logger
}

func NewScheduler(overdueUC usecase.IOverdueUseCase, logger *logrus.Logger) *Scheduler {
	return &Scheduler{
		cron:      cron.New(),
		overdueUC: overdueUC,
		logger:    logger,
	}
}

// Start registers the sweep job and launches the cron loop. It returns an
// error only when the cron expression does not parse.
func (s *Scheduler) Start(spec string) error {
	if _, err := s.cron.AddFunc(spec, s.runSweep); err != nil {
		return err
	}
	s.cron.Start()
	s.logger.Infof("Overdue sweep scheduled with spec %q", spec)
	return nil
}

// Stop halts the cron loop and waits for a running sweep to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("Overdue sweep scheduler stopped")
}

func (s *Scheduler) runSweep() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	flipped, err := s.overdueUC.MarkOverdueBookings(ctx, time.Now().UTC())
	if err != nil {
		s.logger.Errorf("Overdue sweep failed: %v", err)
		return
	}
	s.logger.Infof("Overdue sweep complete, %d bookings updated", flipped)
}
