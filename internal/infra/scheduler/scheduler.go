package scheduler

import (
	"context"
	"fmt"
	"time"

	"contextclock/internal/app"
	"contextclock/internal/domain/history"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// BlockScheduler periodically re-evaluates the active time block.
type BlockScheduler struct {
	cronEngine    *cron.Cron
	service       *app.AutomationService
	logger        *logrus.Entry
	cronSpecCheck string
}

func NewBlockScheduler(
	service *app.AutomationService,
	logger *logrus.Entry,
	cronSpecCheck string, // e.g. "*/5 * * * *" (every 5 minutes)
) *BlockScheduler {
	return &BlockScheduler{
		cronEngine:    cron.New(cron.WithLocation(time.Local)), // Block times are the user's local time
		service:       service,
		logger:        logger,
		cronSpecCheck: cronSpecCheck,
	}
}

func (s *BlockScheduler) Start() error {
	_, err := s.cronEngine.AddFunc(s.cronSpecCheck, func() {
		s.logger.Debug("Cron job triggered for time block check")
		ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
		defer cancel()
		s.service.Check(ctx, history.TriggerPoll)
	})
	if err != nil {
		return fmt.Errorf("could not add time block check cron job (%q): %w", s.cronSpecCheck, err)
	}

	s.cronEngine.Start()
	s.logger.WithField("spec", s.cronSpecCheck).Info("Block scheduler started")
	return nil
}

func (s *BlockScheduler) Stop() {
	s.logger.Info("Stopping block scheduler...")
	ctx := s.cronEngine.Stop() // Waits for a running check to finish
	<-ctx.Done()
	s.logger.Info("Block scheduler stopped")
}
