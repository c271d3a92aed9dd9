// Package scheduler runs the periodic observation refresh for live sessions.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/JavaFXpert/fish-bite-predictor/internal/advisor"
)

// Scheduler periodically refreshes observations so predictions stay current
// between user interactions.
type Scheduler struct {
	scheduler *gocron.Scheduler
	service   *advisor.Service
	interval  time.Duration
	logger    *slog.Logger
}

// New creates a Scheduler. An interval of zero disables scheduling.
func New(service *advisor.Service, interval time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.UTC),
		service:   service,
		interval:  interval,
		logger:    logger,
	}
}

// Start schedules the refresh job and starts the underlying scheduler.
func (s *Scheduler) Start() error {
	if s.interval <= 0 {
		s.logger.Info("background refresh disabled")
		return nil
	}

	_, err := s.scheduler.Every(s.interval).Do(func() {
		s.logger.Debug("running observation refresh job")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		s.service.RefreshAll(ctx)
	})
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	s.logger.Info("background refresh enabled", "interval", s.interval)
	return nil
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}
