package scheduler

import (
	"context"
	"log/slog"
	"time"
)

// Refresher re-runs the current search.
type Refresher interface {
	Refresh(ctx context.Context) error
}

type Scheduler struct {
	refresher    Refresher
	interval     time.Duration
	runTimeout   time.Duration
	delayedStart bool
	logger       *slog.Logger
}

type Option func(*Scheduler)

// WithDelayedStart skips the immediate run; the first refresh happens on
// the first tick.
func WithDelayedStart() Option {
	return func(s *Scheduler) {
		s.delayedStart = true
	}
}

func NewScheduler(refresher Refresher, interval, runTimeout time.Duration, logger *slog.Logger, opts ...Option) *Scheduler {
	s := &Scheduler{
		refresher:  refresher,
		interval:   interval,
		runTimeout: runTimeout,
		logger:     logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start refreshes once, then on every tick until ctx is done.
func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("scheduler started", "interval", s.interval)

	if !s.delayedStart {
		s.runRefresh(ctx)
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return ctx.Err()
		case <-ticker.C:
			s.runRefresh(ctx)
		}
	}
}

func (s *Scheduler) runRefresh(ctx context.Context) {
	runCtx, cancel := context.WithTimeout(ctx, s.runTimeout)
	defer cancel()

	if err := s.refresher.Refresh(runCtx); err != nil {
		s.logger.Error("refresh failed", "error", err)
	}
}
