package scheduler

import (
	"context"
	"errors"
	"time"

	"github.com/karbobc/workday/internal/core/domain"
	"github.com/karbobc/workday/internal/core/ports"
	"github.com/robfig/cron/v3"
	"go.trai.ch/zerr"
)

// Start registers the refresh job on the configured schedule and starts the cron runner.
// Jobs run with ctx until Stop is called.
func (s *Scheduler) Start(ctx context.Context) error {
	s.cronMu.Lock()
	defer s.cronMu.Unlock()

	if s.cron != nil {
		return nil
	}

	logger := cronLogger{logger: s.logger}
	c := cron.New(
		cron.WithLocation(s.location),
		cron.WithLogger(logger),
		cron.WithChain(cron.Recover(logger), cron.SkipIfStillRunning(logger)),
	)

	id, err := c.AddFunc(s.schedule, func() { s.runScheduled(ctx) })
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrSchedulerStartFailed.Error()), "schedule", s.schedule)
	}

	c.Start()
	s.cron = c

	s.logger.Info("refresh scheduled",
		"schedule", s.schedule,
		"timezone", s.location.String(),
		"next", c.Entry(id).Next.Format(time.RFC3339),
	)
	return nil
}

// Stop stops the cron runner and waits for a running job to finish.
func (s *Scheduler) Stop() {
	s.cronMu.Lock()
	c := s.cron
	s.cron = nil
	s.cronMu.Unlock()

	if c == nil {
		return
	}
	<-c.Stop().Done()
}

func (s *Scheduler) runScheduled(ctx context.Context) {
	err := s.RefreshCycle(ctx)
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrRefreshInProgress):
		s.logger.Info("refresh already running, scheduled run skipped")
	default:
		s.logger.Error(err)
	}
}

// cronLogger forwards cron runner messages to ports.Logger.
type cronLogger struct {
	logger ports.Logger
}

// Info drops the runner's per-tick chatter and keeps skip notices.
func (l cronLogger) Info(msg string, keysAndValues ...any) {
	if msg == "skip" {
		l.logger.Info("cron job still running, tick skipped", keysAndValues...)
	}
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error(zerr.Wrap(err, "cron: "+msg), keysAndValues...)
}
