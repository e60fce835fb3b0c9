package scheduler

import (
	"context"
	"time"
)

// SetClock replaces the clock used to pick the refresh year.
func (s *Scheduler) SetClock(now func() time.Time) {
	s.now = now
}

// RunScheduled runs one refresh the way the cron job does.
func (s *Scheduler) RunScheduled(ctx context.Context) {
	s.runScheduled(ctx)
}
