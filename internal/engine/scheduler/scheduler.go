// Package scheduler runs the fetch, compute and write refresh cycle.
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/karbobc/workday/internal/core/domain"
	"github.com/karbobc/workday/internal/core/ports"
	"github.com/karbobc/workday/internal/engine/calculator"
	"github.com/karbobc/workday/internal/engine/snapshot"
	"github.com/robfig/cron/v3"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// DefaultSchedule refreshes daily at 10:00.
const DefaultSchedule = "0 10 * * *"

const spanName = "refresh.cycle"

// Scheduler refreshes the persisted calendar, one cycle at a time.
type Scheduler struct {
	source     ports.HolidaySource
	calculator *calculator.Calculator
	store      ports.CalendarStore
	holder     *snapshot.Holder
	publisher  ports.EventPublisher
	tracer     ports.Tracer
	logger     ports.Logger

	schedule string
	location *time.Location
	now      func() time.Time

	running sync.Mutex

	cronMu sync.Mutex
	cron   *cron.Cron
}

// New creates a Scheduler. An empty schedule means DefaultSchedule and a nil
// location means time.Local.
func New(
	source ports.HolidaySource,
	calc *calculator.Calculator,
	store ports.CalendarStore,
	holder *snapshot.Holder,
	publisher ports.EventPublisher,
	tracer ports.Tracer,
	logger ports.Logger,
	schedule string,
	location *time.Location,
) *Scheduler {
	if schedule == "" {
		schedule = DefaultSchedule
	}
	if location == nil {
		location = time.Local
	}
	return &Scheduler{
		source:     source,
		calculator: calc,
		store:      store,
		holder:     holder,
		publisher:  publisher,
		tracer:     tracer,
		logger:     logger,
		schedule:   schedule,
		location:   location,
		now:        time.Now,
	}
}

// RefreshCycle fetches the current and adjacent years, computes the current
// year's calendar, persists it and installs it into the snapshot.
// A cycle started while another one runs returns domain.ErrRefreshInProgress.
func (s *Scheduler) RefreshCycle(ctx context.Context) error {
	if !s.running.TryLock() {
		return domain.ErrRefreshInProgress
	}
	defer s.running.Unlock()

	ctx, span := s.tracer.Start(ctx, spanName)
	defer span.End()

	started := s.now()
	year := started.In(s.location).Year()
	span.SetAttribute("year", year)

	records, err := s.fetchAdjacent(ctx, year)
	if err != nil {
		span.RecordError(err)
		return zerr.With(zerr.Wrap(err, domain.ErrRefreshFailed.Error()), "year", year)
	}

	cal := s.calculator.Compute(year, records)
	span.SetAttribute("entries", cal.Len())

	if err := s.store.Write(ctx, cal); err != nil {
		span.RecordError(err)
		return zerr.With(zerr.Wrap(err, domain.ErrRefreshFailed.Error()), "year", year)
	}

	s.holder.Replace(cal)

	event := domain.RefreshEvent{
		Year:        year,
		Entries:     cal.Len(),
		Digest:      cal.DigestString(),
		RefreshedAt: s.now(),
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Warn("refresh event not published", "year", year, "error", err.Error())
	}

	s.logger.Info("calendar refreshed",
		"year", year,
		"records", len(records),
		"entries", cal.Len(),
		"digest", cal.DigestString(),
		"duration", s.now().Sub(started).String(),
	)
	return nil
}

// fetchAdjacent fetches Y-1, Y and Y+1 concurrently and concatenates the
// results in that order.
func (s *Scheduler) fetchAdjacent(ctx context.Context, year int) ([]domain.HolidayRecord, error) {
	years := [...]int{year - 1, year, year + 1}
	var results [len(years)][]domain.HolidayRecord

	g, ctx := errgroup.WithContext(ctx)
	for i, y := range years {
		g.Go(func() error {
			results[i] = s.source.Fetch(ctx, y)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var records []domain.HolidayRecord
	for _, r := range results {
		records = append(records, r...)
	}
	return records, nil
}
