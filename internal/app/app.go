// Package app implements the application layer for workday.
package app

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/karbobc/workday/internal/core/domain"
	"github.com/karbobc/workday/internal/core/ports"
	"github.com/karbobc/workday/internal/engine/snapshot"
	"go.trai.ch/zerr"
)

// Refresher runs refresh cycles, on demand and on a schedule.
type Refresher interface {
	RefreshCycle(ctx context.Context) error
	Start(ctx context.Context) error
	Stop()
}

// Reloader keeps the snapshot in sync with the data file.
type Reloader interface {
	Start(ctx context.Context) error
	Stop() error
}

// Server serves lookups over HTTP.
type Server interface {
	Listen() error
	Serve() error
	Shutdown(ctx context.Context) error
	Addr() string
}

// App represents the main application logic.
type App struct {
	settings  *domain.Settings
	store     ports.CalendarStore
	holder    *snapshot.Holder
	refresher Refresher
	reloader  Reloader
	server    Server
	publisher ports.EventPublisher
	logger    ports.Logger
	now       func() time.Time
}

// New creates a new App instance.
func New(
	settings *domain.Settings,
	store ports.CalendarStore,
	holder *snapshot.Holder,
	refresher Refresher,
	reloader Reloader,
	server Server,
	publisher ports.EventPublisher,
	logger ports.Logger,
) *App {
	return &App{
		settings:  settings,
		store:     store,
		holder:    holder,
		refresher: refresher,
		reloader:  reloader,
		server:    server,
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
	}
}

// Serve runs the service until ctx is canceled or the HTTP server fails.
//
// Startup order: watcher, one synchronous refresh, initial load of the data
// file, cron, HTTP. A failure before the HTTP server runs aborts startup.
func (a *App) Serve(ctx context.Context) (err error) {
	a.logConfiguration()

	if err := a.reloader.Start(ctx); err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, a.reloader.Stop(), a.publisher.Close())
	}()

	if err := a.refresher.RefreshCycle(ctx); err != nil {
		return zerr.Wrap(err, "startup refresh failed")
	}

	cal, err := a.store.Read(ctx)
	if err != nil {
		return zerr.Wrap(err, "startup load failed")
	}
	a.holder.Replace(cal)

	if err := a.refresher.Start(ctx); err != nil {
		return err
	}
	stopCron := sync.OnceFunc(a.refresher.Stop)
	defer stopCron()

	if err := a.server.Listen(); err != nil {
		return err
	}

	served := make(chan error, 1)
	go func() {
		served <- a.server.Serve()
	}()

	a.logger.Info("workday service started", "addr", a.server.Addr(), "entries", cal.Len())

	select {
	case <-ctx.Done():
		a.logger.Info("shutdown requested")
	case err := <-served:
		if err != nil {
			return err
		}
	}

	stopCron()
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), a.settings.ShutdownTimeout)
	defer cancel()
	return a.server.Shutdown(shutdownCtx)
}

// Refresh runs a single refresh cycle.
func (a *App) Refresh(ctx context.Context) error {
	defer func() {
		if err := a.publisher.Close(); err != nil {
			a.logger.Warn("closing event publisher failed", "error", err.Error())
		}
	}()
	return a.refresher.RefreshCycle(ctx)
}

// CheckResult is the classification reported by Check.
type CheckResult struct {
	Date      string
	IsWorkday bool
}

// Check classifies date against the persisted calendar. An empty date means
// today in the configured timezone.
func (a *App) Check(ctx context.Context, date string) (CheckResult, error) {
	if date == "" {
		date = domain.FormatDate(a.now().In(a.location()))
	}
	if _, err := domain.ParseDate(date); err != nil {
		return CheckResult{}, zerr.With(zerr.Wrap(err, "check"), "date", date)
	}

	cal, err := a.store.Read(ctx)
	if err != nil {
		return CheckResult{}, err
	}

	isWorkday, ok := cal.Lookup(date)
	if !ok {
		return CheckResult{}, zerr.With(zerr.Wrap(domain.ErrDateNotFound, "check"), "date", date)
	}
	return CheckResult{Date: date, IsWorkday: isWorkday}, nil
}

func (a *App) location() *time.Location {
	if a.settings.Location != nil {
		return a.settings.Location
	}
	return time.Local
}

// logConfiguration logs the effective settings once at startup.
func (a *App) logConfiguration() {
	s := a.settings
	a.logger.Info("configuration loaded",
		"dataPath", s.DataPath,
		"sourceURL", s.SourceURL,
		"fetchTimeout", s.FetchTimeout.String(),
		"lockTimeout", s.LockTimeout.String(),
		"schedule", s.Schedule,
		"timezone", a.location().String(),
		"listenAddr", s.ListenAddr,
		"debounceWindow", s.DebounceWindow.String(),
		"shutdownTimeout", s.ShutdownTimeout.String(),
		"logFormat", s.LogFormat,
		"kafkaBrokers", strings.Join(s.Kafka.Brokers, ","),
		"kafkaTopic", s.Kafka.Topic,
	)
}
