// Package reloader installs the persisted calendar into the snapshot whenever the data file changes.
package reloader

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/karbobc/workday/internal/core/domain"
	"github.com/karbobc/workday/internal/core/ports"
	"github.com/karbobc/workday/internal/engine/snapshot"
	"go.trai.ch/zerr"
)

// Outcome describes the result of one reload.
type Outcome uint8

const (
	// Failed means the file could not be read; the previous calendar is kept.
	Failed Outcome = iota
	// Unchanged means the file holds the calendar already installed.
	Unchanged
	// Replaced means a new calendar was installed.
	Replaced
)

// Reloader consumes watcher events and replaces the snapshot with the persisted calendar.
type Reloader struct {
	watcher   ports.Watcher
	store     ports.CalendarStore
	holder    *snapshot.Holder
	logger    ports.Logger
	debouncer *Debouncer

	mu   sync.Mutex
	ctx  context.Context //nolint:containedctx // Reloads triggered by the debouncer outlive Start.
	done chan struct{}
}

// New creates a Reloader.
func New(
	watcher ports.Watcher,
	store ports.CalendarStore,
	holder *snapshot.Holder,
	logger ports.Logger,
	window time.Duration,
) *Reloader {
	if window <= 0 {
		window = DefaultDebounceWindow
	}
	r := &Reloader{
		watcher: watcher,
		store:   store,
		holder:  holder,
		logger:  logger,
		ctx:     context.Background(),
	}
	r.debouncer = NewDebouncer(window, r.onEvents)
	return r
}

// Start begins observing the data file. The data directory is created if missing.
func (r *Reloader) Start(ctx context.Context) error {
	path := r.store.Path()
	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrWatcherStartFailed.Error()), "path", path)
	}

	r.ctx = context.WithoutCancel(ctx)
	if err := r.watcher.Start(ctx, path); err != nil {
		return err
	}

	r.done = make(chan struct{})
	go r.consume()

	r.logger.Info("watching data file", "path", path)
	return nil
}

func (r *Reloader) consume() {
	defer close(r.done)
	for event := range r.watcher.Events() {
		r.debouncer.Add(event)
	}
}

// Stop stops the watcher and handles events that are still pending.
func (r *Reloader) Stop() error {
	err := r.watcher.Stop()
	if r.done != nil {
		<-r.done
	}
	r.debouncer.Flush()
	return err
}

func (r *Reloader) onEvents(events []ports.WatchEvent) {
	last := events[len(events)-1]
	r.logger.Info("data file changed", "path", last.Path, "op", last.Operation.String(), "events", len(events))
	r.Reload(r.ctx)
}

// Reload reads the data file and installs it unless it matches the installed calendar.
// Failures are logged and leave the snapshot untouched.
func (r *Reloader) Reload(ctx context.Context) Outcome {
	r.mu.Lock()
	defer r.mu.Unlock()

	cal, err := r.store.Read(ctx)
	if err != nil {
		r.logger.Error(zerr.With(zerr.Wrap(err, "reload failed, keeping previous calendar"), "path", r.store.Path()))
		return Failed
	}

	if digest, ok := r.holder.Digest(); ok && digest == cal.Digest() {
		r.logger.Info("calendar unchanged", "digest", cal.DigestString())
		return Unchanged
	}

	r.holder.Replace(cal)
	r.logger.Info("calendar reloaded", "entries", cal.Len(), "digest", cal.DigestString())
	return Replaced
}
