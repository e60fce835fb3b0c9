// Package watcher observes the calendar data file for changes.
package watcher

import (
	"context"
	"iter"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/karbobc/workday/internal/core/domain"
	"github.com/karbobc/workday/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Watcher = (*Watcher)(nil)

const eventChannelBuffer = 16

// Watcher implements ports.Watcher using fsnotify.
// It watches the directory holding the file, so atomic replacements and
// re-creations of the file are observed too. The inotify instance is only
// opened by Start.
type Watcher struct {
	mu        sync.Mutex
	fsWatcher *fsnotify.Watcher
	logger    ports.Logger
	name      string
	events    chan ports.WatchEvent
	closeOnce sync.Once
}

// New creates a file watcher.
func New(logger ports.Logger) *Watcher {
	return &Watcher{
		logger: logger,
		events: make(chan ports.WatchEvent, eventChannelBuffer),
	}
}

// Start begins watching path. The parent directory must exist.
func (w *Watcher) Start(ctx context.Context, path string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.fsWatcher != nil {
		return zerr.With(zerr.Wrap(domain.ErrWatcherStartFailed, "already started"), "path", path)
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return zerr.Wrap(err, domain.ErrWatcherStartFailed.Error())
	}

	dir := filepath.Dir(path)
	if err := fsWatcher.Add(dir); err != nil {
		_ = fsWatcher.Close()
		return zerr.With(zerr.Wrap(err, domain.ErrWatcherStartFailed.Error()), "dir", dir)
	}

	w.name = filepath.Base(path)
	w.fsWatcher = fsWatcher
	go w.processEvents(ctx, fsWatcher)

	return nil
}

// Stop stops the watcher and releases all resources.
// Stopping a watcher that never started ends its event stream.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	fsWatcher := w.fsWatcher
	w.mu.Unlock()

	if fsWatcher == nil {
		w.closeEvents()
		return nil
	}
	return fsWatcher.Close()
}

func (w *Watcher) closeEvents() {
	w.closeOnce.Do(func() { close(w.events) })
}

// Events returns an iterator of change events. It ends once the watcher stops.
func (w *Watcher) Events() iter.Seq[ports.WatchEvent] {
	return func(yield func(ports.WatchEvent) bool) {
		for event := range w.events {
			if !yield(event) {
				return
			}
		}
	}
}

func (w *Watcher) processEvents(ctx context.Context, fsWatcher *fsnotify.Watcher) {
	defer w.closeEvents()

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-fsWatcher.Events:
			if !ok {
				return
			}

			watchEvent, ok := w.convertEvent(event)
			if !ok {
				continue
			}

			select {
			case w.events <- watchEvent:
			case <-ctx.Done():
				return
			}

		case err, ok := <-fsWatcher.Errors:
			if !ok {
				return
			}
			w.logger.Error(zerr.Wrap(err, "file watcher error"))
		}
	}
}

// convertEvent keeps creations and writes of the watched file only.
func (w *Watcher) convertEvent(event fsnotify.Event) (ports.WatchEvent, bool) {
	if filepath.Base(event.Name) != w.name {
		return ports.WatchEvent{}, false
	}

	switch {
	case event.Has(fsnotify.Write):
		return ports.WatchEvent{Path: event.Name, Operation: ports.OpWrite}, true
	case event.Has(fsnotify.Create):
		return ports.WatchEvent{Path: event.Name, Operation: ports.OpCreate}, true
	default:
		return ports.WatchEvent{}, false
	}
}
