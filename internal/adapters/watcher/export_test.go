package watcher

import (
	"github.com/fsnotify/fsnotify"
	"github.com/karbobc/workday/internal/core/ports"
)

// ConvertEvent exposes convertEvent for tests.
func (w *Watcher) ConvertEvent(event fsnotify.Event) (ports.WatchEvent, bool) {
	return w.convertEvent(event)
}

// SetName sets the watched base name without starting the watcher.
func (w *Watcher) SetName(name string) {
	w.name = name
}

// Started reports whether an inotify instance is open.
func (w *Watcher) Started() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.fsWatcher != nil
}
