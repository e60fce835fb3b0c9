package reloader

import (
	"sync"
	"time"

	"github.com/karbobc/workday/internal/core/ports"
)

// DefaultDebounceWindow is the default quiet period before a burst of events is handled.
const DefaultDebounceWindow = 50 * time.Millisecond

// Debouncer coalesces bursts of watch events into a single callback.
type Debouncer struct {
	mu       sync.Mutex
	pending  []ports.WatchEvent
	timer    *time.Timer
	window   time.Duration
	callback func(events []ports.WatchEvent)
}

// NewDebouncer creates a debouncer that calls callback once window has passed without new events.
func NewDebouncer(window time.Duration, callback func(events []ports.WatchEvent)) *Debouncer {
	return &Debouncer{
		window:   window,
		callback: callback,
	}
}

// Add records event and restarts the quiet period.
func (d *Debouncer) Add(event ports.WatchEvent) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.pending = append(d.pending, event)

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, d.fire)
}

func (d *Debouncer) fire() {
	d.mu.Lock()
	events := d.pending
	d.pending = nil
	d.timer = nil
	d.mu.Unlock()

	if len(events) > 0 && d.callback != nil {
		d.callback(events)
	}
}

// Flush runs the callback for pending events right away and blocks until it returns.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	if d.timer != nil {
		if !d.timer.Stop() {
			// Timer already fired; its callback owns the pending events.
			d.mu.Unlock()
			return
		}
		d.timer = nil
	}
	events := d.pending
	d.pending = nil
	d.mu.Unlock()

	if len(events) > 0 && d.callback != nil {
		d.callback(events)
	}
}
