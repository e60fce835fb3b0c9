// Package snapshot holds the calendar currently served to readers.
package snapshot

import (
	"sync/atomic"
	"time"

	"github.com/karbobc/workday/internal/core/domain"
)

// Installed is one calendar together with the moment it was installed.
type Installed struct {
	Calendar *domain.CalendarYear
	LoadedAt time.Time
}

// Holder is an atomically replaceable reference to the served calendar.
// Readers never observe a partially installed value.
type Holder struct {
	current atomic.Pointer[Installed]
	now     func() time.Time
}

// NewHolder creates an empty Holder.
func NewHolder() *Holder {
	return &Holder{now: time.Now}
}

// Replace installs cal, returning false when cal is nil.
func (h *Holder) Replace(cal *domain.CalendarYear) bool {
	if cal == nil {
		return false
	}
	h.current.Store(&Installed{Calendar: cal, LoadedAt: h.now()})
	return true
}

// Load returns the installed calendar, or nil when nothing is installed yet.
func (h *Holder) Load() *domain.CalendarYear {
	if cur := h.current.Load(); cur != nil {
		return cur.Calendar
	}
	return nil
}

// Current returns the installed calendar and its install time.
func (h *Holder) Current() (Installed, bool) {
	cur := h.current.Load()
	if cur == nil {
		return Installed{}, false
	}
	return *cur, true
}

// Digest returns the digest of the installed calendar and whether one is installed.
func (h *Holder) Digest() (uint64, bool) {
	cal := h.Load()
	if cal == nil {
		return 0, false
	}
	return cal.Digest(), true
}
