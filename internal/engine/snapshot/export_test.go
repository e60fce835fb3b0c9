package snapshot

import "time"

// SetClock replaces the clock used to stamp installs.
func (h *Holder) SetClock(now func() time.Time) {
	h.now = now
}
