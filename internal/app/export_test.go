package app

import "time"

// SetClock replaces the clock used to resolve "today".
func (a *App) SetClock(now func() time.Time) {
	a.now = now
}
