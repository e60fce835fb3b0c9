package lookup

import "time"

// SetClock replaces the clock used by Today.
func (s *Service) SetClock(now func() time.Time) {
	s.now = now
}
