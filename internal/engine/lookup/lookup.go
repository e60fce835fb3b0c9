// Package lookup answers workday queries against the installed calendar.
package lookup

import (
	"fmt"
	"time"

	"github.com/karbobc/workday/internal/core/domain"
	"github.com/karbobc/workday/internal/engine/snapshot"
	"go.trai.ch/zerr"
)

// Service reads the snapshot holder; it never touches the data file.
type Service struct {
	holder   *snapshot.Holder
	location *time.Location
	now      func() time.Time
}

// New creates a Service resolving "today" in location (time.Local when nil).
func New(holder *snapshot.Holder, location *time.Location) *Service {
	if location == nil {
		location = time.Local
	}
	return &Service{holder: holder, location: location, now: time.Now}
}

// IsWorkday reports whether date (YYYY-MM-DD) is a workday.
func (s *Service) IsWorkday(date string) (bool, error) {
	if _, err := domain.ParseDate(date); err != nil {
		return false, zerr.With(zerr.Wrap(err, "parse date"), "date", date)
	}

	cal := s.holder.Load()
	if cal == nil {
		return false, domain.ErrSnapshotUnavailable
	}

	isWorkday, ok := cal.Lookup(date)
	if !ok {
		return false, zerr.With(zerr.Wrap(domain.ErrDateNotFound, "calendar lookup"), "date", date)
	}
	return isWorkday, nil
}

// Today classifies the current date in the configured location.
func (s *Service) Today() (date string, isWorkday bool, err error) {
	date = domain.FormatDate(s.now().In(s.location))
	isWorkday, err = s.IsWorkday(date)
	return date, isWorkday, err
}

// Date builds the YYYY-MM-DD key for numeric components, zero padding month and day.
// Components are not normalized, so 2024/2/30 yields a key that IsWorkday rejects.
func Date(year, month, day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}

// Status describes the installed calendar.
type Status struct {
	Entries  int
	Year     int
	Digest   string
	LoadedAt time.Time
}

// Status returns details of the installed calendar, or false when none is installed.
func (s *Service) Status() (Status, bool) {
	cur, ok := s.holder.Current()
	if !ok {
		return Status{}, false
	}
	return Status{
		Entries:  cur.Calendar.Len(),
		Year:     cur.Calendar.Year(),
		Digest:   cur.Calendar.DigestString(),
		LoadedAt: cur.LoadedAt,
	}, true
}
