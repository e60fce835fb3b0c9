package domain

import (
	"encoding/json"
	"fmt"
	"iter"
	"maps"
	"slices"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/zerr"
)

// CalendarYear maps every date of a calendar to its workday classification.
// A CalendarYear is immutable once built; replacing a calendar always means
// building a new value.
type CalendarYear struct {
	days   map[string]bool
	dates  []string
	digest uint64
}

// NewCalendarYear builds a calendar from a date to workday mapping.
// The mapping is copied, so later changes by the caller are not observed.
func NewCalendarYear(days map[string]bool) *CalendarYear {
	c := &CalendarYear{days: maps.Clone(days)}
	if c.days == nil {
		c.days = make(map[string]bool)
	}
	c.index()
	return c
}

// ParseCalendarYear decodes a persisted calendar.
func ParseCalendarYear(data []byte) (*CalendarYear, error) {
	c := &CalendarYear{}
	if err := json.Unmarshal(data, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *CalendarYear) index() {
	c.dates = slices.Sorted(maps.Keys(c.days))
	// Marshalling a map[string]bool cannot fail.
	data, _ := json.Marshal(c.days)
	c.digest = xxhash.Sum64(data)
}

// Lookup returns the classification of date and whether the calendar has an entry for it.
func (c *CalendarYear) Lookup(date string) (isWorkday, ok bool) {
	isWorkday, ok = c.days[date]
	return isWorkday, ok
}

// LookupTime is Lookup for the calendar day of t in t's location.
func (c *CalendarYear) LookupTime(t time.Time) (isWorkday, ok bool) {
	return c.Lookup(FormatDate(t))
}

// Len returns the number of dates in the calendar.
func (c *CalendarYear) Len() int {
	return len(c.days)
}

// Year returns the year of the earliest date, or 0 for an empty calendar.
func (c *CalendarYear) Year() int {
	if len(c.dates) == 0 {
		return 0
	}
	year, err := strconv.Atoi(c.dates[0][:4])
	if err != nil {
		return 0
	}
	return year
}

// Dates returns the dates of the calendar in ascending order.
func (c *CalendarYear) Dates() []string {
	return slices.Clone(c.dates)
}

// All iterates over the calendar in ascending date order.
func (c *CalendarYear) All() iter.Seq2[string, bool] {
	return func(yield func(string, bool) bool) {
		for _, date := range c.dates {
			if !yield(date, c.days[date]) {
				return
			}
		}
	}
}

// Equal reports whether both calendars hold the same dates with the same classification.
func (c *CalendarYear) Equal(other *CalendarYear) bool {
	if c == nil || other == nil {
		return c == other
	}
	return maps.Equal(c.days, other.days)
}

// Digest returns the xxhash of the canonical serialization.
func (c *CalendarYear) Digest() uint64 {
	return c.digest
}

// DigestString returns Digest as a fixed width hex string.
func (c *CalendarYear) DigestString() string {
	return fmt.Sprintf("%016x", c.digest)
}

// MarshalJSON encodes the calendar as a compact object with ascending keys.
func (c *CalendarYear) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.days)
}

// UnmarshalJSON decodes a compact calendar object, rejecting keys that are not dates.
func (c *CalendarYear) UnmarshalJSON(data []byte) error {
	var days map[string]bool
	if err := json.Unmarshal(data, &days); err != nil {
		return err
	}
	for date := range days {
		if _, err := ParseDate(date); err != nil {
			return zerr.With(zerr.Wrap(ErrInvalidCalendarDate, "failed to decode calendar"), "date", date)
		}
	}
	if days == nil {
		days = make(map[string]bool)
	}
	c.days = days
	c.index()
	return nil
}
