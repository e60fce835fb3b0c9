package domain

import "time"

// RefreshEventType is the event type attached to published refresh events.
const RefreshEventType = "workday.calendar.refreshed"

// RefreshEvent announces that a freshly computed calendar was persisted.
type RefreshEvent struct {
	EventID     string    `json:"eventId"`
	Year        int       `json:"year"`
	Entries     int       `json:"entries"`
	Digest      string    `json:"digest"`
	RefreshedAt time.Time `json:"refreshedAt"`
}
