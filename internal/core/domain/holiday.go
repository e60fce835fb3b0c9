package domain

// HolidayRecord is a single exception to the weekday policy as published by the holiday source.
type HolidayRecord struct {
	Name     string `json:"name"`
	Date     string `json:"date"`
	IsOffDay bool   `json:"isOffDay"`
}

// IsWorkday reports the classification the record imposes on its date.
func (r HolidayRecord) IsWorkday() bool {
	return !r.IsOffDay
}
