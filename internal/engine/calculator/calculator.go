// Package calculator derives a full year's workday calendar from holiday records.
package calculator

import (
	"time"

	"github.com/karbobc/workday/internal/core/domain"
	"github.com/rickar/cal/v2"
)

// Calculator classifies every day of a year.
type Calculator struct {
	business *cal.BusinessCalendar
}

// New creates a Calculator whose default policy is Monday to Friday.
// No holidays are registered on the business calendar; exceptions come
// exclusively from the records passed to Compute.
func New() *Calculator {
	return &Calculator{business: cal.NewBusinessCalendar()}
}

// Compute builds the calendar of year from records fetched for year-1, year
// and year+1, in that order. Records outside year or with malformed dates are
// dropped. For duplicate dates the last record wins.
func (c *Calculator) Compute(year int, records []domain.HolidayRecord) *domain.CalendarYear {
	days := make(map[string]bool, 366)

	for _, record := range records {
		date, err := domain.ParseDate(record.Date)
		if err != nil || date.Year() != year {
			continue
		}
		days[record.Date] = record.IsWorkday()
	}

	first := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	next := first.AddDate(1, 0, 0)
	for day := first; day.Before(next); day = day.AddDate(0, 0, 1) {
		key := domain.FormatDate(day)
		if _, ok := days[key]; ok {
			continue
		}
		days[key] = c.business.IsWorkday(day)
	}

	return domain.NewCalendarYear(days)
}
