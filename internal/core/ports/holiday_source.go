package ports

import (
	"context"

	"github.com/karbobc/workday/internal/core/domain"
)

// HolidaySource fetches the holiday records published for one calendar year.
//
//go:generate mockgen -source=holiday_source.go -destination=mocks/mock_holiday_source.go -package=mocks
type HolidaySource interface {
	// Fetch returns the records for year. Network and payload failures are
	// reported as an empty result, never as an error.
	Fetch(ctx context.Context, year int) []domain.HolidayRecord
}
