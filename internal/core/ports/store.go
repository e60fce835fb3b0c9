package ports

import (
	"context"

	"github.com/karbobc/workday/internal/core/domain"
)

// CalendarStore persists the computed calendar under a cross-process lock.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type CalendarStore interface {
	// Write persists cal. Writing an empty calendar over an existing file is a no-op.
	Write(ctx context.Context, cal *domain.CalendarYear) error

	// Read loads the persisted calendar.
	// Returns domain.ErrSnapshotNotFound if nothing has been persisted yet.
	Read(ctx context.Context) (*domain.CalendarYear, error)

	// Path returns the location of the persisted calendar.
	Path() string
}
