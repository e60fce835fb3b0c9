package ports

import (
	"context"

	"github.com/karbobc/workday/internal/core/domain"
)

// EventPublisher announces refreshed calendars to other services.
//
//go:generate mockgen -source=publisher.go -destination=mocks/mock_publisher.go -package=mocks
type EventPublisher interface {
	// Publish sends a refresh event.
	Publish(ctx context.Context, event domain.RefreshEvent) error
	// Close flushes pending events and releases the connection.
	Close() error
}
