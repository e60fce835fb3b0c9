package publisher

import (
	"context"

	"github.com/karbobc/workday/internal/core/domain"
	"github.com/karbobc/workday/internal/core/ports"
)

var _ ports.EventPublisher = (*Noop)(nil)

// Noop discards events. It is used when no broker is configured.
type Noop struct{}

// NewNoop creates a Noop publisher.
func NewNoop() *Noop {
	return &Noop{}
}

// Publish does nothing.
func (*Noop) Publish(context.Context, domain.RefreshEvent) error { return nil }

// Close does nothing.
func (*Noop) Close() error { return nil }
