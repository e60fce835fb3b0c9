package publisher

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/karbobc/workday/internal/adapters/config"
	"github.com/karbobc/workday/internal/adapters/logger"
	"github.com/karbobc/workday/internal/core/domain"
	"github.com/karbobc/workday/internal/core/ports"
)

// NodeID is the unique identifier for the event publisher Graft node.
const NodeID graft.ID = "adapter.publisher"

func init() {
	graft.Register(graft.Node[ports.EventPublisher]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.SettingsNodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.EventPublisher, error) {
			settings, err := graft.Dep[*domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			if !settings.Kafka.Enabled() {
				return NewNoop(), nil
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewKafka(settings.Kafka.Brokers, settings.Kafka.Topic, log), nil
		},
	})
}
