package holiday

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/karbobc/workday/internal/adapters/config"
	"github.com/karbobc/workday/internal/adapters/logger"
	"github.com/karbobc/workday/internal/adapters/telemetry"
	"github.com/karbobc/workday/internal/core/domain"
	"github.com/karbobc/workday/internal/core/ports"
)

// NodeID is the unique identifier for the holiday source Graft node.
const NodeID graft.ID = "adapter.holiday"

func init() {
	graft.Register(graft.Node[ports.HolidaySource]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.SettingsNodeID, logger.NodeID, telemetry.NodeID},
		Run: func(ctx context.Context) (ports.HolidaySource, error) {
			settings, err := graft.Dep[*domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}
			return NewSource(settings.SourceURL, settings.FetchTimeout, log, tracer), nil
		},
	})
}
