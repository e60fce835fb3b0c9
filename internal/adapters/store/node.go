package store

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/karbobc/workday/internal/adapters/config"
	"github.com/karbobc/workday/internal/adapters/logger"
	"github.com/karbobc/workday/internal/core/domain"
	"github.com/karbobc/workday/internal/core/ports"
)

// NodeID is the unique identifier for the calendar store Graft node.
const NodeID graft.ID = "adapter.store"

func init() {
	graft.Register(graft.Node[ports.CalendarStore]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.SettingsNodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.CalendarStore, error) {
			settings, err := graft.Dep[*domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(settings.DataPath, settings.LockTimeout, log), nil
		},
	})
}
