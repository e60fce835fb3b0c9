package api

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/karbobc/workday/internal/adapters/config"
	"github.com/karbobc/workday/internal/adapters/logger"
	"github.com/karbobc/workday/internal/core/domain"
	"github.com/karbobc/workday/internal/core/ports"
	"github.com/karbobc/workday/internal/engine/lookup"
)

// NodeID is the unique identifier for the HTTP server Graft node.
const NodeID graft.ID = "adapter.api"

func init() {
	graft.Register(graft.Node[*Server]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.SettingsNodeID, logger.NodeID, lookup.NodeID},
		Run: func(ctx context.Context) (*Server, error) {
			settings, err := graft.Dep[*domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			svc, err := graft.Dep[*lookup.Service](ctx)
			if err != nil {
				return nil, err
			}
			return NewServer(settings.ListenAddr, NewRouter(NewHandler(svc, log), log), log), nil
		},
	})
}
