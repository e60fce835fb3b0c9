package lookup

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/karbobc/workday/internal/adapters/config"
	"github.com/karbobc/workday/internal/core/domain"
	"github.com/karbobc/workday/internal/engine/snapshot"
)

// NodeID is the unique identifier for the lookup service Graft node.
const NodeID graft.ID = "engine.lookup"

func init() {
	graft.Register(graft.Node[*Service]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.SettingsNodeID, snapshot.NodeID},
		Run: func(ctx context.Context) (*Service, error) {
			settings, err := graft.Dep[*domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			holder, err := graft.Dep[*snapshot.Holder](ctx)
			if err != nil {
				return nil, err
			}
			return New(holder, settings.Location), nil
		},
	})
}
