package reloader

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/karbobc/workday/internal/adapters/config"
	"github.com/karbobc/workday/internal/adapters/logger"
	"github.com/karbobc/workday/internal/adapters/store"
	"github.com/karbobc/workday/internal/adapters/watcher"
	"github.com/karbobc/workday/internal/core/domain"
	"github.com/karbobc/workday/internal/core/ports"
	"github.com/karbobc/workday/internal/engine/snapshot"
)

// NodeID is the unique identifier for the reloader Graft node.
const NodeID graft.ID = "engine.reloader"

func init() {
	graft.Register(graft.Node[*Reloader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.SettingsNodeID,
			logger.NodeID,
			store.NodeID,
			watcher.NodeID,
			snapshot.NodeID,
		},
		Run: func(ctx context.Context) (*Reloader, error) {
			settings, err := graft.Dep[*domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			calendarStore, err := graft.Dep[ports.CalendarStore](ctx)
			if err != nil {
				return nil, err
			}
			fileWatcher, err := graft.Dep[ports.Watcher](ctx)
			if err != nil {
				return nil, err
			}
			holder, err := graft.Dep[*snapshot.Holder](ctx)
			if err != nil {
				return nil, err
			}
			return New(fileWatcher, calendarStore, holder, log, settings.DebounceWindow), nil
		},
	})
}
