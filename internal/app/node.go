package app

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/karbobc/workday/internal/adapters/api"       //nolint:depguard // Wired in app layer
	"github.com/karbobc/workday/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"github.com/karbobc/workday/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"github.com/karbobc/workday/internal/adapters/publisher" //nolint:depguard // Wired in app layer
	"github.com/karbobc/workday/internal/adapters/store"     //nolint:depguard // Wired in app layer
	"github.com/karbobc/workday/internal/core/domain"
	"github.com/karbobc/workday/internal/core/ports"
	"github.com/karbobc/workday/internal/engine/reloader"
	"github.com/karbobc/workday/internal/engine/scheduler"
	"github.com/karbobc/workday/internal/engine/snapshot"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.SettingsNodeID,
			logger.NodeID,
			store.NodeID,
			snapshot.NodeID,
			scheduler.NodeID,
			reloader.NodeID,
			api.NodeID,
			publisher.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewComponents(app, log), nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
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

	holder, err := graft.Dep[*snapshot.Holder](ctx)
	if err != nil {
		return nil, err
	}

	sched, err := graft.Dep[*scheduler.Scheduler](ctx)
	if err != nil {
		return nil, err
	}

	reload, err := graft.Dep[*reloader.Reloader](ctx)
	if err != nil {
		return nil, err
	}

	server, err := graft.Dep[*api.Server](ctx)
	if err != nil {
		return nil, err
	}

	eventPublisher, err := graft.Dep[ports.EventPublisher](ctx)
	if err != nil {
		return nil, err
	}

	return New(settings, calendarStore, holder, sched, reload, server, eventPublisher, log), nil
}
