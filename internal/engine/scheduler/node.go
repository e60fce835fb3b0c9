package scheduler

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/karbobc/workday/internal/adapters/config"    //nolint:depguard // Wired in engine wiring
	"github.com/karbobc/workday/internal/adapters/holiday"   //nolint:depguard // Wired in engine wiring
	"github.com/karbobc/workday/internal/adapters/logger"    //nolint:depguard // Wired in engine wiring
	"github.com/karbobc/workday/internal/adapters/publisher" //nolint:depguard // Wired in engine wiring
	"github.com/karbobc/workday/internal/adapters/store"     //nolint:depguard // Wired in engine wiring
	"github.com/karbobc/workday/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"github.com/karbobc/workday/internal/core/domain"
	"github.com/karbobc/workday/internal/core/ports"
	"github.com/karbobc/workday/internal/engine/calculator"
	"github.com/karbobc/workday/internal/engine/snapshot"
)

// NodeID is the unique identifier for the scheduler Graft node.
const NodeID graft.ID = "engine.scheduler"

func init() {
	graft.Register(graft.Node[*Scheduler]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.SettingsNodeID,
			holiday.NodeID,
			calculator.NodeID,
			store.NodeID,
			snapshot.NodeID,
			publisher.NodeID,
			telemetry.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Scheduler, error) {
			settings, err := graft.Dep[*domain.Settings](ctx)
			if err != nil {
				return nil, err
			}

			source, err := graft.Dep[ports.HolidaySource](ctx)
			if err != nil {
				return nil, err
			}

			calc, err := graft.Dep[*calculator.Calculator](ctx)
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

			eventPublisher, err := graft.Dep[ports.EventPublisher](ctx)
			if err != nil {
				return nil, err
			}

			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(
				source,
				calc,
				calendarStore,
				holder,
				eventPublisher,
				tracer,
				log,
				settings.Schedule,
				settings.Location,
			), nil
		},
	})
}
