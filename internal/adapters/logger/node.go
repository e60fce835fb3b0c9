package logger

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/karbobc/workday/internal/adapters/config"
	"github.com/karbobc/workday/internal/core/domain"
	"github.com/karbobc/workday/internal/core/ports"
)

// NodeID is the unique identifier for the logger Graft node.
const NodeID graft.ID = "adapter.logger"

func init() {
	graft.Register(graft.Node[ports.Logger]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.SettingsNodeID},
		Run: func(ctx context.Context) (ports.Logger, error) {
			settings, err := graft.Dep[*domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			log := New().(*Logger)
			log.SetJSON(settings.LogFormat == FormatJSON)
			return log, nil
		},
	})
}
