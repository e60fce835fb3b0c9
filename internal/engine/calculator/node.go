package calculator

import (
	"context"

	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the calculator Graft node.
const NodeID graft.ID = "engine.calculator"

func init() {
	graft.Register(graft.Node[*Calculator]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Calculator, error) {
			return New(), nil
		},
	})
}
