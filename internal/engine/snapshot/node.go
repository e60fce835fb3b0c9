package snapshot

import (
	"context"

	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the snapshot holder Graft node.
const NodeID graft.ID = "engine.snapshot"

func init() {
	graft.Register(graft.Node[*Holder]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Holder, error) {
			return NewHolder(), nil
		},
	})
}
