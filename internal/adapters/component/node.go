package component

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/lode/internal/core/ports"
)

const NodeID graft.ID = "adapter.component"

func init() {
	graft.Register(graft.Node[ports.ComponentParser]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.ComponentParser, error) {
			return NewParser(), nil
		},
	})
}
