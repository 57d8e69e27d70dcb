package callbacks

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/lode/internal/core/ports"
)

const NodeID graft.ID = "adapter.callbacks"

func init() {
	graft.Register(graft.Node[ports.CallbackRegistry]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.CallbackRegistry, error) {
			return NewRegistry(), nil
		},
	})
}
