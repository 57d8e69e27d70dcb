package lang

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/lode/internal/core/ports"
)

const NodeID graft.ID = "adapter.lang"

func init() {
	graft.Register(graft.Node[ports.LanguageFallbacks]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.LanguageFallbacks, error) {
			return NewFallbacks(), nil
		},
	})
}
