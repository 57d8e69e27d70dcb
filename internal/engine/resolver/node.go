package resolver

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/lode/internal/adapters/lang"
	"go.trai.ch/lode/internal/core/ports"
)

const NodeID graft.ID = "engine.resolver"

func init() {
	graft.Register(graft.Node[*Resolver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{lang.NodeID},
		Run: func(ctx context.Context) (*Resolver, error) {
			fallbacks, err := graft.Dep[ports.LanguageFallbacks](ctx)
			if err != nil {
				return nil, err
			}
			return New(fallbacks), nil
		},
	})
}
