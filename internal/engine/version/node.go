package version

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/lode/internal/adapters/cas"
	"go.trai.ch/lode/internal/adapters/fs"
	"go.trai.ch/lode/internal/core/ports"
	"go.trai.ch/lode/internal/engine/resolver"
)

const NodeID graft.ID = "engine.version"

func init() {
	graft.Register(graft.Node[*Hasher]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{resolver.NodeID, fs.HasherNodeID, cas.DependencyStoreNodeID},
		Run: func(ctx context.Context) (*Hasher, error) {
			res, err := graft.Dep[*resolver.Resolver](ctx)
			if err != nil {
				return nil, err
			}
			files, err := graft.Dep[ports.FileHasher](ctx)
			if err != nil {
				return nil, err
			}
			deps, err := graft.Dep[ports.DependencyStore](ctx)
			if err != nil {
				return nil, err
			}
			return New(res, files, deps), nil
		},
	})
}
