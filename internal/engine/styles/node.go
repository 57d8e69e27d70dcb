package styles

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/lode/internal/adapters/cas"
	"go.trai.ch/lode/internal/adapters/fs"
	"go.trai.ch/lode/internal/adapters/less"
	"go.trai.ch/lode/internal/adapters/logger"
	"go.trai.ch/lode/internal/core/ports"
)

const NodeID graft.ID = "engine.styles"

func init() {
	graft.Register(graft.Node[*Processor]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{less.NodeID, cas.CompileCacheNodeID, cas.DependencyStoreNodeID, fs.HasherNodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Processor, error) {
			compiler, err := graft.Dep[ports.StyleCompiler](ctx)
			if err != nil {
				return nil, err
			}
			cache, err := graft.Dep[ports.CompileCache](ctx)
			if err != nil {
				return nil, err
			}
			deps, err := graft.Dep[ports.DependencyStore](ctx)
			if err != nil {
				return nil, err
			}
			hasher, err := graft.Dep[ports.FileHasher](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			cwd, err := os.Getwd()
			if err != nil {
				return nil, err
			}
			return New(compiler, cache, hasher, deps, log, cwd), nil
		},
	})
}
