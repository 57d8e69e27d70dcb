package cas

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/lode/internal/core/ports"
)

const (
	CompileCacheNodeID    graft.ID = "adapter.cas.compile_cache"
	DependencyStoreNodeID graft.ID = "adapter.cas.dependency_store"
)

func init() {
	graft.Register(graft.Node[ports.CompileCache]{
		ID:        CompileCacheNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.CompileCache, error) {
			cwd, err := os.Getwd()
			if err != nil {
				return nil, err
			}
			return NewCompileCacheStore(cwd), nil
		},
	})

	graft.Register(graft.Node[ports.DependencyStore]{
		ID:        DependencyStoreNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.DependencyStore, error) {
			cwd, err := os.Getwd()
			if err != nil {
				return nil, err
			}
			return NewDependencyStore(cwd), nil
		},
	})
}
