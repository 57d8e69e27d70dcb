package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/lode/internal/adapters/callbacks" //nolint:depguard // Wired in app layer
	"go.trai.ch/lode/internal/adapters/component" //nolint:depguard // Wired in app layer
	"go.trai.ch/lode/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/lode/internal/adapters/lang"      //nolint:depguard // Wired in app layer
	"go.trai.ch/lode/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/lode/internal/adapters/telemetry/progrock"
	"go.trai.ch/lode/internal/core/ports"
	"go.trai.ch/lode/internal/engine/resolver"
	"go.trai.ch/lode/internal/engine/styles"
	"go.trai.ch/lode/internal/engine/version"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			resolver.NodeID,
			styles.NodeID,
			version.NodeID,
			callbacks.NodeID,
			component.NodeID,
			lang.NodeID,
			progrock.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			config.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ModuleLoader](ctx)
	if err != nil {
		return nil, err
	}
	res, err := graft.Dep[*resolver.Resolver](ctx)
	if err != nil {
		return nil, err
	}
	proc, err := graft.Dep[*styles.Processor](ctx)
	if err != nil {
		return nil, err
	}
	versions, err := graft.Dep[*version.Hasher](ctx)
	if err != nil {
		return nil, err
	}
	registry, err := graft.Dep[ports.CallbackRegistry](ctx)
	if err != nil {
		return nil, err
	}
	parser, err := graft.Dep[ports.ComponentParser](ctx)
	if err != nil {
		return nil, err
	}
	fallbacks, err := graft.Dep[ports.LanguageFallbacks](ctx)
	if err != nil {
		return nil, err
	}
	telemetry, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, res, proc, versions, registry, parser, fallbacks, telemetry, log), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	application, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}
	loader, err := graft.Dep[ports.ModuleLoader](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:    application,
		Logger: log,
		Loader: loader,
	}, nil
}
