package ports

import "go.trai.ch/lode/internal/core/domain"

// ModuleLoader defines the interface for loading the site configuration.
//
//go:generate mockgen -source=module_loader.go -destination=mocks/mock_module_loader.go -package=mocks
type ModuleLoader interface {
	// Load reads the configuration from the given working directory and
	// returns the site snapshot with all skin overrides already merged.
	Load(cwd string) (*domain.Site, error)
}
