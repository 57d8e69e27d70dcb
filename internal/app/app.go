// Package app implements the application layer for lode.
package app

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.trai.ch/lode/internal/core/domain"
	"go.trai.ch/lode/internal/core/ports"
	"go.trai.ch/lode/internal/engine/expander"
	"go.trai.ch/lode/internal/engine/resolver"
	"go.trai.ch/lode/internal/engine/styles"
	"go.trai.ch/lode/internal/engine/version"
	"go.trai.ch/zerr"
)

// App represents the main application logic: it loads one configuration
// snapshot and builds module responses and version summaries against it. An
// App instance corresponds to one snapshot; expansion caches live and die
// with it.
type App struct {
	loader    ports.ModuleLoader
	resolver  *resolver.Resolver
	styles    *styles.Processor
	versions  *version.Hasher
	callbacks ports.CallbackRegistry
	parser    ports.ComponentParser
	fallbacks ports.LanguageFallbacks
	telemetry ports.Telemetry
	logger    ports.Logger

	mu        sync.Mutex
	site      *domain.Site
	expanders map[string]*expander.Expander
}

// New creates a new App instance.
func New(
	loader ports.ModuleLoader,
	res *resolver.Resolver,
	proc *styles.Processor,
	versions *version.Hasher,
	callbacks ports.CallbackRegistry,
	parser ports.ComponentParser,
	fallbacks ports.LanguageFallbacks,
	telemetry ports.Telemetry,
	logger ports.Logger,
) *App {
	return &App{
		loader:    loader,
		resolver:  res,
		styles:    proc,
		versions:  versions,
		callbacks: callbacks,
		parser:    parser,
		fallbacks: fallbacks,
		telemetry: telemetry,
		logger:    logger,
		expanders: make(map[string]*expander.Expander),
	}
}

// Build produces the full servable response for each named module under the
// given request context.
func (a *App) Build(ctx context.Context, names []string, rc domain.Context) ([]*domain.ModuleResponse, error) {
	if len(names) == 0 {
		return nil, domain.ErrNoModulesSpecified
	}

	site, err := a.ensureSite()
	if err != nil {
		return nil, err
	}

	responses := make([]*domain.ModuleResponse, 0, len(names))
	for _, name := range names {
		ctx, vertex := a.telemetry.Record(ctx, "build "+name)
		resp, err := a.buildModule(ctx, site, name, rc)
		vertex.Complete(err)
		if err != nil {
			return nil, err
		}
		responses = append(responses, resp)
	}
	return responses, nil
}

// Version produces the version summary hash for each named module without
// materializing any output: no package file is read and no primary callback
// runs.
func (a *App) Version(ctx context.Context, names []string, rc domain.Context) (map[string]string, error) {
	if len(names) == 0 {
		return nil, domain.ErrNoModulesSpecified
	}

	site, err := a.ensureSite()
	if err != nil {
		return nil, err
	}

	out := make(map[string]string, len(names))
	for _, name := range names {
		m, err := site.Registry.Get(name)
		if err != nil {
			return nil, err
		}
		summary, err := a.versions.Summary(rc, m, a.expanderFor(site, m))
		if err != nil {
			return nil, err
		}
		out[name] = summary.Hash()
	}
	return out, nil
}

// ModuleNames returns every registered module name.
func (a *App) ModuleNames() ([]string, error) {
	site, err := a.ensureSite()
	if err != nil {
		return nil, err
	}
	return site.Registry.Names(), nil
}

func (a *App) buildModule(ctx context.Context, site *domain.Site, name string, rc domain.Context) (*domain.ModuleResponse, error) {
	m, err := site.Registry.Get(name)
	if err != nil {
		return nil, err
	}

	resp := &domain.ModuleResponse{
		Name:         m.Name,
		Group:        m.Group,
		Messages:     m.Messages,
		Dependencies: m.DependencyNames(),
	}

	exp := a.expanderFor(site, m)

	var extras []styles.Sheet
	if len(m.PackageFiles) > 0 {
		bundle, err := exp.Expand(rc)
		if err != nil {
			return nil, err
		}
		resp.Package = bundle.Response()
		for _, cs := range bundle.Styles {
			extras = append(extras, componentSheet(m, cs))
		}
	} else {
		script, err := a.concatScripts(m, rc)
		if err != nil {
			return nil, err
		}
		resp.Scripts = script
	}

	styleResult, err := a.styles.ProcessModule(ctx, m, rc, a.resolver.Styles(m, rc), extras)
	if err != nil {
		return nil, err
	}
	resp.Styles = styleResult.CSS
	resp.GeneratedStyles = styleResult.Generated

	summary, err := a.versions.Summary(rc, m, exp)
	if err != nil {
		return nil, err
	}
	resp.Version = summary.Hash()

	return resp, nil
}

// concatScripts flattens a non-package module's resolved script files into
// one script string.
func (a *App) concatScripts(m *domain.Module, rc domain.Context) (string, error) {
	var b strings.Builder
	for _, ref := range a.resolver.Scripts(m, rc) {
		path := m.Local(ref)
		data, err := os.ReadFile(path) //nolint:gosec // Path is resolved from the module definition
		if err != nil {
			if os.IsNotExist(err) {
				return "", zerr.With(zerr.With(domain.ErrFileMissing, "module", m.Name), "path", path)
			}
			return "", zerr.With(zerr.With(domain.ErrFileUnreadable, "module", m.Name), "path", path)
		}
		b.Write(data)
		if !strings.HasSuffix(string(data), "\n") {
			b.WriteByte('\n')
		}
	}
	return b.String(), nil
}

// ensureSite loads the configuration snapshot once per App lifetime and
// pushes the configured fallback chains into the language adapter before the
// first resolver query.
func (a *App) ensureSite() (*domain.Site, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.site != nil {
		return a.site, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to determine working directory")
	}

	site, err := a.loader.Load(cwd)
	if err != nil {
		return nil, err
	}

	if o, ok := a.fallbacks.(interface{ SetOverrides(map[string][]string) }); ok && len(site.Fallbacks) > 0 {
		o.SetOverrides(site.Fallbacks)
	}

	a.site = site
	return site, nil
}

func (a *App) expanderFor(site *domain.Site, m *domain.Module) *expander.Expander {
	a.mu.Lock()
	defer a.mu.Unlock()

	if e, ok := a.expanders[m.Name]; ok {
		return e
	}
	e := expander.New(m, site, a.callbacks, a.parser)
	a.expanders[m.Name] = e
	return e
}

func componentSheet(m *domain.Module, cs expander.ComponentStyle) styles.Sheet {
	localDir := m.LocalBase
	if cs.Origin != "" {
		localDir = filepath.Dir(cs.Origin)
	}
	return styles.Sheet{
		Source:    cs.Source,
		Lang:      cs.Lang,
		LocalDir:  localDir,
		RemoteDir: m.RemoteBase,
	}
}
