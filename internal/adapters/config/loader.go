// Package config provides the configuration loader for lode.
package config

import (
	"os"
	"path/filepath"
	"sort"

	"go.trai.ch/lode/internal/core/domain"
	"go.trai.ch/lode/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is the configuration file name looked up in the working
// directory.
const DefaultFilename = "lode.yaml"

var _ ports.ModuleLoader = (*Loader)(nil)

// Loader implements ports.ModuleLoader using a YAML file.
type Loader struct {
	Filename string
	logger   ports.Logger
}

// NewLoader creates a Loader reading the default configuration file.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Filename: DefaultFilename, logger: logger}
}

// Load reads the configuration from the given working directory and returns
// the site snapshot with all skin overrides merged.
func (l *Loader) Load(cwd string) (*domain.Site, error) {
	path := filepath.Join(cwd, l.Filename)

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrConfigReadFailed, err.Error()), "path", path)
	}

	var file Lodefile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrConfigParseFailed, err.Error()), "path", path)
	}

	registry := domain.NewRegistry()

	// Deterministic load order keeps duplicate and dependency errors stable.
	names := make([]string, 0, len(file.Modules))
	for name := range file.Modules {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		module := buildModule(name, file.Modules[name])
		if err := registry.Add(module); err != nil {
			return nil, err
		}
	}

	for _, name := range names {
		for _, dep := range file.Modules[name].Dependencies {
			if _, ok := file.Modules[dep]; !ok {
				return nil, zerr.With(zerr.With(zerr.Wrap(domain.ErrModuleNotFound, "unknown dependency"), "module", name), "dependency", dep)
			}
		}
	}

	if err := applySkinOverrides(registry, file.SkinOverrides, l.logger); err != nil {
		return nil, err
	}

	return &domain.Site{
		Registry:  registry,
		Variables: file.Variables,
		Fallbacks: file.Fallbacks,
	}, nil
}

func buildModule(name string, dto ModuleDTO) *domain.Module {
	m := &domain.Module{
		Name:         name,
		Group:        dto.Group,
		LocalBase:    dto.LocalBasePath,
		RemoteBase:   dto.RemoteBasePath,
		Scripts:      fileRefs(dto.Scripts),
		DebugScripts: fileRefs(dto.DebugScripts),
		Styles:       styleFiles(dto.Styles),
		Dependencies: domain.NewInternedStrings(dto.Dependencies),
		Messages:     dto.Messages,
		DebugRaw:     dto.DebugRaw,
		NoFlip:       dto.NoFlip,
		ES6:          dto.ES6,
		Variables:    dto.Variables,
	}

	if len(dto.LanguageScripts) > 0 {
		m.LanguageScripts = make(map[string][]domain.FileRef, len(dto.LanguageScripts))
		for lang, refs := range dto.LanguageScripts {
			m.LanguageScripts[lang] = fileRefs(refs)
		}
	}
	if len(dto.SkinScripts) > 0 {
		m.SkinScripts = make(map[string][]domain.FileRef, len(dto.SkinScripts))
		for skin, refs := range dto.SkinScripts {
			m.SkinScripts[skin] = fileRefs(refs)
		}
	}
	if len(dto.SkinStyles) > 0 {
		m.SkinStyles = make(map[string][]domain.StyleFile, len(dto.SkinStyles))
		for skin, styles := range dto.SkinStyles {
			m.SkinStyles[skin] = styleFiles(styles)
		}
	}
	if len(dto.Templates) > 0 {
		m.Templates = make(map[string]domain.FileRef, len(dto.Templates))
		for alias, p := range dto.Templates {
			m.Templates[alias] = domain.NewFileRef(p)
		}
	}
	if dto.SkipFunction != "" {
		ref := domain.NewFileRef(dto.SkipFunction)
		m.SkipFunction = &ref
	}

	for _, pf := range dto.PackageFiles {
		m.PackageFiles = append(m.PackageFiles, domain.PackageFile{
			Name:            pf.Name,
			Type:            domain.PackageFileType(pf.Type),
			Main:            pf.Main,
			Content:         pf.Content,
			File:            pf.File,
			Callback:        pf.Callback,
			CallbackParam:   pf.CallbackParam,
			VersionCallback: pf.VersionCallback,
			Config:          pf.Config,
		})
	}

	return m
}

// applySkinOverrides merges externally declared per-skin styles. Override keys
// are the target module name, optionally prefixed with "+" to append instead
// of replace. Overrides naming unknown modules are skipped with a warning so
// one skin can carry declarations for optionally installed modules.
func applySkinOverrides(registry *domain.Registry, overrides map[string]map[string][]StyleDTO, logger ports.Logger) error {
	skins := make([]string, 0, len(overrides))
	for skin := range overrides {
		skins = append(skins, skin)
	}
	sort.Strings(skins)

	for _, skin := range skins {
		keys := make([]string, 0, len(overrides[skin]))
		for key := range overrides[skin] {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		for _, key := range keys {
			target := key
			if len(target) > 0 && target[0] == '+' {
				target = target[1:]
			}

			module, err := registry.Get(target)
			if err != nil {
				logger.Warn("skin override targets unknown module " + target)
				continue
			}

			files := styleFiles(overrides[skin][key])
			if err := module.ApplySkinOverride(skin, key, files); err != nil {
				return err
			}
		}
	}

	return nil
}

func fileRefs(dtos []FileRefDTO) []domain.FileRef {
	if len(dtos) == 0 {
		return nil
	}
	refs := make([]domain.FileRef, len(dtos))
	for i, dto := range dtos {
		refs[i] = domain.FileRef{
			Path:       dto.File,
			LocalBase:  dto.LocalBasePath,
			RemoteBase: dto.RemoteBasePath,
		}
	}
	return refs
}

func styleFiles(dtos []StyleDTO) []domain.StyleFile {
	if len(dtos) == 0 {
		return nil
	}
	styles := make([]domain.StyleFile, len(dtos))
	for i, dto := range dtos {
		styles[i] = domain.StyleFile{
			Ref: domain.FileRef{
				Path:       dto.File,
				LocalBase:  dto.LocalBasePath,
				RemoteBase: dto.RemoteBasePath,
			},
			Media: dto.Media,
		}
	}
	return styles
}
