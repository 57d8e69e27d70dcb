package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// DefaultSkin is the fallback bucket consulted when a module has no entry for
// the requested skin.
const DefaultSkin = "default"

// Module is an immutable declarative asset-module definition created once at
// configuration load time. The only permitted mutation is the one-time skin
// override merge, which must happen before the module answers its first
// resolver query.
type Module struct {
	Name  string
	Group string

	// LocalBase and RemoteBase are the default base-path pair file references
	// resolve against.
	LocalBase  string
	RemoteBase string

	Scripts         []FileRef
	LanguageScripts map[string][]FileRef
	SkinScripts     map[string][]FileRef
	DebugScripts    []FileRef

	Styles     []StyleFile
	SkinStyles map[string][]StyleFile

	PackageFiles []PackageFile

	Dependencies []InternedString
	Messages     []string
	Templates    map[string]FileRef
	SkipFunction *FileRef

	// DebugRaw allows serving style files as direct links in debug mode, as
	// long as no file of the response needed compiling.
	DebugRaw bool

	// NoFlip opts the module out of the right-to-left direction transform.
	NoFlip bool

	// ES6 marks the module as requiring a modern runtime.
	ES6 bool

	// Variables are the preprocessor variables passed to style compilation.
	// They participate in version hashing.
	Variables map[string]string

	sealed bool
}

// Local resolves a file reference against the module's local base.
func (m *Module) Local(r FileRef) string {
	return r.Local(m.LocalBase)
}

// Remote resolves a file reference against the module's remote base.
func (m *Module) Remote(r FileRef) string {
	return r.Remote(m.RemoteBase)
}

// Seal marks the module as used. Called by the resolver on first query; skin
// overrides arriving afterwards are a configuration ordering bug.
func (m *Module) Seal() {
	m.sealed = true
}

// ApplySkinOverride merges an externally declared per-skin style override into
// the module's skin style table. The key is either the module name (the
// override replaces the skin's bucket) or the module name prefixed with "+"
// (the override is appended after the module's own default-bucket styles). A
// skin the module already defines styles for is never overridden.
func (m *Module) ApplySkinOverride(skin, key string, files []StyleFile) error {
	if m.sealed {
		return zerr.With(ErrOverrideAfterUse, "module", m.Name)
	}

	if _, defined := m.SkinStyles[skin]; defined {
		// The module definition wins.
		return nil
	}

	if m.SkinStyles == nil {
		m.SkinStyles = make(map[string][]StyleFile)
	}

	if strings.HasPrefix(key, "+") {
		inherited := append([]StyleFile{}, m.SkinStyles[DefaultSkin]...)
		m.SkinStyles[skin] = append(inherited, files...)
		return nil
	}

	m.SkinStyles[skin] = append([]StyleFile{}, files...)
	return nil
}

// DependencyNames returns the module's dependency names as plain strings.
func (m *Module) DependencyNames() []string {
	names := make([]string, len(m.Dependencies))
	for i, d := range m.Dependencies {
		names[i] = d.String()
	}
	return names
}
