// Package version computes the deterministic staleness summary for a
// (module, context) pair without materializing any servable output.
package version

import (
	"encoding/json"

	"go.trai.ch/lode/internal/core/domain"
	"go.trai.ch/lode/internal/core/ports"
	"go.trai.ch/lode/internal/engine/expander"
	"go.trai.ch/lode/internal/engine/resolver"
	"go.trai.ch/zerr"
)

// Hasher assembles version summaries. It only ever runs definition
// expansion; computing a version must never read package file content or
// invoke a primary callback.
type Hasher struct {
	resolver *resolver.Resolver
	files    ports.FileHasher
	deps     ports.DependencyStore
}

// New creates a Hasher.
func New(res *resolver.Resolver, files ports.FileHasher, deps ports.DependencyStore) *Hasher {
	return &Hasher{resolver: res, files: files, deps: deps}
}

// options is the canonical rendering of a module's static declarative state.
// Everything here is cheap and order-significant, so it is included verbatim
// rather than hashed piecemeal.
type options struct {
	Group           string                        `json:"group,omitempty"`
	Scripts         []domain.FileRef              `json:"scripts,omitempty"`
	LanguageScripts map[string][]domain.FileRef   `json:"languageScripts,omitempty"`
	SkinScripts     map[string][]domain.FileRef   `json:"skinScripts,omitempty"`
	DebugScripts    []domain.FileRef              `json:"debugScripts,omitempty"`
	Styles          []domain.StyleFile            `json:"styles,omitempty"`
	SkinStyles      map[string][]domain.StyleFile `json:"skinStyles,omitempty"`
	Dependencies    []string                      `json:"dependencies,omitempty"`
	Messages        []string                      `json:"messages,omitempty"`
	Templates       map[string]domain.FileRef     `json:"templates,omitempty"`
	SkipFunction    *domain.FileRef               `json:"skipFunction,omitempty"`
	DebugRaw        bool                          `json:"debugRaw,omitempty"`
	NoFlip          bool                          `json:"noflip,omitempty"`
	ES6             bool                          `json:"es6,omitempty"`
}

// Summary produces the version summary for the context. The composite of
// option state, package definition summary, aggregate content hash and
// variable state changes if and only if served output would change.
func (h *Hasher) Summary(rc domain.Context, m *domain.Module, exp *expander.Expander) (*domain.VersionSummary, error) {
	opts, err := json.Marshal(options{
		Group:           m.Group,
		Scripts:         m.Scripts,
		LanguageScripts: m.LanguageScripts,
		SkinScripts:     m.SkinScripts,
		DebugScripts:    m.DebugScripts,
		Styles:          m.Styles,
		SkinStyles:      m.SkinStyles,
		Dependencies:    m.DependencyNames(),
		Messages:        m.Messages,
		Templates:       m.Templates,
		SkipFunction:    m.SkipFunction,
		DebugRaw:        m.DebugRaw,
		NoFlip:          m.NoFlip,
		ES6:             m.ES6,
	})
	if err != nil {
		return nil, zerr.Wrap(err, "failed to marshal module options")
	}

	summary := &domain.VersionSummary{
		Module:    m.Name,
		Options:   string(opts),
		Variables: m.Variables,
	}

	var union []string

	if len(m.PackageFiles) > 0 {
		bundle, err := exp.Definition(rc)
		if err != nil {
			return nil, err
		}
		pkg, err := bundle.Summary()
		if err != nil {
			return nil, err
		}
		summary.PackageSummary = pkg
		union = append(union, bundle.FilePaths()...)
	}

	for _, ref := range h.resolver.Scripts(m, rc) {
		union = append(union, m.Local(ref))
	}
	for _, sf := range h.resolver.StyleList(m, rc) {
		union = append(union, m.Local(sf.Ref))
	}
	for _, ref := range m.Templates {
		union = append(union, m.Local(ref))
	}
	if m.SkipFunction != nil {
		union = append(union, m.Local(*m.SkipFunction))
	}

	// Dependencies discovered during earlier builds participate too, so that
	// a changed image or compiler import invalidates consumers even though
	// discovery only happens after a first full build.
	persisted, err := h.deps.Get(m.Name, rc.Hash())
	if err != nil {
		return nil, err
	}
	union = append(union, persisted...)

	contentHash, err := h.files.ContentHash(union)
	if err != nil {
		return nil, err
	}
	summary.ContentHash = contentHash

	return summary, nil
}
