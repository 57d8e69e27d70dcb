// Package resolver selects which of a module's declared files apply to a
// request context.
package resolver

import (
	"go.trai.ch/lode/internal/core/domain"
	"go.trai.ch/lode/internal/core/ports"
)

// Resolver answers per-context file queries against module definitions. The
// first query against a module seals it against further skin overrides.
type Resolver struct {
	fallbacks ports.LanguageFallbacks
}

// New creates a Resolver using the given language fallback chains.
func New(fallbacks ports.LanguageFallbacks) *Resolver {
	return &Resolver{fallbacks: fallbacks}
}

// Scripts returns the script files applying to the context, in serving
// order: plain scripts, then the language bucket, then the skin bucket, then
// debug-only scripts when the context is in debug mode. Files resolving to
// the same local path are de-duplicated, keeping the first occurrence.
func (r *Resolver) Scripts(m *domain.Module, rc domain.Context) []domain.FileRef {
	m.Seal()

	var refs []domain.FileRef
	refs = append(refs, m.Scripts...)
	refs = append(refs, r.languageScripts(m, rc.Language)...)
	refs = append(refs, skinBucket(m.SkinScripts, rc.Skin)...)
	if rc.Debug {
		refs = append(refs, m.DebugScripts...)
	}
	return dedupe(m, refs)
}

// Styles returns the style files applying to the context keyed by media
// type, global styles first, then the skin bucket. Files without explicit
// media land in the "all" bucket.
func (r *Resolver) Styles(m *domain.Module, rc domain.Context) map[string][]domain.StyleFile {
	m.Seal()

	byMedia := make(map[string][]domain.StyleFile)
	for _, s := range m.Styles {
		byMedia[s.MediaOrAll()] = append(byMedia[s.MediaOrAll()], s)
	}
	for _, s := range skinStyleBucket(m.SkinStyles, rc.Skin) {
		byMedia[s.MediaOrAll()] = append(byMedia[s.MediaOrAll()], s)
	}
	if len(byMedia) == 0 {
		return nil
	}
	return byMedia
}

// StyleList returns the style files applying to the context as one flat list
// in serving order, for consumers that only need the file set.
func (r *Resolver) StyleList(m *domain.Module, rc domain.Context) []domain.StyleFile {
	m.Seal()

	var styles []domain.StyleFile
	styles = append(styles, m.Styles...)
	styles = append(styles, skinStyleBucket(m.SkinStyles, rc.Skin)...)
	return styles
}

// languageScripts picks the first non-empty language bucket along the
// fallback chain. Modules without language buckets never consult the chain.
func (r *Resolver) languageScripts(m *domain.Module, lang string) []domain.FileRef {
	if len(m.LanguageScripts) == 0 {
		return nil
	}

	if refs := m.LanguageScripts[lang]; len(refs) > 0 {
		return refs
	}
	for _, fallback := range r.fallbacks.FallbacksFor(lang) {
		if refs := m.LanguageScripts[fallback]; len(refs) > 0 {
			return refs
		}
	}
	return nil
}

func dedupe(m *domain.Module, refs []domain.FileRef) []domain.FileRef {
	seen := make(map[string]struct{}, len(refs))
	out := refs[:0]
	for _, ref := range refs {
		local := m.Local(ref)
		if _, ok := seen[local]; ok {
			continue
		}
		seen[local] = struct{}{}
		out = append(out, ref)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func skinBucket(buckets map[string][]domain.FileRef, skin string) []domain.FileRef {
	if refs, ok := buckets[skin]; ok {
		return refs
	}
	return buckets[domain.DefaultSkin]
}

func skinStyleBucket(buckets map[string][]domain.StyleFile, skin string) []domain.StyleFile {
	if styles, ok := buckets[skin]; ok {
		return styles
	}
	return buckets[domain.DefaultSkin]
}
