// Package lang provides the language fallback chain adapter.
package lang

import (
	"sync"

	"golang.org/x/text/language"

	"go.trai.ch/lode/internal/core/ports"
)

const terminal = "en"

var _ ports.LanguageFallbacks = (*Fallbacks)(nil)

// Fallbacks implements ports.LanguageFallbacks. Chains come from configured
// overrides when present and from BCP 47 parent relationships otherwise, and
// always end in the terminal language.
type Fallbacks struct {
	mu        sync.RWMutex
	overrides map[string][]string
}

// NewFallbacks creates a Fallbacks with no overrides.
func NewFallbacks() *Fallbacks {
	return &Fallbacks{overrides: make(map[string][]string)}
}

// SetOverrides replaces the configured fallback chains. Called once after
// configuration loading, before any resolver query.
func (f *Fallbacks) SetOverrides(overrides map[string][]string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.overrides = make(map[string][]string, len(overrides))
	for k, v := range overrides {
		f.overrides[k] = append([]string(nil), v...)
	}
}

// FallbacksFor returns the fallback chain for lang, excluding lang itself.
func (f *Fallbacks) FallbacksFor(lang string) []string {
	if lang == terminal {
		return nil
	}

	f.mu.RLock()
	override, ok := f.overrides[lang]
	f.mu.RUnlock()

	var chain []string
	if ok {
		chain = append(chain, override...)
	} else {
		tag, err := language.Parse(lang)
		if err == nil {
			for tag = tag.Parent(); tag != language.Und; tag = tag.Parent() {
				chain = append(chain, tag.String())
			}
		}
	}

	if len(chain) == 0 || chain[len(chain)-1] != terminal {
		chain = append(chain, terminal)
	}
	return chain
}
