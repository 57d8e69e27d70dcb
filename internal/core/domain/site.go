package domain

import "go.trai.ch/zerr"

// Site is one loaded configuration snapshot: the module registry plus the
// site-wide state modules resolve against.
type Site struct {
	// Registry holds the loaded modules.
	Registry *Registry

	// Variables are the site configuration variables referenced by data-typed
	// package file entries.
	Variables map[string]string

	// Fallbacks are explicit language fallback chains overriding the ones
	// derived from language tag structure.
	Fallbacks map[string][]string
}

// Variable resolves a named configuration variable.
func (s *Site) Variable(name string) (string, error) {
	v, ok := s.Variables[name]
	if !ok {
		return "", zerr.With(ErrUnknownVariable, "variable", name)
	}
	return v, nil
}
