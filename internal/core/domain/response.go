package domain

// ModuleResponse is the built output for one (module, context) pair, handed to
// the delivery layer.
type ModuleResponse struct {
	Name  string `json:"name"`
	Group string `json:"group,omitzero"`

	// Scripts is the flat concatenated script output for modules without
	// package files.
	Scripts string `json:"scripts,omitzero"`

	// Package is the structured bundle for package-style modules.
	Package *PackageResponse `json:"package,omitzero"`

	// Styles maps media type to compiled CSS.
	Styles map[string]string `json:"styles,omitzero"`

	// GeneratedStyles reports that at least one style file needed compiling,
	// which disables raw-file debug delivery for the whole style response.
	GeneratedStyles bool `json:"generatedStyles,omitzero"`

	Messages     []string `json:"messages,omitzero"`
	Dependencies []string `json:"dependencies,omitzero"`

	// Version is the cache-busting token for this (module, context) pair.
	Version string `json:"version"`
}

// PackageResponse is the expanded package-file structure, safe to serve
// verbatim: all hashing and callback bookkeeping fields have been stripped.
type PackageResponse struct {
	Main  string                `json:"main"`
	Files []PackageResponseFile `json:"files"`
}

// PackageResponseFile is one served package file entry.
type PackageResponseFile struct {
	Name    string          `json:"name"`
	Type    PackageFileType `json:"type"`
	Content any             `json:"content"`
}
