package domain

import "strings"

// PackageFileType tags the role of a package file entry.
type PackageFileType string

const (
	// PackageScript is a plain script entry.
	PackageScript PackageFileType = "script"
	// PackageComponent is a single-file component whose source must be split
	// into script, style and template parts before serving.
	PackageComponent PackageFileType = "script-component"
	// PackageData is a structured data entry.
	PackageData PackageFileType = "data"
)

// PackageFile is a declared entry of a module's package-file bundle, as loaded
// from configuration. The shorthand forms permitted in configuration (bare
// strings, omitted types) are normalized into a canonical record by definition
// expansion; until then exactly one of the content sources may be empty only
// if another is set.
type PackageFile struct {
	// Name is the slot name the entry is served under. Required.
	Name string

	// Type is the declared type tag. When empty it is inferred from the
	// entry name's extension during definition expansion.
	Type PackageFileType

	// Main marks the entry as the bundle's entry point. At most one entry may
	// be main; its type must be script or script-component.
	Main bool

	// Content is literal content known at configuration time.
	Content any

	// File is a module-relative path whose content is read lazily.
	File string

	// Callback names a registered callback producing the content. It is never
	// invoked during definition expansion.
	Callback string

	// CallbackParam is passed to the callback verbatim.
	CallbackParam any

	// VersionCallback names a cheap callback invoked during definition
	// expansion in place of Callback; its result participates in version
	// hashing only. Callers must keep it consistent with what Callback would
	// eventually produce, this is not verified.
	VersionCallback string

	// Config lists configuration variable names resolved into literal content
	// during definition expansion. Only valid for data entries.
	Config []string
}

// InferredType returns the declared type, or the type inferred from the entry
// name's extension: .json is data, .vue is a script component, anything else
// is a script.
func (p PackageFile) InferredType() PackageFileType {
	if p.Type != "" {
		return p.Type
	}
	switch {
	case strings.HasSuffix(p.Name, ".json"):
		return PackageData
	case strings.HasSuffix(p.Name, ".vue"):
		return PackageComponent
	default:
		return PackageScript
	}
}

// IsScript reports whether the type tag can serve as the main entry.
func (t PackageFileType) IsScript() bool {
	return t == PackageScript || t == PackageComponent
}
