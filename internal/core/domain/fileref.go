package domain

import (
	"path"
	"path/filepath"
)

// FileRef is a reference to a module asset file. Most references are bare
// relative paths resolved against the owning module's base-path pair; a
// reference may instead carry its own base override, which happens when the
// file was contributed by a skin override declared elsewhere.
type FileRef struct {
	Path       string
	LocalBase  string
	RemoteBase string
}

// NewFileRef creates a bare FileRef for a relative path.
func NewFileRef(p string) FileRef {
	return FileRef{Path: p}
}

// Local resolves the reference to a local filesystem path. The default base is
// used unless the reference carries its own override.
func (r FileRef) Local(defaultBase string) string {
	base := r.LocalBase
	if base == "" {
		base = defaultBase
	}
	return filepath.Join(base, filepath.FromSlash(r.Path))
}

// Remote resolves the reference to its remote-servable URL path.
func (r FileRef) Remote(defaultBase string) string {
	base := r.RemoteBase
	if base == "" {
		base = defaultBase
	}
	return path.Join(base, r.Path)
}

// EqualUnder reports whether two references resolve to the same local path
// under the given default bases. This is the equality underlying file list
// de-duplication: two refs with different path spellings but the same resolved
// location are the same file.
func (r FileRef) EqualUnder(defaultBase string, other FileRef, otherDefaultBase string) bool {
	return r.Local(defaultBase) == other.Local(otherDefaultBase)
}

// MediaAll is the fallback media bucket for style files without explicit media.
const MediaAll = "all"

// StyleFile is a style sheet reference with its target media type.
type StyleFile struct {
	Ref   FileRef
	Media string
}

// MediaOrAll returns the media type, defaulting to "all".
func (s StyleFile) MediaOrAll() string {
	if s.Media == "" {
		return MediaAll
	}
	return s.Media
}
