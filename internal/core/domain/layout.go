package domain

import "path/filepath"

const (
	// DirPerm is the permission mode for state directories.
	DirPerm = 0o750
	// FilePerm is the permission mode for state files.
	FilePerm = 0o600

	stateDir = ".lode"
)

// DefaultCachePath returns the directory for persistent preprocessor cache
// entries, relative to the working root.
func DefaultCachePath() string {
	return filepath.Join(stateDir, "cache")
}

// DefaultDepsPath returns the directory for persisted file dependency lists,
// relative to the working root.
func DefaultDepsPath() string {
	return filepath.Join(stateDir, "deps")
}

// DefaultStatePath returns the root state directory.
func DefaultStatePath() string {
	return stateDir
}
