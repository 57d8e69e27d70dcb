package ports

// DependencyStore persists the file dependencies discovered while building a
// (module, context) response, so that dependency discovery, which can only
// happen after a first read, still participates in version hashing on
// subsequent checks and across process restarts.
//
//go:generate mockgen -source=dependency_store.go -destination=mocks/mock_dependency_store.go -package=mocks
type DependencyStore interface {
	// Get returns the persisted dependency paths for a (module, context
	// hash) pair. Returns nil, nil when none were recorded.
	Get(module, contextHash string) ([]string, error)

	// Put replaces the persisted dependency list. Called once per response,
	// never read back mid-build.
	Put(module, contextHash string, paths []string) error
}
