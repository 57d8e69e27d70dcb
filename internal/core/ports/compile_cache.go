package ports

import "go.trai.ch/lode/internal/core/domain"

// CompileCache is the persistent preprocessor cache store. It is a dumb
// key-value layer: entry validity (content hash recheck) is the caller's
// concern, expiry is the store's.
//
//go:generate mockgen -source=compile_cache.go -destination=mocks/mock_compile_cache.go -package=mocks
type CompileCache interface {
	// Get retrieves the entry for a key. Returns nil, nil when absent or
	// expired; staleness is a silent miss, never an error.
	Get(key string) (*domain.CompileEntry, error)

	// Put stores an entry. Racing writers on the same key are acceptable.
	Put(entry *domain.CompileEntry) error
}
