package ports

import "go.trai.ch/lode/internal/core/domain"

// PackageCallback computes the content of a package file entry for a request
// context. Primary callbacks may be expensive and are only invoked during
// full expansion; version callbacks must be cheap and consistent with what
// the primary callback would produce for hashing purposes. That consistency
// is a caller obligation, not something the pipeline verifies.
type PackageCallback func(rc domain.Context, param any) (any, error)

// CallbackRegistry resolves callback names declared in package file entries.
//
//go:generate mockgen -source=callbacks.go -destination=mocks/mock_callbacks.go -package=mocks
type CallbackRegistry interface {
	// Lookup returns the callback registered under name.
	Lookup(name string) (PackageCallback, bool)
}
