package ports

// FileHasher defines the interface for computing content hashes.
//
//go:generate mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type FileHasher interface {
	// ComputeFileHash computes the content hash of a single file.
	ComputeFileHash(path string) (uint64, error)

	// ContentHash computes one aggregate hash over the contents of the given
	// files. Only content participates: paths are excluded from the digest so
	// relocating an install tree never changes the result.
	ContentHash(paths []string) (string, error)
}
