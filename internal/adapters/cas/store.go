// Package cas implements the persistent stores backing style compilation:
// the preprocessor output cache and the per-response dependency lists.
package cas

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/lode/internal/core/domain"
	"go.trai.ch/lode/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultTTL bounds the lifetime of preprocessor cache entries. Validity is
// established by the content hash recheck; the TTL only keeps the store from
// accumulating entries for sources that no longer exist.
const DefaultTTL = 24 * time.Hour

var _ ports.CompileCache = (*CompileCacheStore)(nil)

// CompileCacheStore implements ports.CompileCache using a file-per-key
// strategy under the state cache directory.
type CompileCacheStore struct {
	root string
	ttl  time.Duration
}

// NewCompileCacheStore creates a CompileCacheStore rooted at the given
// working directory.
func NewCompileCacheStore(root string) *CompileCacheStore {
	return &CompileCacheStore{root: root, ttl: DefaultTTL}
}

// Get retrieves the entry for a key. Absent, unreadable, corrupt and expired
// entries all read as a miss; the cache never fails a build.
func (s *CompileCacheStore) Get(key string) (*domain.CompileEntry, error) {
	//nolint:gosec // Path is constructed from trusted directory and hashed filename
	data, err := os.ReadFile(s.filename(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.Wrap(domain.ErrStoreReadFailed, err.Error())
	}

	var entry domain.CompileEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, nil
	}

	if time.Since(entry.CreatedAt) > s.ttl {
		return nil, nil
	}

	return &entry, nil
}

// Put stores an entry. Concurrent writers racing on the same key produce the
// same content, so last-writer-wins is acceptable.
func (s *CompileCacheStore) Put(entry *domain.CompileEntry) error {
	data, err := json.MarshalIndent(entry, "", "  ")
	if err != nil {
		return zerr.Wrap(domain.ErrStoreWriteFailed, err.Error())
	}
	return writeEntry(s.filename(entry.Key), data)
}

func (s *CompileCacheStore) filename(key string) string {
	return filepath.Join(s.root, domain.DefaultCachePath(), hashName(key))
}

var _ ports.DependencyStore = (*DependencyStore)(nil)

// DependencyStore implements ports.DependencyStore using a file-per-pair
// strategy under the state deps directory.
type DependencyStore struct {
	root string
}

// NewDependencyStore creates a DependencyStore rooted at the given working
// directory.
func NewDependencyStore(root string) *DependencyStore {
	return &DependencyStore{root: root}
}

// Get returns the persisted dependency paths for a (module, context hash)
// pair. A missing or corrupt record reads as no dependencies.
func (s *DependencyStore) Get(module, contextHash string) ([]string, error) {
	//nolint:gosec // Path is constructed from trusted directory and hashed filename
	data, err := os.ReadFile(s.filename(module, contextHash))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.Wrap(domain.ErrStoreReadFailed, err.Error())
	}

	var paths []string
	if err := json.Unmarshal(data, &paths); err != nil {
		return nil, nil
	}
	return paths, nil
}

// Put replaces the persisted dependency list for a (module, context hash)
// pair.
func (s *DependencyStore) Put(module, contextHash string, paths []string) error {
	data, err := json.MarshalIndent(paths, "", "  ")
	if err != nil {
		return zerr.Wrap(domain.ErrStoreWriteFailed, err.Error())
	}
	return writeEntry(s.filename(module, contextHash), data)
}

func (s *DependencyStore) filename(module, contextHash string) string {
	return filepath.Join(s.root, domain.DefaultDepsPath(), hashName(module+"\x00"+contextHash))
}

func hashName(key string) string {
	hash := sha256.Sum256([]byte(key))
	return hex.EncodeToString(hash[:]) + ".json"
}

func writeEntry(filename string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(filename), domain.DirPerm); err != nil {
		return zerr.Wrap(domain.ErrStoreWriteFailed, err.Error())
	}
	//nolint:gosec // Path is constructed from trusted directory and hashed filename
	if err := os.WriteFile(filename, data, domain.FilePerm); err != nil {
		return zerr.Wrap(domain.ErrStoreWriteFailed, err.Error())
	}
	return nil
}
