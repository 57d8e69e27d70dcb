package fs

import (
	"encoding/binary"
	"io"
	"os"
	"runtime"
	"sort"
	"strconv"
	"sync"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/sync/errgroup"

	"go.trai.ch/lode/internal/core/domain"
	"go.trai.ch/lode/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.FileHasher = (*Hasher)(nil)

// Hasher computes content hashes for individual files and file sets.
type Hasher struct {
	mu    sync.Mutex
	cache map[string]uint64
}

// NewHasher creates a new Hasher. Per-file hashes are memoized for the
// lifetime of the instance, matching the lifetime of a module registry.
func NewHasher() *Hasher {
	return &Hasher{cache: make(map[string]uint64)}
}

// ComputeFileHash computes the XXHash of a file's content.
func (h *Hasher) ComputeFileHash(path string) (uint64, error) {
	h.mu.Lock()
	if sum, ok := h.cache[path]; ok {
		h.mu.Unlock()
		return sum, nil
	}
	h.mu.Unlock()

	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		if os.IsNotExist(err) {
			return 0, zerr.With(zerr.Wrap(domain.ErrFileMissing, "file does not exist"), "path", path)
		}
		return 0, zerr.With(zerr.Wrap(domain.ErrFileUnreadable, err.Error()), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return 0, zerr.With(zerr.Wrap(domain.ErrFileUnreadable, "failed to hash file content"), "path", path)
	}

	sum := hasher.Sum64()
	h.mu.Lock()
	h.cache[path] = sum
	h.mu.Unlock()

	return sum, nil
}

// ContentHash computes one aggregate hash over the contents of the given
// files. Duplicates are collapsed and the fold order is the sorted path
// order, so the result is independent of input ordering. Only per-file
// content hashes enter the digest; paths do not, which keeps the result
// stable across install-tree relocations.
func (h *Hasher) ContentHash(paths []string) (string, error) {
	unique := make([]string, 0, len(paths))
	seen := make(map[string]struct{}, len(paths))
	for _, p := range paths {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		unique = append(unique, p)
	}
	sort.Strings(unique)

	sums := make([]uint64, len(unique))

	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	for i, p := range unique {
		g.Go(func() error {
			sum, err := h.ComputeFileHash(p)
			if err != nil {
				return err
			}
			sums[i] = sum
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return "", err
	}

	hasher := xxhash.New()
	for _, sum := range sums {
		if err := binary.Write(hasher, binary.LittleEndian, sum); err != nil {
			return "", zerr.Wrap(err, "failed to write hash to digest")
		}
	}

	return strconv.FormatUint(hasher.Sum64(), 16), nil
}
