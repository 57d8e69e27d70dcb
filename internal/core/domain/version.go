package domain

import (
	"sort"
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// VersionSummary is the deterministic staleness summary for a (module,
// context) pair. It changes if and only if served output would change, and is
// computed without materializing any output. Two summaries compare equal via
// Hash without the consumer reading a single file.
type VersionSummary struct {
	// Module is the owning module name.
	Module string

	// Options is the canonical rendering of the module's static declarative
	// option state: relative file path lists, flags, dependency and message
	// names. Cheap and order-significant, so included verbatim rather than
	// hashed piecemeal.
	Options string

	// PackageSummary covers the definition expansion of the package file
	// list: literal and config-resolved content plus version callback values.
	// File-backed entries are excluded, their content is covered by
	// ContentHash and their paths must not leak in (relocating the install
	// tree would otherwise invalidate every consumer cache).
	PackageSummary string

	// ContentHash is the aggregate content hash over every file the
	// (module, context) pair directly or indirectly references.
	ContentHash string

	// Variables is the module's preprocessor variable state.
	Variables map[string]string
}

// Hash folds the summary into a single cache-busting token.
func (v VersionSummary) Hash() string {
	h := xxhash.New()
	_, _ = h.WriteString(v.Module)
	_, _ = h.Write([]byte{0})
	_, _ = h.WriteString(v.Options)
	_, _ = h.Write([]byte{0})
	_, _ = h.WriteString(v.PackageSummary)
	_, _ = h.Write([]byte{0})
	_, _ = h.WriteString(v.ContentHash)
	_, _ = h.Write([]byte{0})

	keys := make([]string, 0, len(v.Variables))
	for k := range v.Variables {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		_, _ = h.WriteString(k)
		_, _ = h.Write([]byte{'='})
		_, _ = h.WriteString(v.Variables[k])
		_, _ = h.Write([]byte{0})
	}

	return strconv.FormatUint(h.Sum64(), 16)
}
