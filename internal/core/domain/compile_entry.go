package domain

import "time"

// CompileEntry is a persistent preprocessor cache record. Entries are
// content-addressed and self-validating: a reader accepts one only while a
// fresh content hash over Files still matches FilesHash, so racing writers and
// stale survivors are harmless.
type CompileEntry struct {
	// Key is the cache key derived from the source text, the sorted variable
	// map and the import directories.
	Key string `json:"key"`

	// CSS is the compiled output.
	CSS string `json:"css"`

	// Files lists every file the compiler touched, stored relative to the
	// installation root so the entry stays valid across differently rooted
	// deployments of identical content.
	Files []string `json:"files"`

	// FilesHash is the aggregate content hash over Files at compile time.
	FilesHash string `json:"files_hash"`

	// CreatedAt bounds the entry's lifetime. Correctness rests on the content
	// hash recheck, not on expiry.
	CreatedAt time.Time `json:"created_at"`
}
