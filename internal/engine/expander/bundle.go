package expander

import (
	"encoding/json"

	"go.trai.ch/lode/internal/core/domain"
	"go.trai.ch/zerr"
)

// File is the canonical record a declared package file entry normalizes
// into. After definition expansion exactly one of Content, Path and Callback
// carries the content source.
type File struct {
	Name string
	Type domain.PackageFileType
	Main bool

	// Content is literal content, known without I/O for literal and
	// config-resolved entries, and filled in by full expansion otherwise.
	Content any

	// Path is the resolved local path of a file-backed entry.
	Path string

	Callback      string
	CallbackParam any

	// versionValue and versionFile carry the version callback's result for
	// hashing only. They never reach served output.
	versionValue any
	versionFile  string
}

// Bundle is the result of one expansion phase for one (module, context)
// pair. A definition-phase bundle carries unresolved file and callback
// references; a full-phase bundle carries literal content only.
type Bundle struct {
	Files []File
	Main  string

	// Styles collects style blocks emitted by script components during full
	// expansion, to be pushed through style processing separately.
	Styles []ComponentStyle
}

// ComponentStyle is a style block extracted from a script component.
type ComponentStyle struct {
	Source string
	Lang   string
	Origin string
}

type summaryEntry struct {
	Name    string `json:"name"`
	Type    string `json:"type"`
	Main    bool   `json:"main,omitempty"`
	Content any    `json:"content,omitempty"`
	Version any    `json:"version,omitempty"`
}

// Summary renders the definition-phase bundle into the deterministic string
// folded into version hashing. File-backed entries are excluded: their
// content is covered by the aggregate content hash, and their paths must not
// enter the summary at all.
func (b *Bundle) Summary() (string, error) {
	entries := make([]summaryEntry, 0, len(b.Files))
	for _, f := range b.Files {
		if f.Path != "" || f.versionFile != "" {
			continue
		}
		entries = append(entries, summaryEntry{
			Name:    f.Name,
			Type:    string(f.Type),
			Main:    f.Name == b.Main,
			Content: f.Content,
			Version: f.versionValue,
		})
	}

	data, err := json.Marshal(entries)
	if err != nil {
		return "", zerr.Wrap(err, "failed to marshal package summary")
	}
	return string(data), nil
}

// FilePaths returns the local paths whose content must participate in
// version hashing: file-backed entries plus file references reported by
// version callbacks.
func (b *Bundle) FilePaths() []string {
	var paths []string
	for _, f := range b.Files {
		if f.Path != "" {
			paths = append(paths, f.Path)
		}
		if f.versionFile != "" {
			paths = append(paths, f.versionFile)
		}
	}
	return paths
}

// Response strips the bundle down to the servable structure. Only full-phase
// bundles should be served; hashing and callback bookkeeping never leak out.
func (b *Bundle) Response() *domain.PackageResponse {
	files := make([]domain.PackageResponseFile, len(b.Files))
	for i, f := range b.Files {
		files[i] = domain.PackageResponseFile{
			Name:    f.Name,
			Type:    f.Type,
			Content: f.Content,
		}
	}
	return &domain.PackageResponse{Main: b.Main, Files: files}
}
