// Package styles implements the style processing pipeline: preprocessor
// compilation through a persistent self-validating cache, the right-to-left
// transform, and URL dependency recording and rewriting.
package styles

import (
	"context"
	"errors"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"

	"go.trai.ch/lode/internal/core/domain"
	"go.trai.ch/lode/internal/core/ports"
	"go.trai.ch/zerr"
)

// Processor builds the style output for one (module, context) pair.
type Processor struct {
	compiler ports.StyleCompiler
	cache    ports.CompileCache
	hasher   ports.FileHasher
	deps     ports.DependencyStore
	logger   ports.Logger

	// root is the installation root cache entries store their file lists
	// relative to, keeping entries portable across relocated deployments.
	root string
}

// New creates a Processor rooted at the given installation directory.
func New(compiler ports.StyleCompiler, cache ports.CompileCache, hasher ports.FileHasher, deps ports.DependencyStore, logger ports.Logger, root string) *Processor {
	return &Processor{
		compiler: compiler,
		cache:    cache,
		hasher:   hasher,
		deps:     deps,
		logger:   logger,
		root:     root,
	}
}

// Sheet is one style source to transform: text plus its source language and
// the local/remote directory pair URL references resolve against.
type Sheet struct {
	Source    string
	Lang      string
	LocalDir  string
	RemoteDir string
}

// Result is the aggregate style output for one (module, context) pair.
type Result struct {
	// CSS maps media type to concatenated compiled output.
	CSS map[string]string

	// Generated reports that at least one sheet needed compiling, which
	// disables raw-file debug delivery for the whole response.
	Generated bool

	// Dependencies are the files this output depends on beyond the declared
	// style files: compiler imports and URL-referenced assets.
	Dependencies []string

	// Missing are URL-referenced local paths that do not exist, recorded
	// for diagnostics.
	Missing []string
}

// ProcessModule transforms every style file applying to the context plus any
// extra sheets emitted by script components. Discovered file dependencies
// are flushed to the dependency store once, at the end of the pass.
func (p *Processor) ProcessModule(ctx context.Context, m *domain.Module, rc domain.Context, byMedia map[string][]domain.StyleFile, extras []Sheet) (*Result, error) {
	result := &Result{CSS: make(map[string]string)}

	media := make([]string, 0, len(byMedia))
	for k := range byMedia {
		media = append(media, k)
	}
	sort.Strings(media)

	for _, med := range media {
		var parts []string
		for _, sf := range byMedia[med] {
			localPath := m.Local(sf.Ref)
			data, err := os.ReadFile(localPath) //nolint:gosec // Path is resolved from the module definition
			if err != nil {
				if os.IsNotExist(err) {
					return nil, zerr.With(zerr.With(domain.ErrFileMissing, "module", m.Name), "path", localPath)
				}
				return nil, zerr.With(zerr.With(domain.ErrFileUnreadable, "module", m.Name), "path", localPath)
			}

			sheet := Sheet{
				Source:    string(data),
				Lang:      langByExt(sf.Ref.Path),
				LocalDir:  filepath.Dir(localPath),
				RemoteDir: path.Dir(m.Remote(sf.Ref)),
			}
			css, err := p.processSheet(ctx, m, rc, sheet, localPath, result)
			if err != nil {
				return nil, err
			}
			parts = append(parts, css)
		}
		result.CSS[med] = strings.Join(parts, "\n")
	}

	for _, sheet := range extras {
		css, err := p.processSheet(ctx, m, rc, sheet, "", result)
		if err != nil {
			return nil, err
		}
		if css != "" {
			if existing := result.CSS[domain.MediaAll]; existing != "" {
				result.CSS[domain.MediaAll] = existing + "\n" + css
			} else {
				result.CSS[domain.MediaAll] = css
			}
		}
	}

	for _, missing := range result.Missing {
		p.logger.Warn("style references missing file " + missing)
	}

	if err := p.deps.Put(m.Name, rc.Hash(), dedupePaths(result.Dependencies)); err != nil {
		p.logger.Warn("failed to persist style dependencies: " + err.Error())
	}

	return result, nil
}

// processSheet runs the three transform steps for one sheet and accumulates
// discovered dependencies into result.
func (p *Processor) processSheet(ctx context.Context, m *domain.Module, rc domain.Context, sheet Sheet, entryPath string, result *Result) (string, error) {
	css := sheet.Source

	if sheet.Lang == "less" {
		if entryPath == "" {
			entryPath = filepath.Join(sheet.LocalDir, "component.less")
		}
		compiled, touched, err := p.compileCached(ctx, css, entryPath, m.Variables)
		if err != nil {
			if errors.Is(err, context.DeadlineExceeded) {
				return "", err
			}
			return "", zerr.With(zerr.With(err, "module", m.Name), "path", entryPath)
		}
		css = compiled
		result.Generated = true
		for _, f := range touched {
			if f != entryPath {
				result.Dependencies = append(result.Dependencies, f)
			}
		}
	}

	if rc.Direction == domain.DirRTL && !m.NoFlip {
		css = Flip(css)
	}

	remapped := remapURLs(css, sheet.LocalDir, sheet.RemoteDir, p.hasher)
	result.Dependencies = append(result.Dependencies, remapped.Dependencies...)
	result.Missing = append(result.Missing, remapped.Missing...)

	return remapped.CSS, nil
}

// compileCached compiles through the persistent cache. A hit is accepted
// only while a fresh content hash over the entry's recorded file list still
// matches; staleness is a silent miss. Deadline errors from the compiler
// propagate unmodified.
func (p *Processor) compileCached(ctx context.Context, src, entryPath string, vars map[string]string) (string, []string, error) {
	key := cacheKey(src, vars, nil)

	entry, err := p.cache.Get(key)
	if err != nil {
		p.logger.Warn("compile cache read failed: " + err.Error())
	}
	if entry != nil {
		abs := p.absPaths(entry.Files)
		if hash, err := p.hasher.ContentHash(abs); err == nil && hash == entry.FilesHash {
			return entry.CSS, abs, nil
		}
	}

	compiled, err := p.compiler.Compile(ctx, src, entryPath, vars, nil)
	if err != nil {
		return "", nil, err
	}

	hash, err := p.hasher.ContentHash(compiled.Files)
	if err != nil {
		return "", nil, err
	}
	put := &domain.CompileEntry{
		Key:       key,
		CSS:       compiled.CSS,
		Files:     p.relPaths(compiled.Files),
		FilesHash: hash,
		CreatedAt: time.Now(),
	}
	if err := p.cache.Put(put); err != nil {
		p.logger.Warn("compile cache write failed: " + err.Error())
	}

	return compiled.CSS, compiled.Files, nil
}

func (p *Processor) relPaths(paths []string) []string {
	out := make([]string, len(paths))
	for i, f := range paths {
		if rel, err := filepath.Rel(p.root, f); err == nil && !strings.HasPrefix(rel, "..") {
			out[i] = rel
		} else {
			out[i] = f
		}
	}
	return out
}

func (p *Processor) absPaths(paths []string) []string {
	out := make([]string, len(paths))
	for i, f := range paths {
		if filepath.IsAbs(f) {
			out[i] = f
		} else {
			out[i] = filepath.Join(p.root, f)
		}
	}
	return out
}

func cacheKey(src string, vars map[string]string, importDirs []string) string {
	h := xxhash.New()
	_, _ = h.WriteString(src)
	_, _ = h.Write([]byte{0})

	keys := make([]string, 0, len(vars))
	for k := range vars {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		_, _ = h.WriteString(k)
		_, _ = h.Write([]byte{'='})
		_, _ = h.WriteString(vars[k])
		_, _ = h.Write([]byte{0})
	}
	_, _ = h.Write([]byte{0})

	for _, dir := range importDirs {
		_, _ = h.WriteString(dir)
		_, _ = h.Write([]byte{0})
	}

	return strconv.FormatUint(h.Sum64(), 16)
}

func langByExt(p string) string {
	if strings.HasSuffix(p, ".less") {
		return "less"
	}
	return "css"
}

func dedupePaths(paths []string) []string {
	if len(paths) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(paths))
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}
