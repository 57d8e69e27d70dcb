// Package less provides the style compiler adapter backed by the lessc
// command line compiler.
package less

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/sync/singleflight"

	"go.trai.ch/lode/internal/core/domain"
	"go.trai.ch/lode/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.StyleCompiler = (*Compiler)(nil)

// Compiler implements ports.StyleCompiler by invoking an external lessc
// binary. Concurrent compiles of identical inputs are collapsed into one
// invocation.
type Compiler struct {
	bin    string
	logger ports.Logger
	group  singleflight.Group
}

// NewCompiler creates a Compiler invoking the given binary.
func NewCompiler(bin string, logger ports.Logger) *Compiler {
	return &Compiler{bin: bin, logger: logger}
}

// Compile compiles source text and reports every file the compilation
// depended on. A deadline hit on ctx propagates as context.DeadlineExceeded;
// compiler failures are configuration-level errors carrying the stderr tail.
func (c *Compiler) Compile(ctx context.Context, src, entryPath string, vars map[string]string, importDirs []string) (*ports.CompileResult, error) {
	key := compileKey(src, vars, importDirs)

	result, err, _ := c.group.Do(key, func() (any, error) {
		return c.run(ctx, src, entryPath, vars, importDirs)
	})
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, ctxErr
	}
	if err != nil {
		return nil, err
	}

	shared := result.(*ports.CompileResult)
	return &ports.CompileResult{
		CSS:   shared.CSS,
		Files: append([]string(nil), shared.Files...),
	}, nil
}

func (c *Compiler) run(ctx context.Context, src, entryPath string, vars map[string]string, importDirs []string) (*ports.CompileResult, error) {
	args := make([]string, 0, len(vars)+3)

	keys := make([]string, 0, len(vars))
	for k := range vars {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		args = append(args, "--modify-var="+k+"="+vars[k])
	}

	dirs := append([]string{filepath.Dir(entryPath)}, importDirs...)
	args = append(args, "--include-path="+strings.Join(dirs, string(os.PathListSeparator)))
	args = append(args, "-")

	cmd := exec.CommandContext(ctx, c.bin, args...) //nolint:gosec // Binary is operator configured
	cmd.Stdin = strings.NewReader(src)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, context.DeadlineExceeded
		}
		c.logger.Error(zerr.With(zerr.Wrap(err, "lessc failed"), "entry", entryPath))
		return nil, zerr.With(zerr.Wrap(domain.ErrCompileFailed, strings.TrimSpace(stderr.String())), "entry", entryPath)
	}

	// Reading source on stdin means lessc emits no dependency listing, so
	// the touched file set is reconstructed by resolving import statements
	// against the include path.
	files := []string{entryPath}
	seen := map[string]struct{}{entryPath: {}}
	collectImports(src, dirs, seen, &files)

	return &ports.CompileResult{CSS: stdout.String(), Files: files}, nil
}

var importPattern = regexp.MustCompile(`@import\s+(?:\(([^)]*)\)\s*)?["']([^"']+)["']`)

// collectImports resolves import statements recursively. Unresolvable
// imports are skipped here; the compiler itself reports them.
func collectImports(src string, dirs []string, seen map[string]struct{}, files *[]string) {
	for _, m := range importPattern.FindAllStringSubmatch(src, -1) {
		opts, target := m[1], m[2]
		if strings.Contains(opts, "css") || strings.HasSuffix(target, ".css") {
			continue
		}
		if filepath.Ext(target) == "" {
			target += ".less"
		}

		for _, dir := range dirs {
			path := filepath.Join(dir, target)
			if _, ok := seen[path]; ok {
				break
			}
			data, err := os.ReadFile(path) //nolint:gosec // Path is resolved inside the include path
			if err != nil {
				continue
			}
			seen[path] = struct{}{}
			*files = append(*files, path)
			collectImports(string(data), append([]string{filepath.Dir(path)}, dirs...), seen, files)
			break
		}
	}
}

func compileKey(src string, vars map[string]string, importDirs []string) string {
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
