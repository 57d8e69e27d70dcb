package styles_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"go.trai.ch/lode/internal/adapters/cas"
	"go.trai.ch/lode/internal/adapters/fs"
	"go.trai.ch/lode/internal/adapters/logger"
	"go.trai.ch/lode/internal/core/domain"
	"go.trai.ch/lode/internal/core/ports"
	"go.trai.ch/lode/internal/core/ports/mocks"
	"go.trai.ch/lode/internal/engine/styles"
)

type fixture struct {
	root     string
	compiler *mocks.MockStyleCompiler
	proc     *styles.Processor
	deps     *cas.DependencyStore
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	root := t.TempDir()
	compiler := mocks.NewMockStyleCompiler(ctrl)
	deps := cas.NewDependencyStore(root)
	proc := styles.New(compiler, cas.NewCompileCacheStore(root), fs.NewHasher(), deps, logger.New(), root)
	return &fixture{root: root, compiler: compiler, proc: proc, deps: deps}
}

func (f *fixture) write(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(f.root, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func styleMap(files ...domain.StyleFile) map[string][]domain.StyleFile {
	out := make(map[string][]domain.StyleFile)
	for _, f := range files {
		out[f.MediaOrAll()] = append(out[f.MediaOrAll()], f)
	}
	return out
}

var ltrCtx = domain.Context{Language: "en", Skin: "vector", Direction: domain.DirLTR}

func TestProcessModule_PlainCSS(t *testing.T) {
	f := newFixture(t)
	f.write(t, "res/main.css", ".a { color: red; }")

	m := &domain.Module{Name: "site", LocalBase: filepath.Join(f.root, "res"), RemoteBase: "w/res"}

	res, err := f.proc.ProcessModule(context.Background(), m, ltrCtx,
		styleMap(domain.StyleFile{Ref: domain.NewFileRef("main.css")}), nil)
	require.NoError(t, err)

	assert.Equal(t, ".a { color: red; }", res.CSS["all"])
	assert.False(t, res.Generated)
}

func TestProcessModule_CompileCacheRoundTrip(t *testing.T) {
	f := newFixture(t)
	entry := f.write(t, "res/main.less", ".a { .mixin(); }")

	m := &domain.Module{Name: "site", LocalBase: filepath.Join(f.root, "res"), RemoteBase: "w/res"}

	f.compiler.EXPECT().
		Compile(gomock.Any(), ".a { .mixin(); }", entry, gomock.Nil(), gomock.Nil()).
		Return(&ports.CompileResult{CSS: ".a { color: red; }", Files: []string{entry}}, nil).
		Times(1)

	byMedia := styleMap(domain.StyleFile{Ref: domain.NewFileRef("main.less")})

	first, err := f.proc.ProcessModule(context.Background(), m, ltrCtx, byMedia, nil)
	require.NoError(t, err)
	assert.True(t, first.Generated)
	assert.Equal(t, ".a { color: red; }", first.CSS["all"])

	second, err := f.proc.ProcessModule(context.Background(), m, ltrCtx, byMedia, nil)
	require.NoError(t, err)
	assert.Equal(t, first.CSS, second.CSS, "second compile must come from the cache")
}

func TestProcessModule_CacheInvalidatedByTouchedFile(t *testing.T) {
	f := newFixture(t)
	entry := f.write(t, "res/main.less", `@import "vars"; .a {}`)
	vars := f.write(t, "res/vars.less", "@fg: red;")

	m := &domain.Module{Name: "site", LocalBase: filepath.Join(f.root, "res"), RemoteBase: "w/res"}

	f.compiler.EXPECT().
		Compile(gomock.Any(), gomock.Any(), entry, gomock.Nil(), gomock.Nil()).
		Return(&ports.CompileResult{CSS: ".a { color: red; }", Files: []string{entry, vars}}, nil).
		Times(2)

	byMedia := styleMap(domain.StyleFile{Ref: domain.NewFileRef("main.less")})

	_, err := f.proc.ProcessModule(context.Background(), m, ltrCtx, byMedia, nil)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(vars, []byte("@fg: blue;"), 0o600))

	proc2 := styles.New(f.compiler, cas.NewCompileCacheStore(f.root), fs.NewHasher(), f.deps, logger.New(), f.root)
	_, err = proc2.ProcessModule(context.Background(), m, ltrCtx, byMedia, nil)
	require.NoError(t, err)
}

func TestProcessModule_RTLFlip(t *testing.T) {
	f := newFixture(t)
	f.write(t, "res/main.css", ".a { float: left; }")

	m := &domain.Module{Name: "site", LocalBase: filepath.Join(f.root, "res"), RemoteBase: "w/res"}
	rtl := domain.Context{Language: "ar", Skin: "vector", Direction: domain.DirRTL}

	res, err := f.proc.ProcessModule(context.Background(), m, rtl,
		styleMap(domain.StyleFile{Ref: domain.NewFileRef("main.css")}), nil)
	require.NoError(t, err)
	assert.Equal(t, ".a { float: right; }", res.CSS["all"])
}

func TestProcessModule_NoFlipOptOut(t *testing.T) {
	f := newFixture(t)
	f.write(t, "res/main.css", ".a { float: left; }")

	m := &domain.Module{Name: "site", LocalBase: filepath.Join(f.root, "res"), RemoteBase: "w/res", NoFlip: true}
	rtl := domain.Context{Language: "ar", Skin: "vector", Direction: domain.DirRTL}

	res, err := f.proc.ProcessModule(context.Background(), m, rtl,
		styleMap(domain.StyleFile{Ref: domain.NewFileRef("main.css")}), nil)
	require.NoError(t, err)
	assert.Equal(t, ".a { float: left; }", res.CSS["all"])
}

func TestProcessModule_DependenciesPersisted(t *testing.T) {
	f := newFixture(t)
	f.write(t, "res/main.css", ".a { background: url(bg.png); } .b { background: url(gone.png); }")
	bg := f.write(t, "res/bg.png", "png-bytes")

	m := &domain.Module{Name: "site", LocalBase: filepath.Join(f.root, "res"), RemoteBase: "w/res"}

	res, err := f.proc.ProcessModule(context.Background(), m, ltrCtx,
		styleMap(domain.StyleFile{Ref: domain.NewFileRef("main.css")}), nil)
	require.NoError(t, err)

	assert.Equal(t, []string{bg}, res.Dependencies)
	assert.Equal(t, []string{filepath.Join(f.root, "res", "gone.png")}, res.Missing)

	persisted, err := f.deps.Get("site", ltrCtx.Hash())
	require.NoError(t, err)
	assert.Equal(t, []string{bg}, persisted)
}

func TestProcessModule_ComponentStyle(t *testing.T) {
	f := newFixture(t)

	m := &domain.Module{Name: "site", LocalBase: filepath.Join(f.root, "res"), RemoteBase: "w/res"}

	extra := styles.Sheet{
		Source:    ".w { color: red; }",
		Lang:      "css",
		LocalDir:  filepath.Join(f.root, "res"),
		RemoteDir: "w/res",
	}

	res, err := f.proc.ProcessModule(context.Background(), m, ltrCtx, nil, []styles.Sheet{extra})
	require.NoError(t, err)
	assert.Equal(t, ".w { color: red; }", res.CSS["all"])
}

func TestProcessModule_MissingStyleFileFatal(t *testing.T) {
	f := newFixture(t)

	m := &domain.Module{Name: "site", LocalBase: filepath.Join(f.root, "res"), RemoteBase: "w/res"}

	_, err := f.proc.ProcessModule(context.Background(), m, ltrCtx,
		styleMap(domain.StyleFile{Ref: domain.NewFileRef("absent.css")}), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrFileMissing)
}

func TestProcessModule_DeadlinePropagatesUnwrapped(t *testing.T) {
	f := newFixture(t)
	f.write(t, "res/main.less", ".a {}")

	m := &domain.Module{Name: "site", LocalBase: filepath.Join(f.root, "res"), RemoteBase: "w/res"}

	f.compiler.EXPECT().
		Compile(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Nil(), gomock.Nil()).
		Return(nil, context.DeadlineExceeded)

	_, err := f.proc.ProcessModule(context.Background(), m, ltrCtx,
		styleMap(domain.StyleFile{Ref: domain.NewFileRef("main.less")}), nil)
	assert.Equal(t, context.DeadlineExceeded, err, "timeouts must propagate unmodified")
}
