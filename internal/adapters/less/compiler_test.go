package less

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.trai.ch/lode/internal/adapters/logger"
)

func fakeLessc(t *testing.T, script string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lessc")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0o700))
	return path
}

func TestCompile_Output(t *testing.T) {
	bin := fakeLessc(t, "cat")
	c := NewCompiler(bin, logger.New())

	dir := t.TempDir()
	entry := filepath.Join(dir, "main.less")

	res, err := c.Compile(context.Background(), ".a { color: red; }", entry, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, ".a { color: red; }", res.CSS)
	assert.Equal(t, []string{entry}, res.Files)
}

func TestCompile_Failure(t *testing.T) {
	bin := fakeLessc(t, "echo 'ParseError: missing closing }' >&2; exit 1")
	c := NewCompiler(bin, logger.New())

	_, err := c.Compile(context.Background(), ".a {", "/src/main.less", nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ParseError")
}

func TestCompile_DeadlineExceeded(t *testing.T) {
	bin := fakeLessc(t, "sleep 5")
	c := NewCompiler(bin, logger.New())

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := c.Compile(ctx, ".a {}", "/src/main.less", nil, nil)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestCompile_CollectsImports(t *testing.T) {
	dir := t.TempDir()
	mixins := filepath.Join(dir, "mixins.less")
	colors := filepath.Join(dir, "colors.less")
	require.NoError(t, os.WriteFile(mixins, []byte(`@import "colors";`), 0o600))
	require.NoError(t, os.WriteFile(colors, []byte("@fg: #000;"), 0o600))

	bin := fakeLessc(t, "cat")
	c := NewCompiler(bin, logger.New())

	entry := filepath.Join(dir, "main.less")
	src := `@import "mixins"; @import (css) "legacy.css"; .a { color: @fg; }`

	res, err := c.Compile(context.Background(), src, entry, nil, nil)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{entry, mixins, colors}, res.Files)
}

func TestCompileKey(t *testing.T) {
	a := compileKey(".a {}", map[string]string{"x": "1", "y": "2"}, []string{"/lib"})
	b := compileKey(".a {}", map[string]string{"y": "2", "x": "1"}, []string{"/lib"})
	assert.Equal(t, a, b, "variable order must not affect the key")

	c := compileKey(".a {}", map[string]string{"x": "1", "y": "3"}, []string{"/lib"})
	assert.NotEqual(t, a, c)

	d := compileKey(".a {}", map[string]string{"x": "1", "y": "2"}, []string{"/other"})
	assert.NotEqual(t, a, d)
}
