package ports

import "context"

// CompileResult is the output of one preprocessor invocation.
type CompileResult struct {
	// CSS is the compiled stylesheet.
	CSS string

	// Files lists every file the compiler consumed, as local paths.
	Files []string
}

// StyleCompiler is the external preprocessor collaborator. It is a black box:
// source text in, CSS plus the touched file list out.
//
// A bounded-duration guard around the invocation is the caller's
// responsibility; when the context deadline expires the returned error is
// context.DeadlineExceeded and must propagate unwrapped.
//
//go:generate mockgen -source=compiler.go -destination=mocks/mock_compiler.go -package=mocks
type StyleCompiler interface {
	// Compile compiles source text. The entry path anchors relative imports,
	// vars are injected preprocessor variables and importDirs extend the
	// import search path.
	Compile(ctx context.Context, src, entryPath string, vars map[string]string, importDirs []string) (*CompileResult, error)
}
