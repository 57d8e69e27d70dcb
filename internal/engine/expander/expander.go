// Package expander implements the two-phase package file expansion pipeline:
// a cheap definition expansion feeding version hashing, and a full expansion
// producing servable content.
package expander

import (
	"encoding/json"
	"os"
	"strings"
	"sync"

	"go.trai.ch/lode/internal/core/domain"
	"go.trai.ch/lode/internal/core/ports"
	"go.trai.ch/zerr"
)

// Expander expands one module's package file list. Both phases memoize per
// context hash, independently, so that a hash-only caller never triggers a
// file read or a primary callback invocation. An Expander lives as long as
// its module instance; entries are never invalidated.
type Expander struct {
	module    *domain.Module
	config    ports.SiteConfig
	callbacks ports.CallbackRegistry
	parser    ports.ComponentParser

	mu        sync.Mutex
	defCache  map[string]*Bundle
	fullCache map[string]*Bundle
}

// New creates an Expander for the given module.
func New(m *domain.Module, config ports.SiteConfig, callbacks ports.CallbackRegistry, parser ports.ComponentParser) *Expander {
	return &Expander{
		module:    m,
		config:    config,
		callbacks: callbacks,
		parser:    parser,
		defCache:  make(map[string]*Bundle),
		fullCache: make(map[string]*Bundle),
	}
}

// Definition runs definition expansion for the context. It performs no file
// I/O and never invokes primary callbacks; version callbacks are invoked and
// configuration variables are resolved eagerly so their values reach the
// version hash.
func (e *Expander) Definition(rc domain.Context) (*Bundle, error) {
	key := rc.Hash()

	e.mu.Lock()
	cached, ok := e.defCache[key]
	e.mu.Unlock()
	if ok {
		return cached, nil
	}

	bundle, err := e.expandDefinition(rc)
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	e.defCache[key] = bundle
	e.mu.Unlock()
	return bundle, nil
}

// Expand runs full expansion for the context: callbacks are invoked, files
// are read, data entries are parsed and script components are split. The
// result carries literal content only and is safe to serve.
func (e *Expander) Expand(rc domain.Context) (*Bundle, error) {
	key := rc.Hash()

	e.mu.Lock()
	cached, ok := e.fullCache[key]
	e.mu.Unlock()
	if ok {
		return cached, nil
	}

	definition, err := e.Definition(rc)
	if err != nil {
		return nil, err
	}

	bundle, err := e.expandFull(rc, definition)
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	e.fullCache[key] = bundle
	e.mu.Unlock()
	return bundle, nil
}

func (e *Expander) expandDefinition(rc domain.Context) (*Bundle, error) {
	bundle := &Bundle{}
	mainSeen := false

	for _, pf := range e.module.PackageFiles {
		if pf.Name == "" {
			return nil, zerr.With(domain.ErrMissingEntryName, "module", e.module.Name)
		}

		file := File{
			Name: pf.Name,
			Type: pf.InferredType(),
			Main: pf.Main,
		}

		if pf.Main {
			if mainSeen {
				return nil, e.entryErr(domain.ErrDuplicateMain, pf.Name)
			}
			if !file.Type.IsScript() {
				return nil, e.entryErr(domain.ErrInvalidMainType, pf.Name)
			}
			mainSeen = true
			bundle.Main = pf.Name
		}

		if err := e.resolveSource(rc, pf, &file); err != nil {
			return nil, err
		}

		bundle.Files = append(bundle.Files, file)
	}

	if bundle.Main == "" {
		for _, f := range bundle.Files {
			if f.Type.IsScript() {
				bundle.Main = f.Name
				break
			}
		}
	}

	return bundle, nil
}

// resolveSource normalizes an entry to exactly one content source.
func (e *Expander) resolveSource(rc domain.Context, pf domain.PackageFile, file *File) error {
	switch {
	case pf.Content != nil:
		file.Content = pf.Content

	case len(pf.Config) > 0:
		if file.Type != domain.PackageData {
			return e.entryErr(domain.ErrConfigNotData, pf.Name)
		}
		values := make(map[string]string, len(pf.Config))
		for _, name := range pf.Config {
			v, err := e.config.Variable(name)
			if err != nil {
				return zerr.With(err, "entry", pf.Name)
			}
			values[name] = v
		}
		file.Content = values

	case pf.Callback != "":
		if _, ok := e.callbacks.Lookup(pf.Callback); !ok {
			return zerr.With(e.entryErr(domain.ErrUnknownCallback, pf.Name), "callback", pf.Callback)
		}
		file.Callback = pf.Callback
		file.CallbackParam = pf.CallbackParam

		if pf.VersionCallback != "" {
			cb, ok := e.callbacks.Lookup(pf.VersionCallback)
			if !ok {
				return zerr.With(e.entryErr(domain.ErrUnknownCallback, pf.Name), "callback", pf.VersionCallback)
			}
			result, err := cb(rc, pf.CallbackParam)
			if err != nil {
				return zerr.With(zerr.With(err, "module", e.module.Name), "entry", pf.Name)
			}
			if ref, ok := result.(domain.FileRef); ok {
				file.versionFile = e.module.Local(ref)
			} else {
				file.versionValue = result
			}
		}

	case pf.File != "":
		file.Path = e.module.Local(domain.NewFileRef(pf.File))

	default:
		return e.entryErr(domain.ErrIncompleteEntry, pf.Name)
	}

	return nil
}

func (e *Expander) expandFull(rc domain.Context, definition *Bundle) (*Bundle, error) {
	bundle := &Bundle{Main: definition.Main}

	for _, f := range definition.Files {
		file := File{
			Name:    f.Name,
			Type:    f.Type,
			Main:    f.Main,
			Content: f.Content,
		}

		switch {
		case f.Path != "":
			data, err := os.ReadFile(f.Path) //nolint:gosec // Path is resolved from the module definition
			if err != nil {
				if os.IsNotExist(err) {
					return nil, zerr.With(e.entryErr(domain.ErrFileMissing, f.Name), "path", f.Path)
				}
				return nil, zerr.With(e.entryErr(domain.ErrFileUnreadable, f.Name), "path", f.Path)
			}
			file.Content = string(data)

		case f.Callback != "":
			cb, ok := e.callbacks.Lookup(f.Callback)
			if !ok {
				return nil, zerr.With(e.entryErr(domain.ErrUnknownCallback, f.Name), "callback", f.Callback)
			}
			result, err := cb(rc, f.CallbackParam)
			if err != nil {
				return nil, zerr.With(zerr.With(err, "module", e.module.Name), "entry", f.Name)
			}
			file.Content = result
		}

		style, err := e.materialize(rc, f, &file)
		if err != nil {
			return nil, err
		}
		if style != nil {
			bundle.Styles = append(bundle.Styles, *style)
		}

		bundle.Files = append(bundle.Files, file)
	}

	return bundle, nil
}

// materialize finishes an entry's content for serving: data entries parse
// their textual content into structured form, component entries are split
// into script and template. A component's style block is returned for
// separate style processing.
func (e *Expander) materialize(rc domain.Context, src File, file *File) (*ComponentStyle, error) {
	switch file.Type {
	case domain.PackageData:
		if text, ok := file.Content.(string); ok && (src.Path != "" || src.Callback != "") {
			var parsed any
			if err := json.Unmarshal([]byte(text), &parsed); err != nil {
				return nil, zerr.With(zerr.With(zerr.Wrap(domain.ErrConfigParseFailed, err.Error()), "module", e.module.Name), "entry", file.Name)
			}
			file.Content = parsed
		}

	case domain.PackageComponent:
		text, ok := file.Content.(string)
		if !ok {
			return nil, e.entryErr(domain.ErrComponentParseFailed, file.Name)
		}
		parsed, err := e.parser.Parse(text, !rc.Debug)
		if err != nil {
			return nil, zerr.With(zerr.With(err, "module", e.module.Name), "entry", file.Name)
		}
		file.Content = assembleComponent(parsed, rc.Debug)
		if parsed.Style != "" {
			return &ComponentStyle{
				Source: parsed.Style,
				Lang:   parsed.StyleLang,
				Origin: src.Path,
			}, nil
		}
	}

	return nil, nil
}

// assembleComponent joins a parsed component's script and template into one
// served script. Debug output keeps the template's literal whitespace via a
// template literal; production output carries the minified template as a
// compact quoted string.
func assembleComponent(parsed *ports.ComponentResult, debug bool) string {
	var b strings.Builder
	b.WriteString(parsed.Script)
	if parsed.Template != "" {
		b.WriteString("\nmodule.exports.template = ")
		if debug {
			b.WriteString("`" + strings.ReplaceAll(parsed.Template, "`", "\\`") + "`")
		} else {
			data, _ := json.Marshal(parsed.Template)
			b.Write(data)
		}
		b.WriteString(";\n")
	}
	return b.String()
}

func (e *Expander) entryErr(sentinel error, entry string) error {
	return zerr.With(zerr.With(sentinel, "module", e.module.Name), "entry", entry)
}
