// Package component provides the parser adapter for single-file components.
package component

import (
	"regexp"
	"strings"

	"go.trai.ch/lode/internal/core/domain"
	"go.trai.ch/lode/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ComponentParser = (*Parser)(nil)

// Parser implements ports.ComponentParser. It separates a component source
// into its template, script and style blocks without interpreting the block
// contents.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

var (
	scriptPattern   = regexp.MustCompile(`(?s)<script(\s[^>]*)?>(.*?)</script>`)
	stylePattern    = regexp.MustCompile(`(?s)<style(\s[^>]*)?>(.*?)</style>`)
	templatePattern = regexp.MustCompile(`(?s)<template(\s[^>]*)?>(.*)</template>`)
	langPattern     = regexp.MustCompile(`lang=["']([^"']+)["']`)
	commentPattern  = regexp.MustCompile(`(?s)<!--.*?-->`)
	spacePattern    = regexp.MustCompile(`\s+`)
)

// Parse splits src into its blocks. A component must contain exactly one
// script block and at most one template and style block.
func (p *Parser) Parse(src string, minifyTemplate bool) (*ports.ComponentResult, error) {
	scripts := scriptPattern.FindAllStringSubmatch(src, -1)
	if len(scripts) == 0 {
		return nil, zerr.Wrap(domain.ErrComponentParseFailed, "component has no script block")
	}
	if len(scripts) > 1 {
		return nil, zerr.Wrap(domain.ErrComponentParseFailed, "component has more than one script block")
	}

	styles := stylePattern.FindAllStringSubmatch(src, -1)
	if len(styles) > 1 {
		return nil, zerr.Wrap(domain.ErrComponentParseFailed, "component has more than one style block")
	}

	result := &ports.ComponentResult{
		Script:    strings.TrimSpace(scripts[0][2]),
		StyleLang: "css",
	}

	if len(styles) == 1 {
		result.Style = strings.TrimSpace(styles[0][2])
		if m := langPattern.FindStringSubmatch(styles[0][1]); m != nil {
			lang := m[1]
			if lang != "css" && lang != "less" {
				return nil, zerr.With(zerr.Wrap(domain.ErrComponentParseFailed, "unsupported style language"), "lang", lang)
			}
			result.StyleLang = lang
		}
	}

	if m := templatePattern.FindStringSubmatch(src); m != nil {
		tpl := strings.TrimSpace(m[2])
		if minifyTemplate {
			tpl = minify(tpl)
		}
		result.Template = tpl
	}

	return result, nil
}

func minify(tpl string) string {
	tpl = commentPattern.ReplaceAllString(tpl, "")
	tpl = spacePattern.ReplaceAllString(tpl, " ")
	tpl = strings.ReplaceAll(tpl, "> <", "><")
	return strings.TrimSpace(tpl)
}
