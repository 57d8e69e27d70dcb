package styles

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	urlTokenPattern = regexp.MustCompile(`url\(\s*(?:"[^"]*"|'[^']*'|[^)]*)\s*\)`)
	commentPattern  = regexp.MustCompile(`(?s)/\*.*?\*/`)
	wordPattern     = regexp.MustCompile(`\b(left|right|ltr|rtl)\b`)
	dirPattern      = regexp.MustCompile(`\b(ltr|rtl)\b`)
)

// Flip applies the right-to-left direction transform: left and right tokens
// swap wherever they act as direction keywords. URL contents and comments
// are protected first, so a filename like arrow-left.svg survives untouched.
// Direction keywords inside URLs still swap, so icon-ltr.png becomes
// icon-rtl.png.
func Flip(css string) string {
	var protected []string
	protect := func(s string) string {
		protected = append(protected, s)
		return fmt.Sprintf("\x00lode:%d\x00", len(protected)-1)
	}

	css = commentPattern.ReplaceAllStringFunc(css, protect)
	css = urlTokenPattern.ReplaceAllStringFunc(css, func(token string) string {
		return protect(dirPattern.ReplaceAllStringFunc(token, swapDirection))
	})

	css = wordPattern.ReplaceAllStringFunc(css, swapDirection)

	for i := len(protected) - 1; i >= 0; i-- {
		css = strings.Replace(css, fmt.Sprintf("\x00lode:%d\x00", i), protected[i], 1)
	}
	return css
}

func swapDirection(w string) string {
	switch w {
	case "left":
		return "right"
	case "right":
		return "left"
	case "ltr":
		return "rtl"
	case "rtl":
		return "ltr"
	}
	return w
}
