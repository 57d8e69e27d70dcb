package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlip_SwapsProperties(t *testing.T) {
	css := ".a { float: left; margin-right: 1em; }"
	assert.Equal(t, ".a { float: right; margin-left: 1em; }", Flip(css))
}

func TestFlip_SwapsDirection(t *testing.T) {
	css := ".a { direction: ltr; }"
	assert.Equal(t, ".a { direction: rtl; }", Flip(css))
}

func TestFlip_ProtectsURLs(t *testing.T) {
	css := `.a { background: url(images/arrow-left.svg); float: left; }`
	assert.Equal(t, `.a { background: url(images/arrow-left.svg); float: right; }`, Flip(css))
}

func TestFlip_ProtectsQuotedURLs(t *testing.T) {
	css := `.a { background: url("right-rail.png"); }`
	assert.Equal(t, css, Flip(css))
}

func TestFlip_SwapsDirectionKeywordsInURLs(t *testing.T) {
	css := "div { background: url(icon-ltr.png); left: 0; }"
	assert.Equal(t, "div { background: url(icon-rtl.png); right: 0; }", Flip(css))
}

func TestFlip_ProtectsComments(t *testing.T) {
	css := "/* keep left as is */ .a { padding-left: 0; }"
	assert.Equal(t, "/* keep left as is */ .a { padding-right: 0; }", Flip(css))
}

func TestFlip_UntouchedWithoutDirectionTokens(t *testing.T) {
	css := ".a { color: red; }"
	assert.Equal(t, css, Flip(css))
}
