package component

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.trai.ch/lode/internal/core/domain"
)

const sample = `<template>
	<div class="greeting">
		<!-- rendered label -->
		<span>{{ label }}</span>
	</div>
</template>

<script>
module.exports = { props: ['label'] };
</script>

<style lang="less">
.greeting { color: @fg; }
</style>
`

func TestParse(t *testing.T) {
	res, err := NewParser().Parse(sample, false)
	require.NoError(t, err)

	assert.Equal(t, "module.exports = { props: ['label'] };", res.Script)
	assert.Equal(t, ".greeting { color: @fg; }", res.Style)
	assert.Equal(t, "less", res.StyleLang)
	assert.Contains(t, res.Template, "<!-- rendered label -->")
	assert.Contains(t, res.Template, "{{ label }}")
}

func TestParse_MinifyTemplate(t *testing.T) {
	res, err := NewParser().Parse(sample, true)
	require.NoError(t, err)

	assert.Equal(t, `<div class="greeting"><span>{{ label }}</span></div>`, res.Template)
}

func TestParse_DefaultStyleLang(t *testing.T) {
	src := "<script>x</script><style>.a {}</style>"
	res, err := NewParser().Parse(src, false)
	require.NoError(t, err)
	assert.Equal(t, "css", res.StyleLang)
}

func TestParse_NoScript(t *testing.T) {
	_, err := NewParser().Parse("<template><div/></template>", false)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrComponentParseFailed))
}

func TestParse_MultipleScripts(t *testing.T) {
	_, err := NewParser().Parse("<script>a</script><script>b</script>", false)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrComponentParseFailed))
}

func TestParse_UnsupportedStyleLang(t *testing.T) {
	_, err := NewParser().Parse(`<script>x</script><style lang="sass">.a {}</style>`, false)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrComponentParseFailed))
}

func TestParse_NoStyleNoTemplate(t *testing.T) {
	res, err := NewParser().Parse("<script>x</script>", false)
	require.NoError(t, err)
	assert.Empty(t, res.Style)
	assert.Empty(t, res.Template)
}
