package assetrefs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReplaceImportsInCSSRewritesAbsoluteURLs(t *testing.T) {
	in := []byte(`.logo{background:url(/static/media/logo.png);color:red}`)

	out, globals := ReplaceImportsInCSS(in)

	assert.Contains(t, string(out), `var(--urlStaticMediaLogoPng)`)
	assert.NotContains(t, string(out), `url(/static/media/logo.png)`)
	assert.Equal(t, CSSGlobals{
		"urlStaticMediaLogoPng": "url(${url.resourcesPath}/build/static/media/logo.png)",
	}, globals)
}

func TestReplaceImportsInCSSLeavesRelativeAndExternalURLs(t *testing.T) {
	in := []byte(`.a{background:url(../img.png)}.b{background:url(https://x.example/i.png)}.c{background:url(data:image/png;base64,AAAA)}`)

	out, globals := ReplaceImportsInCSS(in)

	assert.Equal(t, string(in), string(out))
	assert.Empty(t, globals)
}

func TestReplaceImportsInCSSExtractsRootCustomProperties(t *testing.T) {
	in := []byte(`:root{--brand:#cc0000;--pad: 4px 8px;}`)

	out, globals := ReplaceImportsInCSS(in)

	// Extraction is additive, declarations stay in place.
	assert.Contains(t, string(out), `--brand:#cc0000`)
	assert.Equal(t, "#cc0000", globals["brand"])
	assert.Equal(t, "4px 8px", globals["pad"])
}

func TestReplaceImportsInCSSRewritesImportOnlyCustomPropertyInPlace(t *testing.T) {
	in := []byte(`:root{--kcLogo:url(/static/media/logo.svg)}`)

	out, globals := ReplaceImportsInCSS(in)

	require.Equal(t, "url(${url.resourcesPath}/build/static/media/logo.svg)", globals["kcLogo"])
	assert.Contains(t, string(out), `--kcLogo:url(${url.resourcesPath}/build/static/media/logo.svg)`)
	assert.NotContains(t, string(out), "var(--url")
}

func TestReplaceImportsInCSSIgnoresCustomPropertiesOutsideRoot(t *testing.T) {
	in := []byte(`.themed{--local:#fff}`)

	_, globals := ReplaceImportsInCSS(in)

	assert.Empty(t, globals)
}

func TestReplaceImportsInCSSLastDeclarationWins(t *testing.T) {
	a := []byte(`:root{--brand:#111111}`)
	b := []byte(`:root{--brand:#222222}`)

	globals := CSSGlobals{}
	_, ga := ReplaceImportsInCSS(a)
	globals.Merge(ga)
	_, gb := ReplaceImportsInCSS(b)
	globals.Merge(gb)

	assert.Equal(t, "#222222", globals["brand"])
}

func TestReplaceImportsInCSSDeterministic(t *testing.T) {
	in := []byte(`:root{--a:url(/static/x.png)}.y{background:url(/assets/y.png)}`)

	out1, g1 := ReplaceImportsInCSS(in)
	out2, g2 := ReplaceImportsInCSS(in)

	assert.Equal(t, out1, out2)
	assert.Equal(t, g1, g2)
}

func TestDerivePropertyName(t *testing.T) {
	assert.Equal(t, "urlStaticMediaLogoF34aPng", derivePropertyName("/static/media/logo.f34a.png"))
	assert.Equal(t, "urlAssetsFontsInterWoff2", derivePropertyName("/assets/fonts/inter.woff2"))
}
