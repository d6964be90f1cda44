package assetrefs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReplaceImportsInJSRetargetsPublicPath(t *testing.T) {
	in := []byte(`r.p="/",r.u=function(e){return"static/js/"+e+".chunk.js"}`)

	out := ReplaceImportsInJS(in)

	assert.Contains(t, string(out), `r.p=window.kcContext.url.resourcesPath+"/build/"`)
	// Relative refs resolve against the new public path and stay untouched.
	assert.Contains(t, string(out), `"static/js/"`)
}

func TestReplaceImportsInJSRewritesAbsoluteAssetLiterals(t *testing.T) {
	in := []byte(`fetch("/static/config.json");const a='/assets/logo.svg';`)

	out := ReplaceImportsInJS(in)

	assert.Contains(t, string(out), `fetch(window.kcContext.url.resourcesPath+"/build/static/config.json")`)
	assert.Contains(t, string(out), `const a=window.kcContext.url.resourcesPath+'/build/assets/logo.svg';`)
}

func TestReplaceImportsInJSLeavesOtherCodeAlone(t *testing.T) {
	in := []byte(`const x = "/api/users"; p.q="/";`)

	out := ReplaceImportsInJS(in)

	assert.Equal(t, string(in), string(out))
}

func TestReplaceImportsInJSDeterministic(t *testing.T) {
	in := []byte(`n.p="/";fetch("/static/a.json")`)

	assert.Equal(t, ReplaceImportsInJS(in), ReplaceImportsInJS(in))
}
