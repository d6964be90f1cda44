package assetrefs

import "regexp"

// The JS rewrite is textual on purpose: the bundler output we care about is
// regular enough that two rules cover it, and parsing minified JS buys
// nothing here.
//
// Rule 1 retargets the bundler's public path assignment (`n.p="/"`) at the
// theme's resources/build tree, so every chunk and asset the runtime loads
// relative to the public path resolves inside the theme.
// Rule 2 rewrites root-absolute asset string literals that bypass the public
// path.
var (
	jsPublicPathRe = regexp.MustCompile(`([a-zA-Z_$][\w$]*)\.p\s*=\s*["']/["']`)

	jsAbsAssetDoubleRe = regexp.MustCompile(`"(/(?:static|assets)/[^"\n]*)"`)
	jsAbsAssetSingleRe = regexp.MustCompile(`'(/(?:static|assets)/[^'\n]*)'`)
)

const jsResourcesPathExpr = `window.kcContext.url.resourcesPath`

// ReplaceImportsInJS rewrites references to statically imported bundled
// assets in jsCode so they resolve under the theme's resources/build tree at
// serve time. Pure text transform, deterministic for identical input.
func ReplaceImportsInJS(jsCode []byte) []byte {
	out := jsPublicPathRe.ReplaceAll(jsCode,
		[]byte(`$1.p=`+jsResourcesPathExpr+`+"/build/"`))

	out = jsAbsAssetDoubleRe.ReplaceAll(out,
		[]byte(jsResourcesPathExpr+`+"/build$1"`))
	out = jsAbsAssetSingleRe.ReplaceAll(out,
		[]byte(jsResourcesPathExpr+`+'/build$1'`))

	return out
}
