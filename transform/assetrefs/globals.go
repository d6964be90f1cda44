// Package assetrefs rewrites references to statically bundled assets so they
// resolve inside a theme's resources/build tree, and collects the CSS custom
// properties that generated page templates need to re-declare.
package assetrefs

// CSSGlobals maps CSS custom property names (without the leading dashes) to
// their declared values, as collected from the bundle's stylesheets.
type CSSGlobals map[string]string

// Merge copies all entries of other into g. Keys present in both are
// overwritten, so the most recently processed file wins.
func (g CSSGlobals) Merge(other CSSGlobals) {
	for k, v := range other {
		g[k] = v
	}
}
