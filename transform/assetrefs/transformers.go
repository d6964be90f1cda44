package assetrefs

import (
	"github.com/keyforge-dev/keyforge/transform"
)

// NewCSSTransformer rewrites bundled asset references in CSS content and
// merges the collected custom properties into globals.
func NewCSSTransformer(globals CSSGlobals) transform.Transformer {
	return func(ft transform.FromTo) error {
		out, g := ReplaceImportsInCSS(ft.From().Bytes())
		globals.Merge(g)
		_, err := ft.To().Write(out)
		return err
	}
}

// NewJSTransformer rewrites bundled asset references in JS content.
func NewJSTransformer() transform.Transformer {
	return func(ft transform.FromTo) error {
		_, err := ft.To().Write(ReplaceImportsInJS(ft.From().Bytes()))
		return err
	}
}
