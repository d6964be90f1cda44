// Package minifiers provides the (optional) minification of rewritten bundle
// assets before they are written into the theme tree.
package minifiers

import (
	"regexp"

	"github.com/tdewolff/minify/v2"

	"github.com/keyforge-dev/keyforge/config"
	"github.com/keyforge-dev/keyforge/transform"
)

// Client wraps a minifier.
type Client struct {
	m *minify.M
}

// New creates a new Client, registering minifiers for the asset types that
// occur in a compiled application bundle.
func New(cfg config.Provider) (Client, error) {
	conf, err := decodeConfig(cfg)
	if err != nil {
		return Client{}, err
	}

	m := minify.New()

	m.Add("text/css", getMinifier(conf, "css"))
	m.AddRegexp(regexp.MustCompile("^(application|text)/(x-)?(java|ecma)script$"), getMinifier(conf, "js"))
	m.AddRegexp(regexp.MustCompile(`^(application|text)/(x-|(ld|manifest)\+)?json$`), getMinifier(conf, "json"))
	m.Add("image/svg+xml", getMinifier(conf, "svg"))
	m.Add("text/html", getMinifier(conf, "html"))

	return Client{m: m}, nil
}

// getMinifier returns the appropriate minify.MinifierFunc for the MIME
// type suffix s, given the config c.
func getMinifier(c minifyConfig, s string) minify.Minifier {
	switch {
	case s == "css" && !c.DisableCSS:
		return &c.Tdewolff.CSS
	case s == "js" && !c.DisableJS:
		return &c.Tdewolff.JS
	case s == "json" && !c.DisableJSON:
		return &c.Tdewolff.JSON
	case s == "svg" && !c.DisableSVG:
		return &c.Tdewolff.SVG
	case s == "html" && !c.DisableHTML:
		return &c.Tdewolff.HTML
	default:
		return noopMinifier{}
	}
}

// Transformer returns a content transformer for the given MIME type. It is
// meant to be used in a transform.Chain.
func (m Client) Transformer(mediatype string) transform.Transformer {
	return func(ft transform.FromTo) error {
		return m.m.Minify(mediatype, ft.To(), ft.From())
	}
}
