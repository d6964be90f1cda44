package minifiers

import (
	"io"

	"github.com/mitchellh/mapstructure"
	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
	"github.com/tdewolff/minify/v2/html"
	"github.com/tdewolff/minify/v2/js"
	"github.com/tdewolff/minify/v2/json"
	"github.com/tdewolff/minify/v2/svg"

	"github.com/keyforge-dev/keyforge/common/maps"
	"github.com/keyforge-dev/keyforge/config"
)

type minifyConfig struct {
	DisableHTML bool
	DisableCSS  bool
	DisableJS   bool
	DisableJSON bool
	DisableSVG  bool

	Tdewolff tdewolffConfig `mapstructure:"-"`
}

type tdewolffConfig struct {
	HTML html.Minifier
	CSS  css.Minifier
	JS   js.Minifier
	JSON json.Minifier
	SVG  svg.Minifier
}

var defaultTdewolffConfig = tdewolffConfig{
	HTML: html.Minifier{
		KeepDocumentTags:        true,
		KeepConditionalComments: true,
		KeepEndTags:             true,
		KeepDefaultAttrVals:     true,
	},
	CSS: css.Minifier{
		Precision: 0,
		KeepCSS2:  true,
	},
	JS:   js.Minifier{},
	JSON: json.Minifier{},
	SVG: svg.Minifier{
		KeepComments: false,
		Precision:    0,
	},
}

var defaultConfig = minifyConfig{
	Tdewolff: defaultTdewolffConfig,
}

func decodeConfig(cfg config.Provider) (conf minifyConfig, err error) {
	conf = defaultConfig

	if cfg == nil || !cfg.IsSet("minify") {
		return
	}

	v := cfg.Get("minify")
	if _, ok := v.(maps.Params); !ok {
		// minify = true/false toggles the feature elsewhere; there is no
		// per-type configuration to decode.
		return
	}

	err = mapstructure.WeakDecode(v, &conf)
	return
}

// noopMinifier implements minify.Minifier, but doesn't minify content. This
// allows minification to be disabled for specific types without the matcher
// reporting missing minifiers as errors.
type noopMinifier struct{}

// Minify copies r into w without transformation.
func (m noopMinifier) Minify(_ *minify.M, w io.Writer, r io.Reader, _ map[string]string) error {
	_, err := io.Copy(w, r)
	return err
}
