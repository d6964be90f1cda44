// Package ftl generates the FreeMarker page templates of a theme variant
// from the compiled bundle's entry document.
package ftl

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"sort"
	"text/template"

	"github.com/spf13/afero"

	"github.com/keyforge-dev/keyforge/config"
	"github.com/keyforge-dev/keyforge/keycloak"
	"github.com/keyforge-dev/keyforge/transform/assetrefs"
)

// ErrMissingIndex is returned when the compiled bundle has no entry document.
var ErrMissingIndex = errors.New("no index.html in the compiled bundle")

// Generator produces the template text for the pages of one theme variant.
// It is rebuilt per variant; only the CSS globals are shared across variants.
type Generator struct {
	variant    keycloak.Variant
	opts       config.Options
	fieldNames []string

	// The entry document with asset references already rewritten to the
	// theme-engine form, split around </head> for context injection.
	docHead []byte
	docTail []byte

	cssGlobals assetrefs.CSSGlobals
}

// NewGenerator loads the bundle's entry document and prepares it for page
// generation. cssGlobals is the map collected while copying assets; it is
// read, never written.
func NewGenerator(fs afero.Fs, variant keycloak.Variant, opts config.Options, cssGlobals assetrefs.CSSGlobals, fieldNames []string) (*Generator, error) {
	indexPath := filepath.Join(opts.BundleDir, "index.html")

	raw, err := afero.ReadFile(fs, indexPath)
	if err != nil {
		if ok, _ := afero.Exists(fs, indexPath); !ok {
			return nil, fmt.Errorf("%w (looked at %s)", ErrMissingIndex, indexPath)
		}
		return nil, err
	}

	doc := rewriteDocAssetRefs(raw)

	head, tail, ok := bytes.Cut(doc, []byte("</head>"))
	if !ok {
		// No head section; inject at the top instead.
		head, tail = nil, doc
	} else {
		tail = append([]byte("</head>"), tail...)
	}

	return &Generator{
		variant:    variant,
		opts:       opts,
		fieldNames: fieldNames,
		docHead:    head,
		docTail:    tail,
		cssGlobals: cssGlobals,
	}, nil
}

// Generate implements pages.TemplateGenerator.
func (g *Generator) Generate(pageID string) ([]byte, error) {
	var inject bytes.Buffer
	if err := contextTemplate.Execute(&inject, contextData{
		PageID:     pageID,
		ThemeName:  g.opts.ThemeName,
		Variant:    g.variant.String(),
		ToolVers:   g.opts.ToolVersion,
		FieldNames: g.fieldNames,
		CSSGlobals: sortedGlobals(g.cssGlobals),
	}); err != nil {
		return nil, fmt.Errorf("render page context for %q: %w", pageID, err)
	}

	var out bytes.Buffer
	out.Grow(len(g.docHead) + inject.Len() + len(g.docTail))
	out.Write(g.docHead)
	out.Write(inject.Bytes())
	out.Write(g.docTail)
	return out.Bytes(), nil
}

type contextData struct {
	PageID     string
	ThemeName  string
	Variant    string
	ToolVers   string
	FieldNames []string
	CSSGlobals []global
}

type global struct{ Name, Value string }

func sortedGlobals(m assetrefs.CSSGlobals) []global {
	out := make([]global, 0, len(m))
	for k, v := range m {
		out = append(out, global{Name: k, Value: v})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// The injected block declares the collected CSS globals (FreeMarker expands
// ${url.resourcesPath} here, which static stylesheets cannot do themselves)
// and bootstraps the kcContext the rewritten scripts read.
var contextTemplate = template.Must(template.New("context").Delims("[[", "]]").Parse(`
<#-- generated by keyforge[[if .ToolVers]] [[.ToolVers]][[end]] for theme [[.ThemeName]] -->
<style>
:root {
[[- range .CSSGlobals]]
  --[[.Name]]: [[.Value]];
[[- end]]
}
</style>
<script>
window.kcContext = {
  "themeName": "[[.ThemeName]]",
  "themeType": "[[.Variant]]",
  "pageId": "[[.PageID]]",
  "url": {
    "resourcesPath": "${url.resourcesPath}"
  },
  "fieldNames": [["["]][[range $i, $n := .FieldNames]][[if $i]], [[end]]"[[$n]]"[[end]]]
};
</script>
`))

// Root-absolute asset references in the entry document move under the
// theme's resources tree.
var docAssetRefRe = regexp.MustCompile(`(src|href)="(/(?:static|assets)/[^"]*)"`)

func rewriteDocAssetRefs(doc []byte) []byte {
	return docAssetRefRe.ReplaceAll(doc,
		[]byte(`$1="`+assetrefs.ResourcesPathPlaceholder+`/build$2"`))
}
