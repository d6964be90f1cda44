// Package assets copies the compiled application bundle into a theme's
// resources/build tree, rewriting asset references on the way and collecting
// the CSS custom properties the generated pages need.
package assets

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
	"github.com/spf13/afero"

	"github.com/keyforge-dev/keyforge/common/paths"
	"github.com/keyforge-dev/keyforge/kcfs"
	"github.com/keyforge-dev/keyforge/log"
	"github.com/keyforge-dev/keyforge/minifiers"
	"github.com/keyforge-dev/keyforge/transform"
	"github.com/keyforge-dev/keyforge/transform/assetrefs"
)

// Copier copies one bundle tree into theme resource trees. A single Copier is
// used for every variant of a build, so its exclusion state is computed once.
type Copier struct {
	fs        afero.Fs
	bundleDir string

	// overrideDir, when non empty and present, is overlaid over the bundle so
	// individual files can be shadowed per variant.
	overrideDir string

	debugDirName string
	excludes     []glob.Glob

	min *minifiers.Client
}

// NewCopier creates a Copier for the bundle at bundleDir. excludes are slash
// separated glob patterns relative to the bundle root. min may be nil to
// disable minification.
func NewCopier(fs afero.Fs, bundleDir, debugDirName string, excludes []string, min *minifiers.Client) (*Copier, error) {
	c := &Copier{
		fs:           fs,
		bundleDir:    filepath.Clean(bundleDir),
		debugDirName: debugDirName,
		min:          min,
	}

	for _, pattern := range excludes {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}
		c.excludes = append(c.excludes, g)
	}

	return c, nil
}

// WithOverride returns a copy of c that overlays overrideDir over the bundle.
func (c *Copier) WithOverride(overrideDir string) *Copier {
	cc := *c
	cc.overrideDir = overrideDir
	return &cc
}

// CopyTo materializes the (possibly overlaid) bundle under dstDir and returns
// the CSS custom properties collected from every stylesheet processed.
// Running it twice over an unchanged bundle yields byte-identical output.
func (c *Copier) CopyTo(dstDir string) (assetrefs.CSSGlobals, error) {
	globals := assetrefs.CSSGlobals{}

	srcFs := afero.NewBasePathFs(c.fs, c.bundleDir)
	if c.overrideDir != "" {
		if ok, _ := afero.DirExists(c.fs, c.overrideDir); ok {
			log.Process("copy assets", "overlaying "+c.overrideDir)
			srcFs = kcfs.NewOverlay(afero.NewBasePathFs(c.fs, c.overrideDir), srcFs)
		}
	}

	callback := func(path string, content []byte) (kcfs.TransformAction, []byte, error) {
		rel := paths.ToSlashTrimLeading(path)

		// Never copy a previously generated preview artifact back into itself.
		if c.debugDirName != "" && paths.IsSubdir(c.debugDirName, rel) {
			return kcfs.Skip, nil, nil
		}

		for _, g := range c.excludes {
			if g.Match(rel) {
				return kcfs.Skip, nil, nil
			}
		}

		switch strings.ToLower(filepath.Ext(path)) {
		case ".css":
			out, err := c.applyChain("text/css", assetrefs.NewCSSTransformer(globals), content)
			return kcfs.Replace, out, err
		case ".js", ".mjs":
			out, err := c.applyChain("application/javascript", assetrefs.NewJSTransformer(), content)
			return kcfs.Replace, out, err
		default:
			return kcfs.Passthrough, nil, nil
		}
	}

	if err := kcfs.TransformTreeTo(srcFs, c.fs, ".", dstDir, callback); err != nil {
		return nil, fmt.Errorf("copy bundle to %q: %w", dstDir, err)
	}

	return globals, nil
}

func (c *Copier) applyChain(mediatype string, tr transform.Transformer, content []byte) ([]byte, error) {
	chain := transform.New(tr)
	if c.min != nil {
		chain = append(chain, c.min.Transformer(mediatype))
	}

	var b bytes.Buffer
	if err := chain.Apply(&b, bytes.NewReader(content)); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}
