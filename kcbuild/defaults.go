package kcbuild

import (
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/keyforge-dev/keyforge/assets"
	"github.com/keyforge-dev/keyforge/config"
	"github.com/keyforge-dev/keyforge/ftl"
	"github.com/keyforge-dev/keyforge/keycloak"
	"github.com/keyforge-dev/keyforge/messages"
	"github.com/keyforge-dev/keyforge/minifiers"
	"github.com/keyforge-dev/keyforge/pages"
	"github.com/keyforge-dev/keyforge/static"
	"github.com/keyforge-dev/keyforge/transform/assetrefs"
)

// NewDefaultBuilder wires a Builder with the stock collaborators: the FTL
// generator and source scanners, JSON backed message bundles and the HTTP
// resource downloader.
func NewDefaultBuilder(fs afero.Fs, cfg config.Provider, opts config.Options) (*Builder, error) {
	var min *minifiers.Client
	if opts.Minify {
		m, err := minifiers.New(cfg)
		if err != nil {
			return nil, err
		}
		min = &m
	}

	copier, err := assets.NewCopier(fs, opts.BundleDir, opts.DebugAssetsDirName, opts.Excludes, min)
	if err != nil {
		return nil, err
	}

	return NewBuilder(
		fs,
		opts,
		copier,
		ftl.SourceScanner{Fs: fs, ThemeSrcDir: opts.ThemeSrcDir},
		ftlGeneratorFactory{fs: fs, opts: opts},
		messages.JSONGenerator{Fs: fs, ThemeSrcDir: opts.ThemeSrcDir},
		&static.HTTPDownloader{Fs: fs, CacheDir: filepath.Join(opts.BuildDir, ".cache")},
	), nil
}

type ftlGeneratorFactory struct {
	fs   afero.Fs
	opts config.Options
}

func (f ftlGeneratorFactory) NewGenerator(variant keycloak.Variant, cssGlobals assetrefs.CSSGlobals, fieldNames []string) (pages.TemplateGenerator, error) {
	return ftl.NewGenerator(f.fs, variant, f.opts, cssGlobals, fieldNames)
}
