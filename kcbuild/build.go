// Package kcbuild orchestrates the theme asset assembly pipeline: per theme
// variant it copies the rewritten bundle, generates the page templates,
// writes the message bundles, fetches upstream static resources and writes
// the theme metadata. It is the only package that sequences the others.
package kcbuild

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/keyforge-dev/keyforge/assets"
	"github.com/keyforge-dev/keyforge/config"
	"github.com/keyforge-dev/keyforge/kcfs"
	"github.com/keyforge-dev/keyforge/keycloak"
	"github.com/keyforge-dev/keyforge/log"
	"github.com/keyforge-dev/keyforge/messages"
	"github.com/keyforge-dev/keyforge/metadata"
	"github.com/keyforge-dev/keyforge/pages"
	"github.com/keyforge-dev/keyforge/static"
	"github.com/keyforge-dev/keyforge/transform/assetrefs"
)

// SourceAnalyzer inspects the theme source tree for one variant.
type SourceAnalyzer interface {
	FieldNameUsage(variant keycloak.Variant) ([]string, error)
	ExtraPageNames(variant keycloak.Variant) ([]string, error)
	StaticResourceUsage(variant keycloak.Variant) (static.UsageReport, error)
}

// GeneratorFactory builds a page template generator for one variant. A fresh
// generator is built per variant; only the CSS globals are carried over.
type GeneratorFactory interface {
	NewGenerator(variant keycloak.Variant, cssGlobals assetrefs.CSSGlobals, fieldNames []string) (pages.TemplateGenerator, error)
}

// Builder runs the full theme generation for one configuration.
type Builder struct {
	fs   afero.Fs
	opts config.Options

	copier     *assets.Copier
	analyzer   SourceAnalyzer
	generators GeneratorFactory
	msgGen     messages.Generator
	downloader static.Downloader
}

// NewBuilder wires a Builder from its collaborators. copier must be rooted at
// opts.BundleDir.
func NewBuilder(fs afero.Fs, opts config.Options, copier *assets.Copier, analyzer SourceAnalyzer, generators GeneratorFactory, msgGen messages.Generator, downloader static.Downloader) *Builder {
	return &Builder{
		fs:         fs,
		opts:       opts,
		copier:     copier,
		analyzer:   analyzer,
		generators: generators,
		msgGen:     msgGen,
		downloader: downloader,
	}
}

// Build generates the theme tree for every variant present in the theme
// source tree, then copies the email templates verbatim if present.
//
// The CSS globals collected while copying assets accumulate across variants
// in one run; the map is threaded through explicitly and passed read only to
// template generation. Any step failing aborts the whole run.
func (b *Builder) Build(ctx context.Context) error {
	log.Process("build", "start theme "+b.opts.ThemeName)

	themeDir := filepath.Join(b.opts.BuildDir, b.opts.ThemeName)
	cssGlobals := assetrefs.CSSGlobals{}

	for _, variant := range keycloak.AllVariants {
		present, err := b.variantPresent(variant)
		if err != nil {
			return err
		}
		if !present {
			log.Process("build", fmt.Sprintf("no %s sources, skipping variant", variant))
			continue
		}

		if err := b.buildVariant(ctx, variant, themeDir, cssGlobals); err != nil {
			return err
		}
	}

	if err := b.copyEmailTheme(themeDir); err != nil {
		return err
	}

	log.Process("build", "done")
	return nil
}

func (b *Builder) variantPresent(variant keycloak.Variant) (bool, error) {
	ok, err := afero.DirExists(b.fs, filepath.Join(b.opts.ThemeSrcDir, variant.String()))
	if err != nil {
		return false, fmt.Errorf("stat %s sources: %w", variant, err)
	}
	return ok, nil
}

func (b *Builder) buildVariant(ctx context.Context, variant keycloak.Variant, themeDir string, cssGlobals assetrefs.CSSGlobals) error {
	dstDir := filepath.Join(themeDir, variant.String())
	srcSub := filepath.Join(b.opts.ThemeSrcDir, variant.String())

	copier := b.copier.WithOverride(filepath.Join(srcSub, "resources-override"))
	globals, err := copier.CopyTo(filepath.Join(dstDir, "resources", "build"))
	if err != nil {
		return err
	}
	cssGlobals.Merge(globals)

	fieldNames, err := b.analyzer.FieldNameUsage(variant)
	if err != nil {
		return fmt.Errorf("read field name usage for %s: %w", variant, err)
	}

	generator, err := b.generators.NewGenerator(variant, cssGlobals, fieldNames)
	if err != nil {
		return err
	}

	extraPages, err := b.analyzer.ExtraPageNames(variant)
	if err != nil {
		return fmt.Errorf("read extra pages for %s: %w", variant, err)
	}

	pw := pages.Writer{Fs: b.fs, Generator: generator}
	if err := pw.WritePages(variant, dstDir, extraPages); err != nil {
		return err
	}

	mw := messages.Writer{Fs: b.fs, Generator: b.msgGen}
	if err := mw.WriteBundles(variant, dstDir); err != nil {
		return err
	}

	usage, err := b.analyzer.StaticResourceUsage(variant)
	if err != nil {
		return fmt.Errorf("read static resource usage for %s: %w", variant, err)
	}

	fetcher := static.Fetcher{KeycloakVersion: b.opts.KeycloakVersion, Downloader: b.downloader}
	if err := fetcher.Fetch(ctx, variant, dstDir, usage); err != nil {
		return err
	}

	return metadata.WriteThemeProperties(b.fs, variant, dstDir, b.opts.ExtraThemeProperties)
}

// copyEmailTheme copies the email template subtree verbatim, no rewriting.
// Its absence is not an error.
func (b *Builder) copyEmailTheme(themeDir string) error {
	src := filepath.Join(b.opts.ThemeSrcDir, keycloak.EmailDirName)
	if ok, _ := afero.DirExists(b.fs, src); !ok {
		return nil
	}

	log.Process("build", "copying email theme")
	return kcfs.TransformTree(b.fs, src, filepath.Join(themeDir, keycloak.EmailDirName),
		func(string, []byte) (kcfs.TransformAction, []byte, error) {
			return kcfs.Passthrough, nil, nil
		})
}
