package config

import (
	"fmt"

	"github.com/mitchellh/mapstructure"

	"github.com/keyforge-dev/keyforge/common/maps"
)

// Options is the typed view of a keyforge build configuration. It is
// constructed once per run and never mutated afterwards; every pipeline
// component receives it read only.
type Options struct {
	// ThemeName is the directory name of the generated theme.
	ThemeName string `mapstructure:"themename"`

	// KeycloakVersion is the upstream version the login variant's static
	// resources are fetched at. The account variant is pinned independently.
	KeycloakVersion string `mapstructure:"keycloakversion"`

	// BundleDir is the compiled application bundle, relative to the working dir.
	BundleDir string `mapstructure:"bundledir"`

	// ThemeSrcDir is the theme source tree, relative to the working dir.
	ThemeSrcDir string `mapstructure:"themesrcdir"`

	// BuildDir receives the generated theme tree, relative to the working dir.
	BuildDir string `mapstructure:"builddir"`

	// DebugAssetsDirName is the subtree of BundleDir that holds previously
	// generated preview output; it is never copied into the theme.
	DebugAssetsDirName string `mapstructure:"debugassetsdirname"`

	// Excludes are glob patterns (slash separated, relative to BundleDir) of
	// bundle files to leave out of the theme.
	Excludes []string `mapstructure:"excludes"`

	// Minify enables minification of rewritten CSS/JS.
	Minify bool `mapstructure:"minify"`

	// ExtraThemeProperties are raw property lines appended to theme.properties.
	ExtraThemeProperties []string `mapstructure:"extrathemeproperties"`

	// ToolVersion is the keyforge version stamped into generated files.
	// Set by the caller, not read from config.
	ToolVersion string `mapstructure:"-"`
}

// DefaultOptions returns the option defaults as params, for use with
// Provider.SetDefaults.
func DefaultOptions() maps.Params {
	return maps.Params{
		"themename":          "",
		"keycloakversion":    "18.0.1",
		"bundledir":          "build",
		"themesrcdir":        "src",
		"builddir":           "build_keycloak",
		"debugassetsdirname": "keycloak-resources",
		"minify":             false,
	}
}

// DecodeOptions decodes cfg into Options, applying defaults for unset keys.
func DecodeOptions(cfg Provider) (Options, error) {
	cfg.SetDefaults(DefaultOptions())

	var opts Options
	if err := mapstructure.WeakDecode(cfg.Get(""), &opts); err != nil {
		return Options{}, fmt.Errorf("decode build options: %w", err)
	}

	if opts.ThemeName == "" {
		return Options{}, fmt.Errorf("themeName must be set")
	}

	return opts, nil
}
