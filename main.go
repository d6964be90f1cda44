package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/keyforge-dev/keyforge/config"
	"github.com/keyforge-dev/keyforge/kcbuild"
	"github.com/keyforge-dev/keyforge/kcfs"
	"github.com/keyforge-dev/keyforge/log"
)

var (
	cfgFile         string
	themeName       string
	keycloakVersion string
	bundleDir       string
	themeSrcDir     string
	buildDir        string
	extraProperties []string
	minify          bool
	verbose         bool

	appVersion = "0.4.0"
)

var rootCmd = &cobra.Command{
	Use:   "keyforge",
	Short: "keyforge - build Keycloak themes from a compiled web app",
	Long: "Keyforge turns a compiled single-page-application bundle plus a theme\n" +
		"source tree into a Keycloak theme: page templates, message bundles,\n" +
		"rewritten static assets and theme metadata.",
	Version: appVersion,
}

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Generate the theme directory tree",
	RunE:  runBuild,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose progress output")

	buildCmd.Flags().StringVarP(&cfgFile, "config", "c", "", "config file (default keyforge.toml|yaml in the working dir)")
	buildCmd.Flags().StringVar(&themeName, "theme-name", "", "name of the generated theme")
	buildCmd.Flags().StringVar(&keycloakVersion, "keycloak-version", "", "Keycloak version to fetch login static resources for")
	buildCmd.Flags().StringVar(&bundleDir, "bundle-dir", "", "compiled application bundle directory")
	buildCmd.Flags().StringVar(&themeSrcDir, "theme-src-dir", "", "theme source tree")
	buildCmd.Flags().StringVar(&buildDir, "build-dir", "", "output directory for the generated theme")
	buildCmd.Flags().StringArrayVar(&extraProperties, "extra-property", nil, "extra theme.properties line (repeatable)")
	buildCmd.Flags().BoolVar(&minify, "minify", false, "minify rewritten CSS/JS")

	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, _ []string) error {
	log.Init(verbose)

	fs := kcfs.Os
	cfg, err := loadConfig(fs)
	if err != nil {
		return err
	}

	flagOverrides := map[string]any{
		"theme-name":       themeName,
		"keycloak-version": keycloakVersion,
		"bundle-dir":       bundleDir,
		"theme-src-dir":    themeSrcDir,
		"build-dir":        buildDir,
	}
	for flag, v := range flagOverrides {
		if cmd.Flags().Changed(flag) {
			cfg.Set(configKeyForFlag(flag), v)
		}
	}
	if cmd.Flags().Changed("minify") {
		cfg.Set("minify", minify)
	}
	if len(extraProperties) > 0 {
		cfg.Set("extrathemeproperties", extraProperties)
	}

	if !cfg.IsSet("themename") {
		// Default the theme name to the project directory name.
		if wd, err := os.Getwd(); err == nil {
			cfg.Set("themename", filepath.Base(wd))
		}
	}

	opts, err := config.DecodeOptions(cfg)
	if err != nil {
		return err
	}
	opts.ToolVersion = appVersion

	wd, err := os.Getwd()
	if err != nil {
		return err
	}
	if err := kcfs.PrepareBuildDir(fs, wd, opts.BuildDir); err != nil {
		return err
	}

	builder, err := kcbuild.NewDefaultBuilder(fs, cfg, opts)
	if err != nil {
		return err
	}

	return builder.Build(cmd.Context())
}

func loadConfig(fs afero.Fs) (config.Provider, error) {
	if cfgFile != "" {
		return config.FromFile(fs, cfgFile)
	}

	for _, ext := range config.ValidConfigFileExtensions {
		name := "keyforge." + ext
		if ok, _ := afero.Exists(fs, name); ok {
			return config.FromFile(fs, name)
		}
	}

	return config.New(), nil
}

func configKeyForFlag(flag string) string {
	switch flag {
	case "theme-name":
		return "themename"
	case "keycloak-version":
		return "keycloakversion"
	case "bundle-dir":
		return "bundledir"
	case "theme-src-dir":
		return "themesrcdir"
	case "build-dir":
		return "builddir"
	}
	return flag
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
