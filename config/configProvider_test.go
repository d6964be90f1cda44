package config

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keyforge-dev/keyforge/common/maps"
)

func TestDefaultConfigProvider(t *testing.T) {
	cfg := New()

	cfg.Set("themename", "corp")
	cfg.Set("minify", maps.Params{"css": true})

	assert.Equal(t, "corp", cfg.GetString("themename"))
	assert.True(t, cfg.IsSet("minify"))
	assert.True(t, cfg.GetBool("minify.css"))

	cfg.SetDefaults(maps.Params{"themename": "ignored", "builddir": "build_keycloak"})
	assert.Equal(t, "corp", cfg.GetString("themename"), "defaults never override set values")
	assert.Equal(t, "build_keycloak", cfg.GetString("builddir"))

	root, ok := cfg.Get("").(maps.Params)
	require.True(t, ok)
	assert.Contains(t, root, "themename")
}

func TestFromFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "keyforge.toml", []byte(`
themename = "corp"
keycloakversion = "21.1.2"
excludes = ["**.map"]

[minify]
css = true
`), 0644))

	cfg, err := FromFile(fs, "keyforge.toml")
	require.NoError(t, err)

	assert.Equal(t, "corp", cfg.GetString("themename"))
	assert.Equal(t, "21.1.2", cfg.GetString("keycloakversion"))
	assert.Equal(t, []string{"**.map"}, cfg.GetStringSlice("excludes"))
	assert.True(t, cfg.GetBool("minify.css"))
}

func TestFromFileYAML(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "keyforge.yaml", []byte(`
themename: corp
minify: true
`), 0644))

	cfg, err := FromFile(fs, "keyforge.yaml")
	require.NoError(t, err)

	assert.Equal(t, "corp", cfg.GetString("themename"))
	assert.True(t, cfg.GetBool("minify"))
}
