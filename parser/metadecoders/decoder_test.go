package metadecoders

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnmarshalToMapTOML(t *testing.T) {
	m, err := Default.UnmarshalToMap([]byte("a = \"b\"\n\n[c]\nd = 1\n"), TOML)
	require.NoError(t, err)

	assert.Equal(t, "b", m["a"])
	c, ok := m["c"].(map[string]any)
	require.True(t, ok)
	assert.EqualValues(t, 1, c["d"])
}

func TestUnmarshalToMapYAML(t *testing.T) {
	m, err := Default.UnmarshalToMap([]byte("a: b\nc:\n  d: [1, 2]\n"), YAML)
	require.NoError(t, err)

	assert.Equal(t, "b", m["a"])
	c, ok := m["c"].(map[string]any)
	require.True(t, ok, "nested yaml maps are normalized to string keys")
	assert.Equal(t, []any{1, 2}, c["d"])
}

func TestUnmarshalFileToMap(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "conf.toml", []byte(`a = "b"`), 0644))

	m, err := Default.UnmarshalFileToMap(fs, "conf.toml")
	require.NoError(t, err)
	assert.Equal(t, "b", m["a"])

	_, err = Default.UnmarshalFileToMap(fs, "conf.properties")
	assert.Error(t, err)
}

func TestFormatFromFilename(t *testing.T) {
	assert.Equal(t, TOML, FormatFromFilename("keyforge.toml"))
	assert.Equal(t, YAML, FormatFromFilename("keyforge.yaml"))
	assert.Equal(t, YAML, FormatFromFilename("keyforge.yml"))
	assert.Equal(t, Format(""), FormatFromFilename("keyforge.json"))
}
