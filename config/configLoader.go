package config

import (
	"github.com/spf13/afero"

	"github.com/keyforge-dev/keyforge/parser/metadecoders"
)

// ValidConfigFileExtensions is the set of config formats keyforge can read.
var ValidConfigFileExtensions = []string{"toml", "yaml", "yml"}

// FromFileToMap is the same as FromFile, but it returns the config values
// as a simple map.
func FromFileToMap(fs afero.Fs, filename string) (map[string]any, error) {
	return loadConfigFromFile(fs, filename)
}

// FromFile loads the configuration from the given filename.
func FromFile(fs afero.Fs, filename string) (Provider, error) {
	m, err := loadConfigFromFile(fs, filename)
	if err != nil {
		return nil, err
	}
	return NewFrom(m), nil
}

func loadConfigFromFile(fs afero.Fs, filename string) (map[string]any, error) {
	return metadecoders.Default.UnmarshalFileToMap(fs, filename)
}
