package metadecoders

import (
	"path/filepath"
	"strings"
)

// Format is a configuration file format.
type Format string

const (
	TOML Format = "toml"
	YAML Format = "yaml"
)

// FormatFromFilename gets the format given a filename, empty if unknown.
func FormatFromFilename(filename string) Format {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))

	switch ext {
	case "toml":
		return TOML
	case "yaml", "yml":
		return YAML
	}

	return ""
}
