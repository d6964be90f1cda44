package metadecoders

import (
	"fmt"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"
	yaml "gopkg.in/yaml.v2"
)

// Decoder provides some configuration options for the decoders.
type Decoder struct{}

// Default is a Decoder in its default configuration.
var Default = Decoder{}

// UnmarshalFileToMap unmarshals the file in filename to a map.
func (d Decoder) UnmarshalFileToMap(fs afero.Fs, filename string) (map[string]any, error) {
	format := FormatFromFilename(filename)
	if format == "" {
		return nil, fmt.Errorf("%q is not a valid configuration format", filename)
	}

	data, err := afero.ReadFile(fs, filename)
	if err != nil {
		return nil, err
	}

	return d.UnmarshalToMap(data, format)
}

// UnmarshalToMap will unmarshal data in format f into a new map.
func (d Decoder) UnmarshalToMap(data []byte, f Format) (map[string]any, error) {
	m := make(map[string]any)
	if data == nil {
		return m, nil
	}

	var err error

	switch f {
	case TOML:
		err = toml.Unmarshal(data, &m)
	case YAML:
		mm := make(map[any]any)
		if err = yaml.Unmarshal(data, &mm); err == nil {
			m = stringifyYAMLMap(mm)
		}
	default:
		return nil, fmt.Errorf("unmarshal of format %q is not supported", f)
	}

	if err != nil {
		return nil, fmt.Errorf("unmarshal failed for format %q: %w", f, err)
	}

	return m, nil
}

// yaml.v2 unmarshals mappings to map[interface{}]interface{}; normalize
// to string keys all the way down.
func stringifyYAMLMap(in map[any]any) map[string]any {
	m := make(map[string]any, len(in))
	for k, v := range in {
		m[fmt.Sprintf("%v", k)] = stringifyYAMLValue(v)
	}
	return m
}

func stringifyYAMLValue(in any) any {
	switch v := in.(type) {
	case map[any]any:
		return stringifyYAMLMap(v)
	case []any:
		for i, vv := range v {
			v[i] = stringifyYAMLValue(vv)
		}
		return v
	default:
		return v
	}
}
