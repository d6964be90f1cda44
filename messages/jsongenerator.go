package messages

import (
	"bytes"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/goccy/go-json"
	"github.com/spf13/afero"
	"golang.org/x/text/language"

	"github.com/keyforge-dev/keyforge/keycloak"
)

// JSONGenerator builds message bundles from <themeSrcDir>/<variant>/messages/
// <lang>.json files. Nested objects are flattened with dot separated keys.
type JSONGenerator struct {
	Fs          afero.Fs
	ThemeSrcDir string
}

// Generate implements Generator. A variant without a messages directory
// yields no bundles; that is not an error.
func (g JSONGenerator) Generate(variant keycloak.Variant) ([]Bundle, error) {
	dir := filepath.Join(g.ThemeSrcDir, variant.String(), "messages")

	entries, err := afero.ReadDir(g.Fs, dir)
	if err != nil {
		if ok, _ := afero.DirExists(g.Fs, dir); !ok {
			return nil, nil
		}
		return nil, err
	}

	var bundles []Bundle
	for _, fi := range entries {
		if fi.IsDir() || !strings.HasSuffix(fi.Name(), ".json") {
			continue
		}

		rawTag := strings.TrimSuffix(fi.Name(), ".json")
		tag, err := language.Parse(rawTag)
		if err != nil {
			return nil, fmt.Errorf("message bundle %q: invalid language tag %q: %w", fi.Name(), rawTag, err)
		}

		data, err := afero.ReadFile(g.Fs, filepath.Join(dir, fi.Name()))
		if err != nil {
			return nil, err
		}

		var m map[string]any
		if err := json.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("message bundle %q: %w", fi.Name(), err)
		}

		bundles = append(bundles, Bundle{
			LanguageTag:      tag.String(),
			PropertiesSource: propertiesSource(m),
		})
	}

	return bundles, nil
}

func propertiesSource(m map[string]any) []byte {
	flat := map[string]string{}
	flatten("", m, flat)

	keys := make([]string, 0, len(flat))
	for k := range flat {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b bytes.Buffer
	for _, k := range keys {
		b.WriteString(escapePropertiesKey(k))
		b.WriteString("=")
		b.WriteString(escapePropertiesValue(flat[k]))
		b.WriteString("\n")
	}
	return b.Bytes()
}

func flatten(prefix string, m map[string]any, out map[string]string) {
	for k, v := range m {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch vv := v.(type) {
		case map[string]any:
			flatten(key, vv, out)
		default:
			out[key] = fmt.Sprintf("%v", vv)
		}
	}
}

var propertiesKeyEscaper = strings.NewReplacer(
	`\`, `\\`, "=", `\=`, ":", `\:`, " ", `\ `, "\n", `\n`, "\r", `\r`, "\t", `\t`,
)

var propertiesValueEscaper = strings.NewReplacer(
	`\`, `\\`, "\n", `\n`, "\r", `\r`, "\t", `\t`,
)

func escapePropertiesKey(s string) string   { return propertiesKeyEscaper.Replace(s) }
func escapePropertiesValue(s string) string { return propertiesValueEscaper.Replace(s) }
