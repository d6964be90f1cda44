// Package messages writes the per-language message bundles of a theme
// variant.
package messages

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/keyforge-dev/keyforge/kcfs"
	"github.com/keyforge-dev/keyforge/keycloak"
	"github.com/keyforge-dev/keyforge/log"
)

// Bundle is one generated message bundle.
type Bundle struct {
	// LanguageTag is a BCP 47 tag, e.g. "en" or "pt-BR".
	LanguageTag string

	// PropertiesSource is the full content of the .properties file.
	PropertiesSource []byte
}

// Generator produces the message bundles for a variant from the theme
// sources.
type Generator interface {
	Generate(variant keycloak.Variant) ([]Bundle, error)
}

// Writer writes message bundles below a variant's output directory.
type Writer struct {
	Fs        afero.Fs
	Generator Generator
}

// WriteBundles writes one messages_<lang>.properties file per generated
// bundle under <dstDir>/messages. Duplicate language tags overwrite each
// other, last one wins.
func (w Writer) WriteBundles(variant keycloak.Variant, dstDir string) error {
	bundles, err := w.Generator.Generate(variant)
	if err != nil {
		return fmt.Errorf("generate %s message bundles: %w", variant, err)
	}

	for _, b := range bundles {
		name := BundleFilename(b.LanguageTag)
		if err := kcfs.WriteFile(w.Fs, filepath.Join(dstDir, "messages", name), b.PropertiesSource); err != nil {
			return fmt.Errorf("write message bundle %q: %w", name, err)
		}
	}

	log.Process("write messages", fmt.Sprintf("%s: %d bundles", variant, len(bundles)))
	return nil
}

// BundleFilename returns the properties filename for a language tag,
// following the messages_<locale> convention with underscored subtags.
func BundleFilename(languageTag string) string {
	return "messages_" + strings.ReplaceAll(languageTag, "-", "_") + ".properties"
}
