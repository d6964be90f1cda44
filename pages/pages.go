// Package pages writes one template file per logical page of a theme variant.
package pages

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/keyforge-dev/keyforge/kcfs"
	"github.com/keyforge-dev/keyforge/keycloak"
	"github.com/keyforge-dev/keyforge/log"
)

// TemplateGenerator produces the template text for a page id. The generator
// is constructed per variant with everything page generation depends on (the
// compiled index document, the collected CSS globals, field usage, build
// options), so Generate only needs the id.
type TemplateGenerator interface {
	Generate(pageID string) ([]byte, error)
}

// Writer writes the page template files for one theme variant.
type Writer struct {
	Fs        afero.Fs
	Generator TemplateGenerator
}

// WritePages generates and writes one file per page id under dstDir: the
// fixed set for the variant plus any extra pages discovered in the theme
// sources. Existing files are overwritten.
func (w Writer) WritePages(variant keycloak.Variant, dstDir string, extraPages []string) error {
	ids := keycloak.PageIDs(variant)

	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		seen[id] = true
	}
	for _, id := range extraPages {
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}

	for _, id := range ids {
		ftl, err := w.Generator.Generate(id)
		if err != nil {
			return fmt.Errorf("generate %s page %q: %w", variant, id, err)
		}
		if err := kcfs.WriteFile(w.Fs, filepath.Join(dstDir, id), ftl); err != nil {
			return fmt.Errorf("write page %q: %w", id, err)
		}
	}

	log.Process("write pages", fmt.Sprintf("%s: %d pages", variant, len(ids)))
	return nil
}
