// Package metadata writes a theme's theme.properties file.
package metadata

import (
	"bytes"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/keyforge-dev/keyforge/kcfs"
	"github.com/keyforge-dev/keyforge/keycloak"
)

// Filename is the metadata file name the theming engine expects.
const Filename = "theme.properties"

// WriteThemeProperties writes theme.properties for the variant under dstDir.
// The first entry declares the parent theme; every extra property the caller
// supplies follows, each separated from the previous entry by a blank line.
func WriteThemeProperties(fs afero.Fs, variant keycloak.Variant, dstDir string, extraProperties []string) error {
	var b bytes.Buffer
	fmt.Fprintf(&b, "parent=%s", variant.ParentTheme())

	for _, p := range extraProperties {
		b.WriteString("\n\n")
		b.WriteString(p)
	}

	return kcfs.WriteFile(fs, filepath.Join(dstDir, Filename), b.Bytes())
}
