package ftl

import (
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/gobwas/glob"
	"github.com/spf13/afero"

	"github.com/keyforge-dev/keyforge/keycloak"
	"github.com/keyforge-dev/keyforge/static"
)

// SourceScanner analyzes a theme source tree: which form fields the pages
// reference, which extra pages exist beyond the fixed set, and which upstream
// static resources are used.
type SourceScanner struct {
	Fs          afero.Fs
	ThemeSrcDir string
}

// Source files considered by the scanners.
var sourceFileGlob = glob.MustCompile("*.{js,jsx,ts,tsx,svelte,vue,html}", '/')

var (
	fieldNameRe = regexp.MustCompile(`\.(?:printIfExists|existsError|exists|get)\(\s*["']([^"']+)["']`)
	extraPageRe = regexp.MustCompile(`pageId:\s*["']([^"']+\.ftl)["']`)

	resourceUseRe       = regexp.MustCompile(`resourcesPath\s*\+\s*["']/([^"']+)["']`)
	commonResourceUseRe = regexp.MustCompile(`resourcesCommonPath\s*\+\s*["']/([^"']+)["']`)
)

// FieldNameUsage returns the sorted set of form field names the variant's
// sources reference through the message helpers.
func (s SourceScanner) FieldNameUsage(variant keycloak.Variant) ([]string, error) {
	return s.collect(variant, fieldNameRe, 1)
}

// ExtraPageNames returns the sorted set of page ids declared in the variant's
// sources beyond whatever the fixed set contains.
func (s SourceScanner) ExtraPageNames(variant keycloak.Variant) ([]string, error) {
	return s.collect(variant, extraPageRe, 1)
}

// StaticResourceUsage reports the upstream static resources the variant's
// sources reference.
func (s SourceScanner) StaticResourceUsage(variant keycloak.Variant) (static.UsageReport, error) {
	resources, err := s.collect(variant, resourceUseRe, 1)
	if err != nil {
		return static.UsageReport{}, err
	}
	common, err := s.collect(variant, commonResourceUseRe, 1)
	if err != nil {
		return static.UsageReport{}, err
	}
	return static.UsageReport{
		ResourcePaths:       resources,
		CommonResourcePaths: common,
	}, nil
}

// collect runs re over every source file of the variant's subtree and
// returns the sorted, deduplicated submatch group values.
func (s SourceScanner) collect(variant keycloak.Variant, re *regexp.Regexp, group int) ([]string, error) {
	root := filepath.Join(s.ThemeSrcDir, variant.String())
	if ok, _ := afero.DirExists(s.Fs, root); !ok {
		return nil, nil
	}

	seen := map[string]bool{}

	err := afero.Walk(s.Fs, root, func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return err
		}
		if !sourceFileGlob.Match(strings.ToLower(filepath.Base(path))) {
			return nil
		}

		content, err := afero.ReadFile(s.Fs, path)
		if err != nil {
			return err
		}

		for _, m := range re.FindAllSubmatch(content, -1) {
			seen[string(m[group])] = true
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if len(seen) == 0 {
		return nil, nil
	}
	out := make([]string, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	sort.Strings(out)
	return out, nil
}
