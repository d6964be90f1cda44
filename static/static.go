// Package static retrieves the versioned upstream static resources a theme
// variant builds on top of.
package static

import (
	"context"
	"fmt"

	"github.com/keyforge-dev/keyforge/keycloak"
	"github.com/keyforge-dev/keyforge/log"
)

// UsageReport lists the upstream resources a theme actually references, so
// unused assets are not installed into the theme.
type UsageReport struct {
	// ResourcePaths are paths under the variant's resources directory of the
	// upstream theme, e.g. "css/login.css".
	ResourcePaths []string

	// CommonResourcePaths are paths under the upstream common resources,
	// e.g. "node_modules/patternfly/dist/css/patternfly.min.css".
	CommonResourcePaths []string
}

// Empty reports whether nothing is referenced; the downloader then installs
// the complete resource set.
func (u UsageReport) Empty() bool {
	return len(u.ResourcePaths) == 0 && len(u.CommonResourcePaths) == 0
}

// DownloadParams is the contract with the download collaborator.
type DownloadParams struct {
	KeycloakVersion string
	Variant         keycloak.Variant
	ThemeDirPath    string
	Usage           UsageReport
}

// Downloader retrieves and installs upstream static resources. Retry and
// caching policy live behind this interface.
type Downloader interface {
	Download(ctx context.Context, params DownloadParams) error
}

// Fetcher selects the upstream version per variant and delegates retrieval.
type Fetcher struct {
	// KeycloakVersion is the build-configured version, used for the login
	// variant. The account variant is pinned to the last version that ships
	// account-v1.
	KeycloakVersion string

	Downloader Downloader
}

// Fetch installs the static resources for variant into themeDirPath. Any
// downloader failure aborts the variant's build.
func (f Fetcher) Fetch(ctx context.Context, variant keycloak.Variant, themeDirPath string, usage UsageReport) error {
	version := keycloak.StaticResourceVersion(variant, f.KeycloakVersion)
	log.Process("fetch static resources", fmt.Sprintf("%s at keycloak %s", variant, version))

	if err := f.Downloader.Download(ctx, DownloadParams{
		KeycloakVersion: version,
		Variant:         variant,
		ThemeDirPath:    themeDirPath,
		Usage:           usage,
	}); err != nil {
		return fmt.Errorf("fetch static resources for %s (keycloak %s): %w", variant, version, err)
	}

	return nil
}
