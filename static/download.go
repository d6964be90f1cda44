package static

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/locker"
	"github.com/cenkalti/backoff/v4"
	"github.com/mitchellh/hashstructure"
	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"

	"github.com/keyforge-dev/keyforge/kcfs"
	"github.com/keyforge-dev/keyforge/log"
)

// DefaultArchiveURL is the upstream source archive, versioned by tag.
const DefaultArchiveURL = "https://github.com/keycloak/keycloak/archive/refs/tags/%s.zip"

// Themes we pull resources from, in override order (keycloak wins over base).
var upstreamThemes = []string{"base", "keycloak"}

// HTTPDownloader is the default Downloader. It fetches the upstream source
// archive once per version into a cache dir, extracts the theme resources,
// and installs the used subset into the theme directory.
type HTTPDownloader struct {
	Fs       afero.Fs
	CacheDir string

	// ArchiveURL is a format string taking the version; defaults to
	// DefaultArchiveURL.
	ArchiveURL string

	// Client defaults to http.DefaultClient.
	Client *http.Client
}

// Download implements Downloader.
func (d *HTTPDownloader) Download(ctx context.Context, params DownloadParams) error {
	extractDir, err := d.ensureExtracted(ctx, params.KeycloakVersion)
	if err != nil {
		return err
	}

	return d.install(ctx, extractDir, params)
}

// ensureExtracted makes sure the theme/ tree of the given version is
// available in the cache, downloading and extracting at most once per
// version, also across goroutines.
func (d *HTTPDownloader) ensureExtracted(ctx context.Context, version string) (string, error) {
	locker.Lock("keycloak-archive-" + version)
	defer locker.Unlock("keycloak-archive-" + version)

	extractDir := filepath.Join(d.CacheDir, "keycloak-"+version, "theme")
	if ok, _ := afero.DirExists(d.Fs, extractDir); ok {
		return extractDir, nil
	}

	log.Process("download", "fetching keycloak "+version+" source archive")
	archive, err := d.fetchArchive(ctx, version)
	if err != nil {
		return "", err
	}

	if err := d.extractThemes(archive, extractDir); err != nil {
		return "", fmt.Errorf("extract keycloak %s themes: %w", version, err)
	}

	return extractDir, nil
}

func (d *HTTPDownloader) fetchArchive(ctx context.Context, version string) ([]byte, error) {
	urlFormat := d.ArchiveURL
	if urlFormat == "" {
		urlFormat = DefaultArchiveURL
	}
	url := fmt.Sprintf(urlFormat, version)

	client := d.Client
	if client == nil {
		client = http.DefaultClient
	}

	var body []byte
	op := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return backoff.Permanent(err)
		}

		res, err := client.Do(req)
		if err != nil {
			return err
		}
		defer res.Body.Close()

		switch {
		case res.StatusCode == http.StatusNotFound:
			return backoff.Permanent(fmt.Errorf("no archive for version at %s", url))
		case res.StatusCode != http.StatusOK:
			return fmt.Errorf("GET %s: %s", url, res.Status)
		}

		body, err = io.ReadAll(res.Body)
		return err
	}

	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = 3 * time.Minute
	if err := backoff.Retry(op, backoff.WithContext(bo, ctx)); err != nil {
		return nil, fmt.Errorf("download %s: %w", url, err)
	}

	return body, nil
}

// extractThemes writes the archive's */themes/src/main/resources/theme/ (or
// plain */theme/) subtree to extractDir.
func (d *HTTPDownloader) extractThemes(archive []byte, extractDir string) error {
	zr, err := zip.NewReader(bytes.NewReader(archive), int64(len(archive)))
	if err != nil {
		return err
	}

	found := false
	for _, f := range zr.File {
		if f.FileInfo().IsDir() {
			continue
		}

		rel, ok := themeRelPath(f.Name)
		if !ok {
			continue
		}
		if strings.Contains(rel, "..") {
			return fmt.Errorf("archive entry %q escapes the extraction dir", f.Name)
		}

		rc, err := f.Open()
		if err != nil {
			return err
		}
		content, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return err
		}

		if err := kcfs.WriteFile(d.Fs, filepath.Join(extractDir, filepath.FromSlash(rel)), content); err != nil {
			return err
		}
		found = true
	}

	if !found {
		return fmt.Errorf("archive contains no theme directory")
	}
	return nil
}

// themeRelPath maps an archive entry name to its path below the theme root,
// if it is part of one.
func themeRelPath(name string) (string, bool) {
	name = path.Clean(name)
	for _, marker := range []string{"/themes/src/main/resources/theme/", "/theme/"} {
		if i := strings.Index(name, marker); i >= 0 {
			return name[i+len(marker):], true
		}
	}
	return "", false
}

// install copies the used resources of the variant into the theme dir. The
// installed set is recorded in the cache dir, keyed by a hash over the full
// download params (version, variant, theme path, usage), so repeated builds
// with unchanged inputs skip the copy. The theme dir itself stays free of
// bookkeeping files.
func (d *HTTPDownloader) install(ctx context.Context, extractDir string, params DownloadParams) error {
	key, err := hashstructure.Hash(params, nil)
	if err != nil {
		return err
	}
	stamp := filepath.Join(d.CacheDir, "stamps", fmt.Sprintf("%d", key))

	if ok, _ := afero.Exists(d.Fs, stamp); ok {
		return nil
	}

	copies, err := d.resolveCopies(extractDir, params)
	if err != nil {
		return err
	}

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(8)
	for _, cp := range copies {
		cp := cp
		g.Go(func() error {
			content, err := afero.ReadFile(d.Fs, cp.src)
			if err != nil {
				return err
			}
			return kcfs.WriteFile(d.Fs, cp.dst, content)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	return kcfs.WriteFile(d.Fs, stamp, nil)
}

type resourceCopy struct {
	src, dst string
}

func (d *HTTPDownloader) resolveCopies(extractDir string, params DownloadParams) ([]resourceCopy, error) {
	variantDir := params.Variant.String()
	resourcesDst := filepath.Join(params.ThemeDirPath, "resources")

	var copies []resourceCopy

	addFromThemes := func(sub, rel, dst string) {
		// Later themes override earlier ones at the same path. Only the
		// winning source is copied, so the copies are free of duplicate
		// destinations and safe to run concurrently.
		var winner string
		for _, theme := range upstreamThemes {
			src := filepath.Join(extractDir, theme, sub, filepath.FromSlash(rel))
			if ok, _ := afero.Exists(d.Fs, src); ok {
				winner = src
			}
		}
		if winner != "" {
			copies = append(copies, resourceCopy{src: winner, dst: dst})
		}
	}

	if params.Usage.Empty() {
		rels, err := d.allResourcePaths(extractDir, variantDir)
		if err != nil {
			return nil, err
		}
		for _, rel := range rels {
			addFromThemes(filepath.Join(variantDir, "resources"), rel,
				filepath.Join(resourcesDst, filepath.FromSlash(rel)))
		}
		return copies, nil
	}

	for _, rel := range params.Usage.ResourcePaths {
		addFromThemes(filepath.Join(variantDir, "resources"), rel,
			filepath.Join(resourcesDst, filepath.FromSlash(rel)))
	}
	for _, rel := range params.Usage.CommonResourcePaths {
		addFromThemes(filepath.Join("common", "resources"), rel,
			filepath.Join(params.ThemeDirPath, "common", "resources", filepath.FromSlash(rel)))
	}

	return copies, nil
}

// allResourcePaths lists every resource path the upstream themes provide for
// the variant, relative to the resources root.
func (d *HTTPDownloader) allResourcePaths(extractDir, variantDir string) ([]string, error) {
	seen := map[string]bool{}
	var rels []string

	for _, theme := range upstreamThemes {
		root := filepath.Join(extractDir, theme, variantDir, "resources")
		if ok, _ := afero.DirExists(d.Fs, root); !ok {
			continue
		}
		err := afero.Walk(d.Fs, root, func(p string, info os.FileInfo, err error) error {
			if err != nil || info.IsDir() {
				return err
			}
			rel, err := filepath.Rel(root, p)
			if err != nil {
				return err
			}
			rel = filepath.ToSlash(rel)
			if !seen[rel] {
				seen[rel] = true
				rels = append(rels, rel)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	return rels, nil
}
