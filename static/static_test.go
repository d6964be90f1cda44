package static

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keyforge-dev/keyforge/keycloak"
)

type recordingDownloader struct {
	err    error
	params []DownloadParams
}

func (d *recordingDownloader) Download(_ context.Context, params DownloadParams) error {
	d.params = append(d.params, params)
	return d.err
}

func TestFetchVersionSelection(t *testing.T) {
	dl := &recordingDownloader{}
	f := Fetcher{KeycloakVersion: "21.1.2", Downloader: dl}

	require.NoError(t, f.Fetch(context.Background(), keycloak.Login, "out/login", UsageReport{}))
	require.NoError(t, f.Fetch(context.Background(), keycloak.Account, "out/account", UsageReport{}))

	require.Len(t, dl.params, 2)
	assert.Equal(t, "21.1.2", dl.params[0].KeycloakVersion)
	assert.Equal(t, keycloak.AccountV1Version, dl.params[1].KeycloakVersion)
	assert.Equal(t, "out/account", dl.params[1].ThemeDirPath)
}

func TestFetchPassesUsage(t *testing.T) {
	dl := &recordingDownloader{}
	f := Fetcher{KeycloakVersion: "18.0.1", Downloader: dl}

	usage := UsageReport{ResourcePaths: []string{"css/login.css"}}
	require.NoError(t, f.Fetch(context.Background(), keycloak.Login, "out", usage))
	assert.Equal(t, usage, dl.params[0].Usage)
}

func TestFetchWrapsDownloaderError(t *testing.T) {
	boom := errors.New("network down")
	f := Fetcher{KeycloakVersion: "18.0.1", Downloader: &recordingDownloader{err: boom}}

	err := f.Fetch(context.Background(), keycloak.Login, "out", UsageReport{})
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "18.0.1")
}

func TestUsageReportEmpty(t *testing.T) {
	assert.True(t, UsageReport{}.Empty())
	assert.False(t, UsageReport{CommonResourcePaths: []string{"x"}}.Empty())
}
