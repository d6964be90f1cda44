package ftl

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keyforge-dev/keyforge/keycloak"
)

func newScannerFs(t *testing.T) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()

	require.NoError(t, afero.WriteFile(fs, "src/login/Login.tsx", []byte(`
		const err = messagesPerField.existsError("username");
		const hint = messagesPerField.get('password');
		export default { pageId: "login.ftl" };
	`), 0644))
	require.NoError(t, afero.WriteFile(fs, "src/login/MyExtraPage.tsx", []byte(`
		export default { pageId: "my-extra-page.ftl" };
		const css = url.resourcesPath + "/css/login.css";
		const pf = url.resourcesCommonPath + "/node_modules/patternfly/dist/css/patternfly.min.css";
	`), 0644))
	require.NoError(t, afero.WriteFile(fs, "src/login/notes.md", []byte(`
		get("ignored") pageId: "ignored.ftl"
	`), 0644))

	return fs
}

func TestFieldNameUsage(t *testing.T) {
	s := SourceScanner{Fs: newScannerFs(t), ThemeSrcDir: "src"}

	names, err := s.FieldNameUsage(keycloak.Login)
	require.NoError(t, err)
	assert.Equal(t, []string{"password", "username"}, names)
}

func TestExtraPageNames(t *testing.T) {
	s := SourceScanner{Fs: newScannerFs(t), ThemeSrcDir: "src"}

	pages, err := s.ExtraPageNames(keycloak.Login)
	require.NoError(t, err)
	assert.Equal(t, []string{"login.ftl", "my-extra-page.ftl"}, pages)
}

func TestStaticResourceUsage(t *testing.T) {
	s := SourceScanner{Fs: newScannerFs(t), ThemeSrcDir: "src"}

	usage, err := s.StaticResourceUsage(keycloak.Login)
	require.NoError(t, err)
	assert.Equal(t, []string{"css/login.css"}, usage.ResourcePaths)
	assert.Equal(t,
		[]string{"node_modules/patternfly/dist/css/patternfly.min.css"},
		usage.CommonResourcePaths)
	assert.False(t, usage.Empty())
}

func TestScannerMissingVariantDir(t *testing.T) {
	s := SourceScanner{Fs: newScannerFs(t), ThemeSrcDir: "src"}

	names, err := s.FieldNameUsage(keycloak.Account)
	require.NoError(t, err)
	assert.Empty(t, names)

	usage, err := s.StaticResourceUsage(keycloak.Account)
	require.NoError(t, err)
	assert.True(t, usage.Empty())
}
