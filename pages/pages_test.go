package pages

import (
	"errors"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keyforge-dev/keyforge/keycloak"
)

type stubGenerator struct {
	err   error
	calls []string
}

func (g *stubGenerator) Generate(pageID string) ([]byte, error) {
	g.calls = append(g.calls, pageID)
	if g.err != nil {
		return nil, g.err
	}
	return []byte("<#-- " + pageID + " -->"), nil
}

func TestWritePagesFixedSet(t *testing.T) {
	fs := afero.NewMemMapFs()
	gen := &stubGenerator{}

	w := Writer{Fs: fs, Generator: gen}
	require.NoError(t, w.WritePages(keycloak.Login, "theme/login", nil))

	for _, id := range keycloak.PageIDs(keycloak.Login) {
		b, err := afero.ReadFile(fs, "theme/login/"+id)
		require.NoError(t, err, id)
		assert.Equal(t, "<#-- "+id+" -->", string(b))
	}
	assert.Len(t, gen.calls, len(keycloak.PageIDs(keycloak.Login)))
}

func TestWritePagesExtrasDeduplicated(t *testing.T) {
	fs := afero.NewMemMapFs()
	gen := &stubGenerator{}

	w := Writer{Fs: fs, Generator: gen}
	extras := []string{"my-custom-page.ftl", "login.ftl", "my-custom-page.ftl"}
	require.NoError(t, w.WritePages(keycloak.Login, "out", extras))

	exists, _ := afero.Exists(fs, "out/my-custom-page.ftl")
	assert.True(t, exists)

	want := len(keycloak.PageIDs(keycloak.Login)) + 1
	assert.Len(t, gen.calls, want, "fixed ids named as extras are generated once")
}

func TestWritePagesGeneratorError(t *testing.T) {
	fs := afero.NewMemMapFs()
	boom := errors.New("boom")
	w := Writer{Fs: fs, Generator: &stubGenerator{err: boom}}

	err := w.WritePages(keycloak.Account, "out", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}
