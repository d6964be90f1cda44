package keycloak

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParentThemeTotal(t *testing.T) {
	for _, v := range AllVariants {
		assert.NotPanics(t, func() { v.ParentTheme() }, v)
		assert.NotEmpty(t, v.ParentTheme())
	}

	assert.Equal(t, "keycloak", Login.ParentTheme())
	assert.Equal(t, "account-v1", Account.ParentTheme())
	assert.Panics(t, func() { Variant("email").ParentTheme() })
}

func TestStaticResourceVersion(t *testing.T) {
	assert.Equal(t, "21.1.2", StaticResourceVersion(Login, "21.1.2"))
	assert.Equal(t, AccountV1Version, StaticResourceVersion(Account, "21.1.2"),
		"account resources are pinned independently of the build version")
}

func TestPageIDs(t *testing.T) {
	login := PageIDs(Login)
	require.NotEmpty(t, login)
	assert.Contains(t, login, "login.ftl")
	assert.Contains(t, login, "register.ftl")
	assert.Contains(t, login, "error.ftl")

	account := PageIDs(Account)
	assert.Equal(t, []string{"account.ftl", "password.ftl"}, account)

	for _, id := range login {
		assert.True(t, strings.HasSuffix(id, ".ftl"), id)
	}

	// Callers may append; the fixed set must not change underneath them.
	login[0] = "mutated"
	assert.Equal(t, "login.ftl", PageIDs(Login)[0])
}
