package keycloak

// The fixed page sets per variant. Extra pages discovered in the theme source
// tree are appended to these at build time, they never replace them.

var loginPageIDs = []string{
	"login.ftl",
	"register.ftl",
	"register-user-profile.ftl",
	"info.ftl",
	"error.ftl",
	"login-reset-password.ftl",
	"login-verify-email.ftl",
	"terms.ftl",
	"login-otp.ftl",
	"login-update-password.ftl",
	"login-update-profile.ftl",
	"login-idp-link-confirm.ftl",
	"login-idp-link-email.ftl",
	"login-page-expired.ftl",
	"login-config-totp.ftl",
	"logout-confirm.ftl",
	"update-user-profile.ftl",
	"idp-review-user-profile.ftl",
}

var accountPageIDs = []string{
	"account.ftl",
	"password.ftl",
}

// PageIDs returns a copy of the fixed page id list for the variant.
func PageIDs(v Variant) []string {
	var ids []string
	switch v {
	case Login:
		ids = loginPageIDs
	case Account:
		ids = accountPageIDs
	default:
		panic("unhandled theme variant " + string(v))
	}

	out := make([]string, len(ids))
	copy(out, ids)
	return out
}
