package keycloak

// AccountV1Version is the last upstream release that still ships the
// account-v1 resources the account variant builds on. The account variant is
// always fetched at this version regardless of the version the login variant
// targets.
const AccountV1Version = "11.0.3"

// StaticResourceVersion returns the upstream version whose static resources
// the given variant needs, where buildVersion is the Keycloak version the
// build targets.
func StaticResourceVersion(v Variant, buildVersion string) string {
	switch v {
	case Login:
		return buildVersion
	case Account:
		return AccountV1Version
	default:
		panic("unhandled theme variant " + string(v))
	}
}
