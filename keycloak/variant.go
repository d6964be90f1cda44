// Package keycloak holds the fixed facts about the Keycloak theming engine
// that the build pipeline targets: the theme variants, their parent themes,
// their page sets and the upstream version pinning.
package keycloak

import "fmt"

// Variant is one of the theme types a Keycloak theme can provide pages for.
// Email is not a Variant: the email templates are copied verbatim and go
// through none of the page machinery.
type Variant string

const (
	Login   Variant = "login"
	Account Variant = "account"
)

// AllVariants is the fixed iteration order of the build pipeline.
var AllVariants = []Variant{Login, Account}

// EmailDirName is the source and output directory name for the email
// template tree.
const EmailDirName = "email"

func (v Variant) String() string {
	return string(v)
}

// ParentTheme returns the theme this variant's output declares as parent in
// theme.properties. The switch must stay total over AllVariants; variant_test
// asserts that.
func (v Variant) ParentTheme() string {
	switch v {
	case Login:
		return "keycloak"
	case Account:
		return "account-v1"
	default:
		panic(fmt.Sprintf("unhandled theme variant %q", string(v)))
	}
}
