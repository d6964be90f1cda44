// Package paths has common path handling utilities.
package paths

import (
	"path/filepath"
	"strings"
)

// AbsPathify creates an absolute path if given a working dir and a relative path.
// If already absolute, the path is just cleaned.
func AbsPathify(workingDir, inPath string) string {
	if filepath.IsAbs(inPath) {
		return filepath.Clean(inPath)
	}
	return filepath.Join(workingDir, inPath)
}

// IsSubdir reports whether candidate is ancestor or nested somewhere below it.
// The comparison is done per path segment, so sibling directories sharing a
// string prefix (e.g. /a/build and /a/build_keycloak) never match.
func IsSubdir(ancestor, candidate string) bool {
	ancestor = filepath.Clean(ancestor)
	candidate = filepath.Clean(candidate)

	if ancestor == candidate {
		return true
	}

	if !strings.HasSuffix(ancestor, string(filepath.Separator)) {
		ancestor += string(filepath.Separator)
	}

	return strings.HasPrefix(candidate, ancestor)
}

// ToSlashTrimLeading converts the path separators to forward slashes and
// removes any leading slash.
func ToSlashTrimLeading(p string) string {
	return strings.TrimPrefix(filepath.ToSlash(p), "/")
}
