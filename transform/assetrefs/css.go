package assetrefs

import (
	"bytes"
	"strings"
	"unicode"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// ResourcesPathPlaceholder is the theme-engine expression the serving layer
// expands to the URL of the theme's resources directory. It is only
// meaningful in generated page templates, which is why absolute url()
// references in plain stylesheets are indirected through custom properties
// declared by the template (see ReplaceImportsInCSS).
const ResourcesPathPlaceholder = "${url.resourcesPath}"

// ReplaceImportsInCSS rewrites references to statically bundled assets in
// cssCode and returns the rewritten stylesheet together with the custom
// properties that generated page templates must declare.
//
// Two extraction rules apply:
//
//   - A custom property declared in a top-level :root block is collected as
//     is. The declaration stays in the stylesheet; any absolute url() in its
//     value is rewritten in place to the resources/build form.
//   - An absolute url() reference in an ordinary declaration is replaced by
//     var(--<derived name>), and the derived property (valued with the
//     resources/build form) is collected so the template can declare it.
//
// Later declarations of the same property overwrite earlier ones.
func ReplaceImportsInCSS(cssCode []byte) ([]byte, CSSGlobals) {
	var out bytes.Buffer
	out.Grow(len(cssCode))

	globals := CSSGlobals{}
	l := css.NewLexer(parse.NewInputBytes(cssCode))

	var (
		depth      int
		prelude    bytes.Buffer
		inRoot     bool
		inCustom   bool
		customName string
		valueStart int
		afterColon bool
		atImport   bool
	)

	endCustom := func() {
		if inCustom && afterColon {
			v := strings.TrimSpace(string(out.Bytes()[valueStart:]))
			if v != "" {
				globals[strings.TrimPrefix(customName, "--")] = v
			}
		}
		inCustom = false
		afterColon = false
	}

	for {
		tt, data := l.Next()
		if tt == css.ErrorToken {
			break
		}

		switch tt {
		case css.LeftBraceToken:
			depth++
			inRoot = depth == 1 && strings.Contains(prelude.String(), ":root")
			prelude.Reset()
			out.Write(data)

		case css.RightBraceToken:
			endCustom()
			depth--
			if depth < 0 {
				depth = 0
			}
			if depth == 0 {
				inRoot = false
			}
			out.Write(data)

		case css.SemicolonToken:
			endCustom()
			atImport = false
			out.Write(data)

		case css.ColonToken:
			if depth == 0 {
				prelude.Write(data)
			}
			out.Write(data)
			if inCustom {
				afterColon = true
				valueStart = out.Len()
			}

		case css.AtKeywordToken:
			atImport = bytes.Equal(data, []byte("@import"))
			out.Write(data)

		case css.StringToken:
			if atImport {
				out.WriteString(rewriteCSSString(string(data)))
			} else {
				out.Write(data)
			}

		case css.URLToken:
			rewritten, name, value := rewriteURLToken(string(data))
			if name != "" && !inCustom {
				// Ordinary declaration: indirect through a derived property.
				globals[name] = value
				out.WriteString("var(--" + name + ")")
			} else {
				out.WriteString(rewritten)
			}

		case css.CustomPropertyNameToken:
			if depth == 1 && inRoot {
				endCustom()
				inCustom = true
				customName = string(data)
			}
			out.Write(data)

		case css.IdentToken:
			if depth == 1 && inRoot && bytes.HasPrefix(data, []byte("--")) {
				endCustom()
				inCustom = true
				customName = string(data)
			}
			if depth == 0 {
				prelude.Write(data)
			}
			out.Write(data)

		default:
			if depth == 0 {
				prelude.Write(data)
			}
			out.Write(data)
		}
	}

	return out.Bytes(), globals
}

// rewriteURLToken takes a full url(...) token. For absolute references it
// returns the in-place rewritten token plus the derived property name and its
// resources/build value; for anything else name is empty and the token is
// returned unchanged.
func rewriteURLToken(tok string) (rewritten, name, value string) {
	inner := strings.TrimSuffix(strings.TrimPrefix(tok, "url("), ")")
	inner = strings.TrimSpace(inner)

	quote := ""
	if len(inner) >= 2 && (inner[0] == '"' || inner[0] == '\'') {
		quote = string(inner[0])
		inner = strings.Trim(inner, quote)
	}

	if !isBundleAbsolute(inner) {
		return tok, "", ""
	}

	target := ResourcesPathPlaceholder + "/build" + inner
	rewritten = "url(" + quote + target + quote + ")"
	return rewritten, derivePropertyName(inner), "url(" + target + ")"
}

func rewriteCSSString(tok string) string {
	if len(tok) < 2 {
		return tok
	}
	quote := string(tok[0])
	inner := strings.Trim(tok, quote)
	if !isBundleAbsolute(inner) {
		return tok
	}
	return quote + ResourcesPathPlaceholder + "/build" + inner + quote
}

// isBundleAbsolute reports whether ref is a root-absolute path into the
// bundle, as opposed to a relative path, a data: URI or a protocol(-relative)
// URL.
func isBundleAbsolute(ref string) bool {
	return strings.HasPrefix(ref, "/") && !strings.HasPrefix(ref, "//")
}

// derivePropertyName turns an absolute asset path into a stable custom
// property name, e.g. /static/media/logo.f34a.png -> urlStaticMediaLogoF34aPng.
func derivePropertyName(path string) string {
	var b strings.Builder
	b.WriteString("url")

	upper := true
	for _, r := range path {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			upper = true
			continue
		}
		if upper {
			b.WriteRune(unicode.ToUpper(r))
			upper = false
		} else {
			b.WriteRune(r)
		}
	}

	return b.String()
}
