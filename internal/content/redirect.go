package content

import (
	"regexp"
	"strings"
)

const (
	// RedirectMarker prefixes script pages that only load another page.
	RedirectMarker = "/* #REDIRECT */"
	// RedirectLoader is the function the redirect calls with the target URL.
	RedirectLoader = "mw.loader.load"
)

var redirectCallRegex = regexp.MustCompile(`^` + regexp.QuoteMeta(RedirectMarker+RedirectLoader+"(") + `("(?:[^"\\]|\\.)*")\);$`)

// HasRedirectMarker reports whether text starts with the redirect marker.
func HasRedirectMarker(text string) bool {
	return strings.HasPrefix(text, RedirectMarker)
}

// RedirectURL returns the URL loaded by a script redirect, or false when the
// text is not exactly a marker followed by a single loader call.
func RedirectURL(text string) (string, bool) {
	matches := redirectCallRegex.FindStringSubmatch(text)
	if len(matches) < 2 {
		return "", false
	}

	url, err := DecodeJsString(matches[1])
	if err != nil {
		return "", false
	}
	return url, true
}
