// Package share builds stable post slugs and shareable deep links. Slugs
// double as the gallery engine's grid keys, so they must be deterministic
// for a given title.
package share

import (
	"strings"
	"unicode"

	"github.com/atotto/clipboard"
)

// Slugify turns a post title into a URL-safe token: lowercase ASCII
// letters, digits, and single hyphens. Deterministic, so the same title
// always keys the same measurement state.
func Slugify(title string) string {
	var b strings.Builder
	lastHyphen := true // suppress a leading hyphen
	for _, r := range strings.ToLower(title) {
		switch {
		case unicode.IsLetter(r) && r < 128, unicode.IsDigit(r) && r < 128:
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// Link builds the shareable deep link for a slug against the configured
// base URL.
func Link(baseURL, slug string) string {
	return strings.TrimSuffix(baseURL, "/") + "/#" + slug
}

// Copy places a share link on the system clipboard. The caller decides how
// to surface a failure; headless environments without a clipboard are
// expected and not fatal.
func Copy(link string) error {
	return clipboard.WriteAll(link)
}
