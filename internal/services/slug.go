package services

import (
	"strings"
	"unicode"
)

// slugify projects a name onto a URL-safe slug: lowercase letters and
// digits, runs of anything else collapsed to single hyphens. The slug is
// computed once at insert time and never re-derived on update.
func slugify(name string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(name) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastHyphen = false
		case !lastHyphen:
			b.WriteByte('-')
			lastHyphen = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
