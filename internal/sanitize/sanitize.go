// Package sanitize applies one declarative sanitization policy to every
// free-text field before persistence, resolved here rather than per field.
package sanitize

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var (
	// strictPolicy removes all HTML tags and attributes. Used for names.
	strictPolicy = bluemonday.StrictPolicy()

	// ugcPolicy allows safe user-generated content with basic formatting.
	// Used for descriptions and comments.
	ugcPolicy = bluemonday.UGCPolicy()
)

// Name strips all HTML and trims surrounding whitespace. Use for event and
// signup names.
func Name(input string) string {
	return strings.TrimSpace(strictPolicy.Sanitize(input))
}

// Content sanitizes free-form text, allowing safe formatting tags and
// removing scripts, iframes, and event handlers. Use for event
// descriptions and signup comments.
func Content(input string) string {
	return ugcPolicy.Sanitize(input)
}
