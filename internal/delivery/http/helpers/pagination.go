package helpers

import (
	"net/http"
	"strings"

	"eventsignup/internal/domain"
)

// ParsePage reads the page query parameter and coerces it to a valid page
// number (invalid input becomes 1).
func ParsePage(r *http.Request) int {
	return domain.NormalizePage(r.URL.Query().Get("page"))
}

// ParseSearch reads the optional search query parameter. A blank term is
// treated the same as no term at all.
func ParseSearch(r *http.Request) string {
	return strings.TrimSpace(r.URL.Query().Get("search"))
}
