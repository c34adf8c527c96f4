package refgen

import (
	"context"
	"strings"
)

// PageReader loads the HTML of a reference page.
type PageReader interface {
	// ReadPage returns the page at location.
	// Returns ENOTFOUND if there is no page there.
	ReadPage(ctx context.Context, location string) (string, error)
}

// IsURL reports whether location names an http or https page rather than a
// local file.
func IsURL(location string) bool {
	l := strings.ToLower(location)
	return strings.HasPrefix(l, "http://") || strings.HasPrefix(l, "https://")
}
