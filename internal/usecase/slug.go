package usecase

import (
	"regexp"
	"strings"
)

var (
	slugStrip    = regexp.MustCompile(`[^a-z0-9\s_-]`)
	slugCollapse = regexp.MustCompile(`[\s_-]+`)
)

// GenerateSlug derives a URL-safe slug from a product name: lowercase, strip
// everything outside letters/digits/whitespace/hyphen, collapse runs of
// whitespace, underscores and hyphens into a single hyphen, trim hyphens.
//
// The admin UI calls this only while typing the name of a NEW product;
// editing an existing product never rewrites its slug from the name.
func GenerateSlug(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = slugStrip.ReplaceAllString(s, "")
	s = slugCollapse.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
