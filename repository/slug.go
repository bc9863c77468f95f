package repository

import "strings"

// Slugify derives a URL slug from a title or name: lower-case, with spaces
// and underscores replaced by hyphens. It is a pure function of its input;
// no collision probing is done here.
func Slugify(s string) string {
	slug := strings.ToLower(s)
	slug = strings.ReplaceAll(slug, " ", "-")
	slug = strings.ReplaceAll(slug, "_", "-")
	return slug
}
