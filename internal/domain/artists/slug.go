package artists

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	nonSlug   = regexp.MustCompile(`[^a-z0-9\s-]+`)
	spaces    = regexp.MustCompile(`\s+`)
	multiDash = regexp.MustCompile(`-+`)
)

// Slugify generates a URL-safe base slug from an artist name.
// Example: "Café Señorita!!" -> "caf-seorita"
func Slugify(name string) string {
	base := strings.ToLower(strings.TrimSpace(name))
	base = nonSlug.ReplaceAllString(base, "")
	base = spaces.ReplaceAllString(base, "-")
	base = multiDash.ReplaceAllString(base, "-")
	base = strings.Trim(base, "-")

	if len(base) > 80 {
		base = strings.Trim(base[:80], "-")
	}
	if base == "" {
		base = "artist"
	}
	return base
}

// UniqueSlug picks the first candidate not present in taken, appending -2, -3,
// and so on. The chosen slug is inserted into taken so repeated calls within
// one batch never collide.
func UniqueSlug(name string, taken map[string]struct{}) string {
	base := Slugify(name)
	candidate := base

	for index := 2; ; index++ {
		if _, exists := taken[candidate]; !exists {
			break
		}
		candidate = fmt.Sprintf("%s-%d", base, index)
	}

	taken[candidate] = struct{}{}
	return candidate
}
