package insights

import (
	"fmt"
	"regexp"
	"strings"
)

var multiSpace = regexp.MustCompile(`\s+`)

// CleanSentence collapses whitespace so model output and templates render as
// one tidy line.
func CleanSentence(value string) string {
	return strings.TrimSpace(multiSpace.ReplaceAllString(value, " "))
}

// SignatureFallback is the deterministic sound-signature line used when the
// AI call fails or no key is configured. Pure function of the artist's own
// fields, so public pages degrade reproducibly.
func SignatureFallback(genres, districtLabel string) string {
	return CleanSentence(fmt.Sprintf(
		"%s rooted in %s, blending Sabah mood with expressive local storytelling.",
		genres, districtLabel,
	))
}

// DailyReasonFallback is the deterministic daily-pick reason line.
func DailyReasonFallback(genres, districtLabel string) string {
	return CleanSentence(fmt.Sprintf(
		"Blends %s with %s atmosphere for immersive Sabah listening sessions.",
		strings.ToLower(genres), districtLabel,
	))
}
