package insights

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampTriageDefaults(t *testing.T) {
	result := ClampTriage(map[string]any{})
	assert.Equal(t, PackageStarter, result.RecommendedPackage)
	assert.Equal(t, []string{"需人工跟进"}, result.Tags)
	assert.Equal(t, "建议人工复核资料完整度", result.Reason)
}

func TestClampTriageUnknownPackage(t *testing.T) {
	result := ClampTriage(map[string]any{"recommendedPackage": "Platinum"})
	assert.Equal(t, PackageStarter, result.RecommendedPackage)

	result = ClampTriage(map[string]any{"recommendedPackage": "Label"})
	assert.Equal(t, PackageLabel, result.RecommendedPackage)
}

func TestClampTriageTags(t *testing.T) {
	result := ClampTriage(map[string]any{
		"tags": []any{"可直接上架", "made-up-tag", 42, "链接异常", "资料不全", "需人工跟进"},
	})
	// unknown and non-string entries dropped, capped at 3
	assert.Equal(t, []string{"可直接上架", "链接异常", "资料不全"}, result.Tags)
}

func TestClampTriageKeepsEmptyFilteredTags(t *testing.T) {
	// a supplied array whose entries all filter out stays empty; the default
	// tag is only for a missing or non-array tags field
	result := ClampTriage(map[string]any{"tags": []any{"made-up", 42}})
	assert.Empty(t, result.Tags)

	result = ClampTriage(map[string]any{"tags": "可直接上架"})
	assert.Equal(t, []string{triageDefaultTag}, result.Tags)
}

func TestClampTriageReason(t *testing.T) {
	result := ClampTriage(map[string]any{"reason": "  links   look fine  "})
	assert.Equal(t, "links look fine", result.Reason)
}

func TestClampReadiness(t *testing.T) {
	result := ClampReadiness(map[string]any{
		"score":        float64(140),
		"strengths":    []any{"clear genre", "", "active socials", "extra", "more"},
		"improvements": []any{"no release plan"},
		"roadmap":      []any{"finish the single", "book a photoshoot"},
	})

	assert.Equal(t, 100, result.Score)
	assert.Equal(t, []string{"clear genre", "active socials", "extra"}, result.Strengths)
	assert.Equal(t, []string{"no release plan"}, result.Improvements)
	assert.Len(t, result.Roadmap, 4, "roadmap is padded to exactly 4 steps")
	assert.Equal(t, "finish the single", result.Roadmap[0])
	assert.Equal(t, roadmapFiller, result.Roadmap[3])
}

func TestClampReadinessGarbage(t *testing.T) {
	result := ClampReadiness(map[string]any{"score": "high", "roadmap": "soon"})
	assert.Equal(t, 0, result.Score)
	assert.Len(t, result.Roadmap, 4)
}

func TestClampRecommendationsFiltersUnknownIDs(t *testing.T) {
	candidates := []Candidate{
		{ID: "a1", Slug: "tawau-tide", Name: "Tawau Tide", District: "TAWAU", Genres: "Pop, R&B"},
	}

	result := ClampRecommendations(map[string]any{
		"recommendations": []any{
			map[string]any{"id": "a1", "reason": "smooth night-drive hooks"},
			map[string]any{"id": "ghost", "reason": "does not exist"},
			"not an object",
		},
	}, candidates)

	if assert.Len(t, result, 1) {
		assert.Equal(t, "Tawau Tide", result[0].Name)
		assert.Equal(t, "smooth night-drive hooks", result[0].Reason)
	}
}

func TestFallbacksAreDeterministic(t *testing.T) {
	first := SignatureFallback("Pop, R&B", "Tawau")
	second := SignatureFallback("Pop, R&B", "Tawau")
	assert.Equal(t, first, second)
	assert.Contains(t, first, "Tawau")

	reason := DailyReasonFallback("Pop, R&B", "Tawau")
	assert.Equal(t, "Blends pop, r&b with Tawau atmosphere for immersive Sabah listening sessions.", reason)
}

func TestCacheRoundTrip(t *testing.T) {
	cache := &Cache{}
	_, ok := cache.Get("k")
	assert.False(t, ok)

	cache.Set("k", "v")
	v, ok := cache.Get("k")
	assert.True(t, ok)
	assert.Equal(t, "v", v)
}
