package artists

import (
	"context"
	"encoding/json"
	"fmt"

	domain "soundwave-app/internal/domain/artists"
	"soundwave-app/internal/domain/insights"
	"soundwave-app/internal/infra/openai"
)

/*
	AI-backed render text for public pages. These paths must never break a
	page: failures are absorbed behind the deterministic fallback, and both
	outcomes are cached per content key so unchanged content never re-invokes
	the upstream service.
*/

func soundSignature(ctx context.Context, artist *domain.Artist) string {
	cacheKey := artist.ID + ":" + artist.Bio
	if cached, ok := insights.SignatureCache.Get(cacheKey); ok {
		return cached
	}

	districtLabel := domain.DistrictLabel(artist.District)
	fallback := insights.SignatureFallback(artist.Genres, districtLabel)

	signature := fallback
	if raw, err := openai.ChatJSON(ctx, signaturePrompt(artist, districtLabel)); err == nil {
		if s, ok := raw["signature"].(string); ok {
			if s = insights.CleanSentence(s); s != "" {
				signature = s
			}
		}
	}

	insights.SignatureCache.Set(cacheKey, signature)
	return signature
}

func dailyReason(ctx context.Context, dateKey string, artist *domain.Artist) string {
	if cached, ok := insights.DailyReasonCache.Get(dateKey); ok {
		return cached
	}

	districtLabel := domain.DistrictLabel(artist.District)
	fallback := insights.DailyReasonFallback(artist.Genres, districtLabel)

	reason := fallback
	if raw, err := openai.ChatJSON(ctx, dailyReasonPrompt(artist, districtLabel)); err == nil {
		if s, ok := raw["reason"].(string); ok {
			if s = insights.CleanSentence(s); s != "" {
				reason = s
			}
		}
	}

	insights.DailyReasonCache.Set(dateKey, reason)
	return reason
}

func signaturePrompt(artist *domain.Artist, districtLabel string) string {
	input, _ := json.Marshal(map[string]string{
		"name":     artist.Name,
		"district": districtLabel,
		"genres":   artist.Genres,
		"bio":      artist.Bio,
	})
	return fmt.Sprintf(
		"Write one short \"AI Sound Signature\" sentence for a Sabah artist profile.\n"+
			"Return JSON: {\"signature\":\"...\"}.\n"+
			"Rules: 10-18 words, no emojis, no hashtags, specific vibe language.\n"+
			"Input: %s", input)
}

func dailyReasonPrompt(artist *domain.Artist, districtLabel string) string {
	input, _ := json.Marshal(map[string]string{
		"name":     artist.Name,
		"district": districtLabel,
		"genres":   artist.Genres,
		"bio":      artist.Bio,
	})
	return fmt.Sprintf(
		"Write one reason sentence for \"Daily AI Pick\" on Sabah Soundwave.\n"+
			"Return JSON: {\"reason\":\"...\"}.\n"+
			"Rules: 12-20 words, concise, no emojis, no markdown.\n"+
			"Input: %s", input)
}
