package aiassist

import (
	"encoding/json"
	"fmt"

	"soundwave-app/internal/domain/artists"
	"soundwave-app/internal/domain/insights"
)

func bioDraftPrompt(p *BioDraftPayload) string {
	input, _ := json.Marshal(map[string]string{
		"name":              p.Name,
		"district":          artists.DistrictLabel(p.District),
		"genres":            p.Genres,
		"type":              p.Type,
		"has_song_released": p.HasSongReleased,
		"existing_bio_hint": p.ExistingBio,
	})
	return fmt.Sprintf(
		"Write a short artist bio for a Sabah-only music platform.\n"+
			"Return JSON: {\"bio\":\"...\"}.\n"+
			"Rules: 55-90 words, clear and natural tone, mention Sabah and district, include genre feel, avoid fake achievements, no hashtags, no emojis.\n"+
			"Input: %s", input)
}

func triagePrompt(p *TriagePayload) string {
	input, _ := json.Marshal(map[string]any{
		"name":            p.Name,
		"district":        artists.DistrictLabel(p.District),
		"genres":          p.Genres,
		"bio":             p.Bio,
		"type":            p.Type,
		"hasSongReleased": p.HasSongReleased,
		"uploadLinks":     p.UploadLinks,
		"spotifyUrl":      p.SpotifyURL,
		"appleMusicUrl":   p.AppleMusicURL,
		"youtubeUrl":      p.YoutubeURL,
	})
	return fmt.Sprintf(
		"You are helping admin pre-screen a Sabah music submission.\n"+
			"Return strict JSON with this exact shape:\n"+
			"{\"recommendedPackage\":\"Starter|Pro|Label\",\"tags\":[\"资料不全|链接异常|可直接上架|需人工跟进\"],\"reason\":\"one short sentence\"}.\n"+
			"Rules:\n- Choose one recommendedPackage only.\n- tags should be 1 to 3 items from the allowed set.\n- reason max 25 words.\n- Be conservative; do not auto-approve.\n"+
			"Submission: %s", input)
}

func soundFinderPrompt(query string, candidates []insights.Candidate) string {
	roster := make([]map[string]string, 0, len(candidates))
	for _, c := range candidates {
		roster = append(roster, map[string]string{
			"id":       c.ID,
			"name":     c.Name,
			"district": artists.DistrictLabel(c.District),
			"genres":   c.Genres,
		})
	}
	rosterJSON, _ := json.Marshal(roster)
	return fmt.Sprintf(
		"Recommend Sabah artists matching a listener's described vibe.\n"+
			"Return JSON: {\"recommendations\":[{\"id\":\"...\",\"reason\":\"one short sentence\"}]}.\n"+
			"Rules: pick 1 to 3 artists from the candidate list only, use their exact ids, reason max 20 words.\n"+
			"Vibe: %q\nCandidates: %s", query, rosterJSON)
}

func readinessPrompt(input string) string {
	return fmt.Sprintf(
		"Assess launch readiness for a Sabah artist planning a release.\n"+
			"Return JSON: {\"score\":0-100,\"strengths\":[\"...\"],\"improvements\":[\"...\"],\"roadmap\":[\"...\"]}.\n"+
			"Rules: max 3 strengths, max 3 improvements, exactly 4 roadmap steps, each item one short sentence, be practical and conservative.\n"+
			"Plan: %q", input)
}
