package insights

// Candidate is the slice of an approved artist the sound finder may match.
type Candidate struct {
	ID       string
	Slug     string
	Name     string
	District string
	Genres   string
}

// Recommendation is one validated sound-finder match.
type Recommendation struct {
	ID       string `json:"id"`
	Slug     string `json:"slug"`
	Name     string `json:"name"`
	District string `json:"district"`
	Genres   string `json:"genres"`
	Reason   string `json:"reason"`
}

// ClampRecommendations keeps only model picks whose id resolves to a known
// approved candidate, capped at 3. The artist fields always come from the
// candidate record, never from the model; only the reason text is model
// output, and an empty reason gets a neutral line.
func ClampRecommendations(raw map[string]any, candidates []Candidate) []Recommendation {
	byID := make(map[string]Candidate, len(candidates))
	for _, c := range candidates {
		byID[c.ID] = c
	}

	items, _ := raw["recommendations"].([]any)
	out := make([]Recommendation, 0, 3)
	for _, item := range items {
		pick, ok := item.(map[string]any)
		if !ok {
			continue
		}
		candidate, known := byID[stringField(pick, "id")]
		if !known {
			continue
		}
		reason := CleanSentence(stringField(pick, "reason"))
		if reason == "" {
			reason = "Matches the vibe you described."
		}
		out = append(out, Recommendation{
			ID:       candidate.ID,
			Slug:     candidate.Slug,
			Name:     candidate.Name,
			District: candidate.District,
			Genres:   candidate.Genres,
			Reason:   reason,
		})
		if len(out) == 3 {
			break
		}
	}
	return out
}
