package insights

// Readiness is the validated launch-readiness check result.
type Readiness struct {
	Score        int      `json:"score"`
	Strengths    []string `json:"strengths"`
	Improvements []string `json:"improvements"`
	Roadmap      []string `json:"roadmap"`
}

const roadmapFiller = "Set simple KPIs and track weekly results."

// ClampReadiness bounds a raw readiness object: score to 0-100, list fields
// to trimmed non-empty strings (max 3), and the roadmap to exactly 4 steps,
// padded with a generic step when the model returns fewer.
func ClampReadiness(raw map[string]any) Readiness {
	result := Readiness{
		Score:        clampScore(raw["score"]),
		Strengths:    stringList(raw["strengths"], 3),
		Improvements: stringList(raw["improvements"], 3),
		Roadmap:      stringList(raw["roadmap"], 4),
	}

	for len(result.Roadmap) < 4 {
		result.Roadmap = append(result.Roadmap, roadmapFiller)
	}
	return result
}

func clampScore(v any) int {
	score, ok := v.(float64) // encoding/json decodes numbers as float64
	if !ok {
		return 0
	}
	switch {
	case score < 0:
		return 0
	case score > 100:
		return 100
	default:
		return int(score)
	}
}

func stringList(v any, max int) []string {
	items, ok := v.([]any)
	if !ok {
		return []string{}
	}
	out := make([]string, 0, max)
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			continue
		}
		if s = CleanSentence(s); s == "" {
			continue
		}
		out = append(out, s)
		if len(out) == max {
			break
		}
	}
	return out
}
