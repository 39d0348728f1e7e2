package insights

/*
	Clamping of untrusted model output. The raw decoded JSON object stops at
	this boundary: every field is type-checked, enum-checked, and bounded
	before anything downstream sees it.
*/

// Packages the triage step may recommend.
const (
	PackageStarter = "Starter"
	PackagePro     = "Pro"
	PackageLabel   = "Label"
)

// Admin-facing triage tags. The set is fixed; anything else the model invents
// is dropped.
var allowedTriageTags = map[string]struct{}{
	"资料不全":  {},
	"链接异常":  {},
	"可直接上架": {},
	"需人工跟进": {},
}

const (
	triageDefaultTag    = "需人工跟进"
	triageDefaultReason = "建议人工复核资料完整度"
)

// Triage is the validated pre-screening result shown to the admin. It is
// ephemeral: attached to the current session only, never persisted.
type Triage struct {
	RecommendedPackage string   `json:"recommendedPackage"`
	Tags               []string `json:"tags"`
	Reason             string   `json:"reason"`
}

// ClampTriage validates a raw triage object. Out-of-range values are clamped
// or defaulted, never propagated: an unknown recommendedPackage becomes
// Starter, tags are filtered to the allowed set (max 3), an empty reason gets
// the conservative default. A supplied tags array is kept even when every
// entry filters out; the default tag applies only when tags is not an array.
func ClampTriage(raw map[string]any) Triage {
	result := Triage{
		RecommendedPackage: PackageStarter,
		Tags:               []string{triageDefaultTag},
		Reason:             triageDefaultReason,
	}

	switch stringField(raw, "recommendedPackage") {
	case PackageStarter, PackagePro, PackageLabel:
		result.RecommendedPackage = stringField(raw, "recommendedPackage")
	}

	if rawTags, ok := raw["tags"].([]any); ok {
		tags := make([]string, 0, 3)
		for _, item := range rawTags {
			tag, ok := item.(string)
			if !ok {
				continue
			}
			if _, allowed := allowedTriageTags[tag]; !allowed {
				continue
			}
			tags = append(tags, tag)
			if len(tags) == 3 {
				break
			}
		}
		result.Tags = tags
	}

	if reason := CleanSentence(stringField(raw, "reason")); reason != "" {
		result.Reason = reason
	}

	return result
}

func stringField(raw map[string]any, key string) string {
	if v, ok := raw[key].(string); ok {
		return v
	}
	return ""
}
