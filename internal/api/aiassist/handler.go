package aiassist

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"soundwave-app/database"
	"soundwave-app/internal/app/http/middleware"
	"soundwave-app/internal/domain/artists"
	"soundwave-app/internal/domain/insights"
	"soundwave-app/internal/infra/openai"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// POST /ai/assist
// Explicit AI actions. Unlike the passive render paths (sound signature,
// daily pick), these surface upstream failures to the caller instead of
// fabricating a result.
func Assist(c *gin.Context) {
	var req AssistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON body"})
		return
	}

	switch req.Action {
	case "bio_draft":
		bioDraft(c, req.Payload)
	case "submission_triage":
		// Triage exposes moderation context; admin only.
		if !middleware.IsAdminRequest(c) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		submissionTriage(c, req.Payload)
	case "sound_finder":
		soundFinder(c, req.Payload)
	case "launch_readiness":
		launchReadiness(c, req.Payload)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown action"})
	}
}

func bioDraft(c *gin.Context, raw json.RawMessage) {
	var payload BioDraftPayload
	if err := bindPayload(raw, &payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid bio_draft payload"})
		return
	}
	if payload.Type != "normal_listing" && payload.Type != "launch_support" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid listing type"})
		return
	}
	if payload.HasSongReleased != "yes" && payload.HasSongReleased != "no" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "has_song_released must be yes or no"})
		return
	}

	result, err := openai.ChatJSON(c.Request.Context(), bioDraftPrompt(&payload))
	if err != nil {
		respondAIError(c, err)
		return
	}

	bio, _ := result["bio"].(string)
	if bio = strings.TrimSpace(bio); bio == "" {
		c.JSON(http.StatusBadGateway, gin.H{"error": "AI did not return a valid bio"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"bio": bio})
}

func submissionTriage(c *gin.Context, raw json.RawMessage) {
	var payload TriagePayload
	if err := bindPayload(raw, &payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid submission_triage payload"})
		return
	}
	if payload.Type != artists.TypeNormalListing && payload.Type != artists.TypeLaunchSupport {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid listing type"})
		return
	}

	result, err := openai.ChatJSON(c.Request.Context(), triagePrompt(&payload))
	if err != nil {
		respondAIError(c, err)
		return
	}

	c.JSON(http.StatusOK, insights.ClampTriage(result))
}

func soundFinder(c *gin.Context, raw json.RawMessage) {
	var payload SoundFinderPayload
	if err := bindPayload(raw, &payload); err != nil || len(strings.TrimSpace(payload.Query)) < 4 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please describe your vibe in a bit more detail"})
		return
	}

	var approved []artists.Artist
	err := database.DB.Model(&artists.Artist{}).
		Where("status = ?", artists.StatusApproved).
		Order("name ASC").
		Find(&approved).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load artists"})
		return
	}

	candidates := make([]insights.Candidate, 0, len(approved))
	for _, a := range approved {
		candidates = append(candidates, insights.Candidate{
			ID:       a.ID,
			Slug:     a.Slug,
			Name:     a.Name,
			District: a.District,
			Genres:   a.Genres,
		})
	}
	if len(candidates) == 0 {
		c.JSON(http.StatusOK, gin.H{"recommendations": []insights.Recommendation{}})
		return
	}

	result, err := openai.ChatJSON(c.Request.Context(), soundFinderPrompt(payload.Query, candidates))
	if err != nil {
		respondAIError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"recommendations": insights.ClampRecommendations(result, candidates)})
}

func launchReadiness(c *gin.Context, raw json.RawMessage) {
	var payload ReadinessPayload
	if err := bindPayload(raw, &payload); err != nil || len(strings.TrimSpace(payload.Input)) < 20 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please provide a bit more detail for the check"})
		return
	}

	result, err := openai.ChatJSON(c.Request.Context(), readinessPrompt(payload.Input))
	if err != nil {
		respondAIError(c, err)
		return
	}

	c.JSON(http.StatusOK, insights.ClampReadiness(result))
}

func bindPayload(raw json.RawMessage, out any) error {
	if err := json.Unmarshal(raw, out); err != nil {
		return err
	}
	return binding.Validator.ValidateStruct(out)
}

func respondAIError(c *gin.Context, err error) {
	if errors.Is(err, openai.ErrUnavailable) {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "AI request failed"})
}
