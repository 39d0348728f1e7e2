package submissions

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"soundwave-app/database"
	"soundwave-app/internal/domain/artists"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// POST /submissions
// Creates a PENDING artist record from the public submit form. The whole
// payload is validated before anything is written; a failing field never
// leaves a partial record behind.
func CreateSubmission(c *gin.Context) {
	var req SubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON body"})
		return
	}

	listingType, err := parseListingType(req.Type)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.HasSongReleased != "yes" && req.HasSongReleased != "no" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "has_song_released must be yes or no"})
		return
	}
	if !req.SubmitTermsAccepted {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Submit Music Terms must be accepted"})
		return
	}
	if listingType == artists.TypeLaunchSupport && !req.StarterAgreementAccepted {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Starter Support Agreement must be accepted"})
		return
	}

	if err := validateContent(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	now := time.Now().UTC()
	artist := artists.Artist{
		Type:            listingType,
		Status:          artists.StatusPending,
		Name:            strings.TrimSpace(req.Name),
		District:        req.District,
		Genres:          strings.TrimSpace(req.Genres),
		Bio:             strings.TrimSpace(req.Bio),
		ContactWhatsapp: strings.TrimSpace(req.ContactWhatsapp),
		HasSongReleased: req.HasSongReleased == "yes",
		Featured:        false,

		AISummary:     artists.CleanOptional(req.AISummary),
		TopTrackURL:   artists.CleanOptional(req.TopTrackURL),
		SpotifyURL:    artists.CleanOptional(req.SpotifyURL),
		AppleMusicURL: artists.CleanOptional(req.AppleMusicURL),
		YoutubeURL:    artists.CleanOptional(req.YoutubeURL),
		CoverImageURL: artists.CleanOptional(req.CoverImageURL),
		UploadLinks:   artists.CleanOptional(req.UploadLinks),

		SubmitTermsAcceptedAt: &now,
	}
	if listingType == artists.TypeLaunchSupport {
		version := artists.StarterAgreementVersion
		artist.StarterAgreementAcceptedAt = &now
		artist.StarterAgreementVersion = &version
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		// Slug uniqueness is computed against every existing slug inside the
		// same transaction, and backed by the unique index as a hard stop.
		var slugs []string
		if err := tx.Model(&artists.Artist{}).Pluck("slug", &slugs).Error; err != nil {
			return err
		}
		taken := make(map[string]struct{}, len(slugs))
		for _, s := range slugs {
			taken[s] = struct{}{}
		}
		artist.Slug = artists.UniqueSlug(artist.Name, taken)

		return tx.Create(&artist).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusConflict, gin.H{"error": "Slug already taken, please retry"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save submission"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"submission": artist})
}

func parseListingType(value string) (string, error) {
	switch value {
	case "normal_listing":
		return artists.TypeNormalListing, nil
	case "launch_support":
		return artists.TypeLaunchSupport, nil
	default:
		return "", errors.New("type must be normal_listing or launch_support")
	}
}

func validateContent(req *SubmissionRequest) error {
	if err := artists.ValidateProfile(req.Name, req.District, req.Genres, req.Bio, req.ContactWhatsapp, req.AISummary); err != nil {
		return err
	}
	if err := artists.ValidateUploadLink(req.UploadLinks); err != nil {
		return err
	}
	for field, value := range map[string]string{
		"topTrackUrl":   req.TopTrackURL,
		"spotifyUrl":    req.SpotifyURL,
		"appleMusicUrl": req.AppleMusicURL,
		"youtubeUrl":    req.YoutubeURL,
		"coverImageUrl": req.CoverImageURL,
	} {
		if err := artists.ValidateOptionalURL(field, value); err != nil {
			return err
		}
	}
	return nil
}
