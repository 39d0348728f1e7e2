package admin

import (
	"crypto/subtle"
	"errors"
	"net/http"
	"time"

	"soundwave-app/config"
	"soundwave-app/database"
	"soundwave-app/internal/domain/artists"
	"soundwave-app/internal/domain/dropevents"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// POST /admin/login
// Single shared admin secret. Prefers a bcrypt hash when configured; falls
// back to a constant-time comparison against the plain value.
func Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Password is required"})
		return
	}

	if !passwordMatches(req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid password"})
		return
	}

	claims := jwt.MapClaims{
		"role": "admin",
		"exp":  time.Now().Add(8 * time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(config.JWT_SECRET))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to sign token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

func passwordMatches(password string) bool {
	if config.ADMIN_PASSWORD_HASH != "" {
		return bcrypt.CompareHashAndPassword([]byte(config.ADMIN_PASSWORD_HASH), []byte(password)) == nil
	}
	if config.ADMIN_PASSWORD == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(password), []byte(config.ADMIN_PASSWORD)) == 1
}

// GET /admin/dashboard
// Moderation overview: every submission grouped for triage, the full artist
// roster, scheduled drop events, and type-by-status counts.
func Dashboard(c *gin.Context) {
	submissionsList, err := loadSubmissionQueue()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load submissions"})
		return
	}

	artistList, err := loadArtistRoster()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load artists"})
		return
	}

	var events []dropevents.DropEvent
	err = database.DB.
		Preload("Artists", func(db *gorm.DB) *gorm.DB {
			return db.Where("status = ?", artists.StatusApproved).Order("name ASC")
		}).
		Order("date ASC").
		Find(&events).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load drop events"})
		return
	}

	var counts []StatusCount
	err = database.DB.Model(&artists.Artist{}).
		Select("type, status, COUNT(id) as count").
		Group("type, status").
		Scan(&counts).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load counts"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"submissions": submissionsList,
		"artists":     artistList,
		"dropEvents":  events,
		"counts":      counts,
	})
}

func loadSubmissionQueue() ([]artists.Artist, error) {
	var list []artists.Artist
	err := database.DB.Order("type ASC, status ASC, created_at DESC").Find(&list).Error
	return list, err
}

func loadArtistRoster() ([]artists.Artist, error) {
	var list []artists.Artist
	err := database.DB.Order("status ASC, featured DESC, updated_at DESC").Find(&list).Error
	return list, err
}

// PATCH /admin/submissions/:id
// Approve or reject a pending submission. One-shot: re-running the action on
// a decided record is a 409, not a silent no-op. The response carries the
// refreshed queue and roster projections so the admin view updates in place.
func ModerateSubmission(c *gin.Context) {
	id := c.Param("id")

	var req ModerationRequest
	if err := c.ShouldBindJSON(&req); err != nil || (req.Action != "approve" && req.Action != "reject") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid action"})
		return
	}

	var artist artists.Artist
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&artist, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return artists.ErrNotFound
			}
			return err
		}

		if req.Action == "approve" {
			if err := artists.Approve(&artist); err != nil {
				return err
			}
		} else {
			if err := artists.Reject(&artist); err != nil {
				return err
			}
		}

		// Status and featured land in the same UPDATE; an approved-but-
		// stale-featured intermediate state is never observable.
		return tx.Model(&artists.Artist{}).
			Where("id = ?", artist.ID).
			Updates(map[string]any{"status": artist.Status, "featured": artist.Featured}).Error
	})
	if err != nil {
		respondArtistError(c, err)
		return
	}

	submissionsList, err := loadSubmissionQueue()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load submissions"})
		return
	}
	artistList, err := loadArtistRoster()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load artists"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"artist":      artist,
		"submissions": submissionsList,
		"artists":     artistList,
	})
}

// PATCH /admin/artists/:id
// Full-field admin correction, allowed in any status. A name change
// recomputes the slug against every other record's slug.
func UpdateArtist(c *gin.Context) {
	id := c.Param("id")

	var req ArtistUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON body"})
		return
	}
	if req.Type != artists.TypeNormalListing && req.Type != artists.TypeLaunchSupport {
		c.JSON(http.StatusBadRequest, gin.H{"error": "type must be NORMAL_LISTING or LAUNCH_SUPPORT"})
		return
	}
	if err := validateUpdate(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var artist artists.Artist
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&artist, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return artists.ErrNotFound
			}
			return err
		}

		if req.Name != artist.Name {
			var slugs []string
			if err := tx.Model(&artists.Artist{}).Where("id <> ?", id).Pluck("slug", &slugs).Error; err != nil {
				return err
			}
			taken := make(map[string]struct{}, len(slugs))
			for _, s := range slugs {
				taken[s] = struct{}{}
			}
			artist.Slug = artists.UniqueSlug(req.Name, taken)
		}

		if err := artists.ApplyEdit(&artist, artists.EditInput{
			Type:            req.Type,
			Name:            req.Name,
			District:        req.District,
			Genres:          req.Genres,
			Bio:             req.Bio,
			ContactWhatsapp: req.ContactWhatsapp,
			HasSongReleased: req.HasSongReleased,
			AISummary:       artists.CleanOptional(req.AISummary),
			TopTrackURL:     artists.CleanOptional(req.TopTrackURL),
			SpotifyURL:      artists.CleanOptional(req.SpotifyURL),
			AppleMusicURL:   artists.CleanOptional(req.AppleMusicURL),
			YoutubeURL:      artists.CleanOptional(req.YoutubeURL),
			CoverImageURL:   artists.CleanOptional(req.CoverImageURL),
			UploadLinks:     artists.CleanOptional(req.UploadLinks),
			Featured:        req.Featured,
		}); err != nil {
			return err
		}

		return tx.Save(&artist).Error
	})
	if err != nil {
		respondArtistError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"artist": artist})
}

// PATCH /admin/artists/:id/feature
func FeatureArtist(c *gin.Context) {
	id := c.Param("id")

	var req FeatureRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Featured == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid feature flag"})
		return
	}

	var artist artists.Artist
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&artist, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return artists.ErrNotFound
			}
			return err
		}
		if err := artists.SetFeatured(&artist, *req.Featured); err != nil {
			return err
		}
		return tx.Model(&artists.Artist{}).
			Where("id = ?", artist.ID).
			Update("featured", artist.Featured).Error
	})
	if err != nil {
		respondArtistError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"artist": artist})
}

func validateUpdate(req *ArtistUpdateRequest) error {
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

func respondArtistError(c *gin.Context, err error) {
	var validation *artists.ValidationError
	switch {
	case errors.Is(err, artists.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Artist not found"})
	case errors.Is(err, artists.ErrInvalidTransition):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, artists.ErrInvalidState):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.As(err, &validation):
		c.JSON(http.StatusBadRequest, gin.H{"error": validation.Message})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Operation failed"})
	}
}
