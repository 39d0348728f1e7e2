package dropevents

import (
	"errors"
	"net/http"
	"time"

	"soundwave-app/database"
	"soundwave-app/internal/domain/artists"
	domain "soundwave-app/internal/domain/dropevents"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// POST /admin/drop-events
// The roster is validated wholesale: every requested id must resolve to an
// APPROVED artist or nothing is written.
func CreateDropEvent(c *gin.Context) {
	req, date, ok := bindRequest(c)
	if !ok {
		return
	}

	var event domain.DropEvent
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		roster, err := resolveRoster(tx, req.ArtistIDs)
		if err != nil {
			return err
		}

		event = domain.DropEvent{
			Title:       req.Title,
			Date:        date,
			Description: req.Description,
			Artists:     roster,
		}
		return tx.Create(&event).Error
	})
	if err != nil {
		respondEventError(c, err)
		return
	}

	if err := loadRoster(&event); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load drop event"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"event": event})
}

// PATCH /admin/drop-events/:id
func UpdateDropEvent(c *gin.Context) {
	id := c.Param("id")

	req, date, ok := bindRequest(c)
	if !ok {
		return
	}

	var event domain.DropEvent
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&event, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNotFound
			}
			return err
		}

		roster, err := resolveRoster(tx, req.ArtistIDs)
		if err != nil {
			return err
		}

		event.Title = req.Title
		event.Date = date
		event.Description = req.Description
		if err := tx.Save(&event).Error; err != nil {
			return err
		}

		// Full roster replacement ("set" semantics), not a merge.
		return tx.Model(&event).Association("Artists").Replace(roster)
	})
	if err != nil {
		respondEventError(c, err)
		return
	}

	if err := loadRoster(&event); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load drop event"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"event": event})
}

// DELETE /admin/drop-events/:id
// Removes the event and its roster associations only; artist records are
// never cascade-deleted.
func DeleteDropEvent(c *gin.Context) {
	id := c.Param("id")

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var event domain.DropEvent
		if err := tx.First(&event, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNotFound
			}
			return err
		}
		return tx.Select("Artists").Delete(&event).Error
	})
	if err != nil {
		respondEventError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// GET /drop-events/next
// Public: the next upcoming Drop Day with its approved lineup.
func NextDropEvent(c *gin.Context) {
	var event domain.DropEvent
	err := database.DB.
		Where("date >= ?", time.Now()).
		Order("date ASC").
		Preload("Artists", func(db *gorm.DB) *gorm.DB {
			return db.Where("status = ?", artists.StatusApproved).Order("name ASC")
		}).
		First(&event).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusOK, gin.H{"event": nil})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load drop events"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"event": event})
}

func bindRequest(c *gin.Context) (DropEventRequest, time.Time, bool) {
	var req DropEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payload"})
		return req, time.Time{}, false
	}
	if err := domain.Validate(req.Title, req.Description); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return req, time.Time{}, false
	}
	date, err := time.Parse(time.RFC3339, req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be an ISO 8601 timestamp"})
		return req, time.Time{}, false
	}
	return req, date, true
}

// resolveRoster restricts the requested ids to APPROVED artists. A count
// mismatch means at least one id is missing or not approved, which rejects
// the whole write.
func resolveRoster(tx *gorm.DB, artistIDs []string) ([]artists.Artist, error) {
	var roster []artists.Artist
	err := tx.
		Where("id IN ?", artistIDs).
		Where("status = ?", artists.StatusApproved).
		Find(&roster).Error
	if err != nil {
		return nil, err
	}
	if len(roster) != len(artistIDs) {
		return nil, domain.ErrInvalidRoster
	}
	return roster, nil
}

// loadRoster reloads the event's roster alphabetically for the response.
func loadRoster(event *domain.DropEvent) error {
	event.Artists = nil
	return database.DB.
		Preload("Artists", func(db *gorm.DB) *gorm.DB {
			return db.Order("name ASC")
		}).
		First(event, "id = ?", event.ID).Error
}

func respondEventError(c *gin.Context, err error) {
	var validation *domain.ValidationError
	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Drop Day not found"})
	case errors.Is(err, domain.ErrInvalidRoster):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.As(err, &validation):
		c.JSON(http.StatusBadRequest, gin.H{"error": validation.Message})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Operation failed"})
	}
}
