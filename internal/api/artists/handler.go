package artists

import (
	"errors"
	"hash/fnv"
	"net/http"
	"strings"
	"time"

	"soundwave-app/database"
	domain "soundwave-app/internal/domain/artists"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GET /artists
// Public listing: approved artists only, with optional district/genre/text
// filters and a fixed set of sort orders.
func ListArtists(c *gin.Context) {
	district := domain.ParseDistrict(c.Query("district"))
	genre := strings.TrimSpace(c.Query("genre"))
	q := strings.TrimSpace(c.Query("q"))

	var result []domain.Artist
	err := filteredQuery(database.DB, district, genre, q).
		Order(orderFor(c.Query("sort"))).
		Find(&result).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load artists"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"artists": result})
}

// GET /artists/:slug
// Public profile. Hidden unless APPROVED. The AI sound signature rides along
// and falls back to template text when the AI service is down.
func GetArtistBySlug(c *gin.Context) {
	slug := c.Param("slug")

	var artist domain.Artist
	err := approvedQuery(database.DB).Where("slug = ?", slug).First(&artist).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Artist not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load artist"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"artist":         artist,
		"soundSignature": soundSignature(c.Request.Context(), &artist),
	})
}

// GET /artists/daily-pick
// Deterministic pick from the approved set: same date key, same artist. The
// pick rotates once per calendar day without any stored state.
func DailyPick(c *gin.Context) {
	var approved []domain.Artist
	err := approvedQuery(database.DB).
		Order("created_at ASC, id ASC").
		Find(&approved).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load artists"})
		return
	}
	if len(approved) == 0 {
		c.JSON(http.StatusOK, gin.H{"pick": nil})
		return
	}

	dateKey := time.Now().UTC().Format("2006-01-02")
	pick := approved[dateIndex(dateKey, len(approved))]

	c.JSON(http.StatusOK, gin.H{
		"dateKey": dateKey,
		"pick":    pick,
		"reason":  dailyReason(c.Request.Context(), dateKey, &pick),
	})
}

func dateIndex(dateKey string, n int) int {
	h := fnv.New32a()
	h.Write([]byte(dateKey))
	return int(h.Sum32() % uint32(n))
}
