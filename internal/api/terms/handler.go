package terms

import (
	"net/http"

	"soundwave-app/internal/domain/artists"

	"github.com/gin-gonic/gin"
)

// GET /terms/submit-music
func GetSubmitMusicTerms(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"title":    artists.SubmitMusicTermsTitle,
		"sections": artists.SubmitMusicTerms,
	})
}

// GET /terms/starter-agreement
// The agreement text plus its version; LAUNCH_SUPPORT submissions record this
// version at acceptance time.
func GetStarterAgreement(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"title":      artists.StarterAgreementTitle,
		"version":    artists.StarterAgreementVersion,
		"paragraphs": artists.StarterAgreementParagraphs,
	})
}
