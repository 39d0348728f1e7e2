package routes

import (
	adminapi "soundwave-app/internal/api/admin"
	"soundwave-app/internal/api/aiassist"
	artistsapi "soundwave-app/internal/api/artists"
	dropeventsapi "soundwave-app/internal/api/dropevents"
	"soundwave-app/internal/api/submissions"
	termsapi "soundwave-app/internal/api/terms"
	"soundwave-app/internal/app/http/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.GET("/artists", artistsapi.ListArtists)
	r.GET("/artists/daily-pick", artistsapi.DailyPick)
	r.GET("/artists/:slug", artistsapi.GetArtistBySlug)
	r.GET("/drop-events/next", dropeventsapi.NextDropEvent)
	r.GET("/terms/submit-music", termsapi.GetSubmitMusicTerms)
	r.GET("/terms/starter-agreement", termsapi.GetStarterAgreement)

	// Public writes get input sanitization; submitted text is rendered on
	// public pages later.
	public := r.Group("/")
	public.Use(middleware.SanitizeAndCleanInputMiddleware())
	public.POST("/submissions", submissions.CreateSubmission)
	public.POST("/admin/login", adminapi.Login)

	// Mixed endpoint: bio_draft/sound_finder/launch_readiness are public,
	// submission_triage checks the admin token inside the handler.
	r.POST("/ai/assist", aiassist.Assist)

	// Admin routes
	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRole("admin"))
	admin.GET("/dashboard", adminapi.Dashboard)
	admin.PATCH("/submissions/:id", adminapi.ModerateSubmission)
	admin.PATCH("/artists/:id", adminapi.UpdateArtist)
	admin.PATCH("/artists/:id/feature", adminapi.FeatureArtist)
	admin.POST("/drop-events", dropeventsapi.CreateDropEvent)
	admin.PATCH("/drop-events/:id", dropeventsapi.UpdateDropEvent)
	admin.DELETE("/drop-events/:id", dropeventsapi.DeleteDropEvent)
}
