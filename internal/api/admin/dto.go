package admin

type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}

type ModerationRequest struct {
	Action string `json:"action" binding:"required"` // "approve" | "reject"
}

type FeatureRequest struct {
	Featured *bool `json:"featured" binding:"required"`
}

// ArtistUpdateRequest is the full replacement field set for an admin edit
// (camelCase, matching the stored model rather than the public submit form).
type ArtistUpdateRequest struct {
	Type            string `json:"type"` // "NORMAL_LISTING" | "LAUNCH_SUPPORT"
	HasSongReleased bool   `json:"hasSongReleased"`
	UploadLinks     string `json:"uploadLinks"`
	ContactWhatsapp string `json:"contactWhatsapp"`
	Name            string `json:"name"`
	District        string `json:"district"`
	Genres          string `json:"genres"`
	Bio             string `json:"bio"`
	AISummary       string `json:"aiSummary"`
	TopTrackURL     string `json:"topTrackUrl"`
	SpotifyURL      string `json:"spotifyUrl"`
	AppleMusicURL   string `json:"appleMusicUrl"`
	YoutubeURL      string `json:"youtubeUrl"`
	CoverImageURL   string `json:"coverImageUrl"`
	Featured        *bool  `json:"featured"`
}

// StatusCount is one cell of the type-by-status dashboard grouping.
type StatusCount struct {
	Type   string `json:"type"`
	Status string `json:"status"`
	Count  int64  `json:"count"`
}
