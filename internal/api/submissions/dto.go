package submissions

// SubmissionRequest mirrors the public submit form (snake_case, string
// enums for the radio inputs).
type SubmissionRequest struct {
	Type            string `json:"type"`              // "normal_listing" | "launch_support"
	HasSongReleased string `json:"has_song_released"` // "yes" | "no"
	UploadLinks     string `json:"upload_links"`
	ContactWhatsapp string `json:"contact_whatsapp"`
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

	SubmitTermsAccepted      bool `json:"submitTermsAccepted"`
	StarterAgreementAccepted bool `json:"starterAgreementAccepted"`
}
