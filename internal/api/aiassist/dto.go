package aiassist

import "encoding/json"

// AssistRequest is the action envelope; the payload shape depends on action.
type AssistRequest struct {
	Action  string          `json:"action" binding:"required"`
	Payload json.RawMessage `json:"payload" binding:"required"`
}

type BioDraftPayload struct {
	Name            string `json:"name" binding:"required"`
	District        string `json:"district" binding:"required"`
	Genres          string `json:"genres" binding:"required"`
	Type            string `json:"type" binding:"required"`              // "normal_listing" | "launch_support"
	HasSongReleased string `json:"has_song_released" binding:"required"` // "yes" | "no"
	ExistingBio     string `json:"existingBio"`
}

type TriagePayload struct {
	ID              string  `json:"id" binding:"required"`
	Name            string  `json:"name" binding:"required"`
	District        string  `json:"district" binding:"required"`
	Genres          string  `json:"genres" binding:"required"`
	Bio             string  `json:"bio" binding:"required"`
	Type            string  `json:"type" binding:"required"` // "NORMAL_LISTING" | "LAUNCH_SUPPORT"
	HasSongReleased bool    `json:"hasSongReleased"`
	UploadLinks     *string `json:"uploadLinks"`
	SpotifyURL      *string `json:"spotifyUrl"`
	AppleMusicURL   *string `json:"appleMusicUrl"`
	YoutubeURL      *string `json:"youtubeUrl"`
}

type SoundFinderPayload struct {
	Query string `json:"query" binding:"required"`
}

type ReadinessPayload struct {
	Input string `json:"input" binding:"required"`
}
