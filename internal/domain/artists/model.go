package artists

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Submission status values. An artist is created PENDING and moves to
// APPROVED or REJECTED exactly once; see lifecycle.go.
const (
	StatusPending  = "PENDING"
	StatusApproved = "APPROVED"
	StatusRejected = "REJECTED"
)

// Listing types.
const (
	TypeNormalListing = "NORMAL_LISTING"
	TypeLaunchSupport = "LAUNCH_SUPPORT"
)

type Artist struct {
	ID   string `gorm:"type:uuid;primaryKey" json:"id"`
	Slug string `gorm:"not null;uniqueIndex:idx_artists_slug" json:"slug"`

	Type   string `gorm:"type:varchar(20);not null;default:'NORMAL_LISTING'" json:"type"`
	Status string `gorm:"type:varchar(10);not null;default:'PENDING';index" json:"status"`

	Name     string `gorm:"not null" json:"name"`
	District string `gorm:"type:varchar(20);not null;index" json:"district"`
	Genres   string `gorm:"not null" json:"genres"`
	Bio      string `gorm:"type:text;not null" json:"bio"`

	AISummary     *string `gorm:"column:ai_summary" json:"aiSummary,omitempty"`
	TopTrackURL   *string `gorm:"column:top_track_url" json:"topTrackUrl,omitempty"`
	SpotifyURL    *string `gorm:"column:spotify_url" json:"spotifyUrl,omitempty"`
	AppleMusicURL *string `gorm:"column:apple_music_url" json:"appleMusicUrl,omitempty"`
	YoutubeURL    *string `gorm:"column:youtube_url" json:"youtubeUrl,omitempty"`
	CoverImageURL *string `gorm:"column:cover_image_url" json:"coverImageUrl,omitempty"`
	UploadLinks   *string `gorm:"column:upload_links" json:"uploadLinks,omitempty"`

	ContactWhatsapp string `gorm:"not null" json:"contactWhatsapp"`
	HasSongReleased bool   `gorm:"not null;default:false" json:"hasSongReleased"`

	Featured bool `gorm:"not null;default:false" json:"featured"`

	SubmitTermsAcceptedAt      *time.Time `json:"submitTermsAcceptedAt,omitempty"`
	StarterAgreementAcceptedAt *time.Time `json:"starterAgreementAcceptedAt,omitempty"`
	StarterAgreementVersion    *string    `json:"starterAgreementVersion,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BeforeCreate assigns the id in-process instead of relying on a database
// default, so the model behaves the same on postgres and the sqlite test DB.
func (a *Artist) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
