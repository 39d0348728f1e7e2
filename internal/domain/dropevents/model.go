package dropevents

import (
	"errors"
	"strings"
	"time"

	"soundwave-app/internal/domain/artists"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrNotFound = errors.New("drop event not found")

	// ErrInvalidRoster: a requested artist id is missing or not APPROVED.
	// The whole write is rejected; no partial roster is ever saved.
	ErrInvalidRoster = errors.New("only approved artists can be assigned to a Drop Day")
)

type DropEvent struct {
	ID          string    `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Date        time.Time `gorm:"not null;index" json:"date"`
	Description string    `gorm:"type:text;not null" json:"description"`

	Artists []artists.Artist `gorm:"many2many:drop_event_artists;" json:"artists"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (e *DropEvent) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}

// ValidationError mirrors the artists package: caller-fixable payload issues.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Validate checks the event's own fields. Roster validation happens against
// the database at write time.
func Validate(title, description string) error {
	if l := len(strings.TrimSpace(title)); l < 2 || l > 140 {
		return &ValidationError{Message: "title must be 2-140 characters"}
	}
	if l := len(strings.TrimSpace(description)); l < 10 || l > 1200 {
		return &ValidationError{Message: "description must be 10-1200 characters"}
	}
	return nil
}
