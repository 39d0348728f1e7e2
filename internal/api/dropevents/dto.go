package dropevents

// DropEventRequest is shared by create and update: both carry the full field
// set, and the roster is a full replacement, never a merge.
type DropEventRequest struct {
	Title       string   `json:"title" binding:"required"`
	Date        string   `json:"date" binding:"required"` // ISO 8601
	Description string   `json:"description" binding:"required"`
	ArtistIDs   []string `json:"artistIds" binding:"required,min=1"`
}
