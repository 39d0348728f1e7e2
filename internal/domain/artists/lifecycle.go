package artists

/*
	Submission lifecycle
	--------------------
	PENDING -> APPROVED | REJECTED, one-shot.

	Every write path that touches status or featured must go through the
	functions in this file, so the invariant "featured implies APPROVED"
	lives in exactly one place. Callers persist the mutated record as a
	single update afterwards.
*/

// Approve moves a pending submission to APPROVED. The featured flag is left
// untouched; it is toggled independently via SetFeatured.
func Approve(a *Artist) error {
	if a.Status != StatusPending {
		return ErrInvalidTransition
	}
	a.Status = StatusApproved
	return nil
}

// Reject moves a pending submission to REJECTED and unconditionally clears
// featured, so a seeded featured-but-pending record can never end up
// featured-and-rejected.
func Reject(a *Artist) error {
	if a.Status != StatusPending {
		return ErrInvalidTransition
	}
	a.Status = StatusRejected
	a.Featured = false
	return nil
}

// SetFeatured toggles the spotlight flag. Turning it on requires an APPROVED
// artist; turning it off is always allowed.
func SetFeatured(a *Artist, featured bool) error {
	if featured && a.Status != StatusApproved {
		return ErrInvalidState
	}
	a.Featured = featured
	return nil
}

// EditInput is the full replacement field set for an admin correction.
// There is no partial merge: every content field is overwritten.
type EditInput struct {
	Type            string
	Name            string
	District        string
	Genres          string
	Bio             string
	ContactWhatsapp string
	HasSongReleased bool

	AISummary     *string
	TopTrackURL   *string
	SpotifyURL    *string
	AppleMusicURL *string
	YoutubeURL    *string
	CoverImageURL *string
	UploadLinks   *string

	// nil leaves the flag unchanged.
	Featured *bool
}

// ApplyEdit replaces the artist's content fields wholesale. It is allowed in
// any status; the slug is the caller's concern (recomputed only on a name
// change, against the taken set excluding the record's own slug).
func ApplyEdit(a *Artist, in EditInput) error {
	if in.Featured != nil {
		if err := SetFeatured(a, *in.Featured); err != nil {
			return err
		}
	}

	a.Type = in.Type
	a.Name = in.Name
	a.District = in.District
	a.Genres = in.Genres
	a.Bio = in.Bio
	a.ContactWhatsapp = in.ContactWhatsapp
	a.HasSongReleased = in.HasSongReleased

	a.AISummary = in.AISummary
	a.TopTrackURL = in.TopTrackURL
	a.SpotifyURL = in.SpotifyURL
	a.AppleMusicURL = in.AppleMusicURL
	a.YoutubeURL = in.YoutubeURL
	a.CoverImageURL = in.CoverImageURL
	a.UploadLinks = in.UploadLinks

	return nil
}
