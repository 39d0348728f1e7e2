package artists

import (
	"net/url"
	"regexp"
	"strings"
)

var whatsappRe = regexp.MustCompile(`^[+0-9\s-]+$`)

// Hosts accepted for upload_links. Submissions point at a shared folder, not
// uploaded media, so only the two supported file hosts are allowed.
var allowedUploadHosts = []string{"drive.google.com", "dropbox.com"}

// ValidateProfile checks the shared artist content fields. It returns a
// *ValidationError describing the first failing field.
func ValidateProfile(name, district, genres, bio, whatsapp, aiSummary string) error {
	if l := len(strings.TrimSpace(name)); l < 2 || l > 100 {
		return validationErr("name must be 2-100 characters")
	}
	if !IsDistrict(district) {
		return validationErr("district %q is not a Sabah district", district)
	}
	if l := len(strings.TrimSpace(genres)); l < 2 || l > 120 {
		return validationErr("genres must be 2-120 characters")
	}
	if l := len(strings.TrimSpace(bio)); l < 20 || l > 1200 {
		return validationErr("bio must be 20-1200 characters")
	}
	if err := validateWhatsapp(whatsapp); err != nil {
		return err
	}
	if len(strings.TrimSpace(aiSummary)) > 220 {
		return validationErr("aiSummary is too long (max 220 characters)")
	}
	return nil
}

func validateWhatsapp(value string) error {
	v := strings.TrimSpace(value)
	if len(v) < 8 {
		return validationErr("WhatsApp contact is required")
	}
	if len(v) > 30 {
		return validationErr("WhatsApp contact is too long")
	}
	if !whatsappRe.MatchString(v) {
		return validationErr("WhatsApp format is invalid")
	}
	return nil
}

// ValidateOptionalURL accepts empty values; non-empty values must parse as an
// absolute http(s) URL.
func ValidateOptionalURL(field, value string) error {
	v := strings.TrimSpace(value)
	if v == "" {
		return nil
	}
	parsed, err := url.Parse(v)
	if err != nil || parsed.Host == "" || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return validationErr("%s must be a valid URL", field)
	}
	return nil
}

// ValidateUploadLink enforces the file-host allow-list on upload_links.
func ValidateUploadLink(value string) error {
	v := strings.TrimSpace(value)
	if v == "" {
		return nil
	}
	parsed, err := url.Parse(v)
	if err != nil || parsed.Host == "" {
		return validationErr("upload_links must be a Google Drive or Dropbox URL")
	}
	host := strings.ToLower(parsed.Hostname())
	for _, allowed := range allowedUploadHosts {
		if strings.Contains(host, allowed) {
			return nil
		}
	}
	return validationErr("upload_links must be a Google Drive or Dropbox URL")
}

// CleanOptional trims a value and maps the empty string to nil, so optional
// columns store NULL instead of "".
func CleanOptional(value string) *string {
	v := strings.TrimSpace(value)
	if v == "" {
		return nil
	}
	return &v
}
