package artists

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const validBio = "An indie quartet blending coastal folk textures with modern grooves."

func TestValidateProfileOK(t *testing.T) {
	err := ValidateProfile("Kinabalu Echo", "KOTA_KINABALU", "Indie, Alternative", validBio, "+60 12-345 6789", "")
	assert.NoError(t, err)
}

func TestValidateProfileBounds(t *testing.T) {
	cases := []struct {
		name, district, genres, bio, whatsapp, summary string
	}{
		{"K", "KOTA_KINABALU", "Indie", validBio, "+60123456789", ""},              // name too short
		{"Kinabalu Echo", "KUALA_LUMPUR", "Indie", validBio, "+60123456789", ""},   // not a Sabah district
		{"Kinabalu Echo", "KOTA_KINABALU", "I", validBio, "+60123456789", ""},      // genres too short
		{"Kinabalu Echo", "KOTA_KINABALU", "Indie", "too short", "+60123456789", ""},
		{"Kinabalu Echo", "KOTA_KINABALU", "Indie", validBio, "0123", ""},          // whatsapp too short
		{"Kinabalu Echo", "KOTA_KINABALU", "Indie", validBio, "call me maybe", ""}, // whatsapp format
		{"Kinabalu Echo", "KOTA_KINABALU", "Indie", validBio, "+60123456789", strings.Repeat("x", 221)},
	}

	for _, tc := range cases {
		err := ValidateProfile(tc.name, tc.district, tc.genres, tc.bio, tc.whatsapp, tc.summary)
		var validation *ValidationError
		assert.ErrorAs(t, err, &validation, "expected validation error for %+v", tc)
	}
}

func TestValidateOptionalURL(t *testing.T) {
	assert.NoError(t, ValidateOptionalURL("spotifyUrl", ""))
	assert.NoError(t, ValidateOptionalURL("spotifyUrl", "https://open.spotify.com/artist/x"))
	assert.Error(t, ValidateOptionalURL("spotifyUrl", "not a url"))
	assert.Error(t, ValidateOptionalURL("spotifyUrl", "ftp://example.com/file"))
}

func TestValidateUploadLink(t *testing.T) {
	assert.NoError(t, ValidateUploadLink(""))
	assert.NoError(t, ValidateUploadLink("https://drive.google.com/drive/folders/abc"))
	assert.NoError(t, ValidateUploadLink("https://www.dropbox.com/s/abc/demo.mp3"))
	assert.Error(t, ValidateUploadLink("https://example.com/demo.mp3"))
	assert.Error(t, ValidateUploadLink("not a url"))
}

func TestCleanOptional(t *testing.T) {
	assert.Nil(t, CleanOptional(""))
	assert.Nil(t, CleanOptional("   "))
	if v := CleanOptional("  hello "); assert.NotNil(t, v) {
		assert.Equal(t, "hello", *v)
	}
}

func TestParseDistrict(t *testing.T) {
	assert.Equal(t, "TAWAU", ParseDistrict("TAWAU"))
	assert.Equal(t, "", ParseDistrict("SINGAPORE"))
	assert.Equal(t, "Lahad Datu", DistrictLabel("LAHAD_DATU"))
	assert.Equal(t, "UNKNOWN", DistrictLabel("UNKNOWN"))
}
