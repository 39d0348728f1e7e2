package artists

// The fixed set of Sabah districts an artist can register under.
var Districts = []string{
	"KOTA_KINABALU",
	"PAPAR",
	"PENAMPANG",
	"TUARAN",
	"RANAU",
	"KUDAT",
	"SANDAKAN",
	"LAHAD_DATU",
	"TAWAU",
	"SEMPORNA",
	"KENINGAU",
	"BEAUFORT",
	"SIPITANG",
	"TAMBUNAN",
	"KOTA_BELUD",
}

var districtLabels = map[string]string{
	"KOTA_KINABALU": "Kota Kinabalu",
	"PAPAR":         "Papar",
	"PENAMPANG":     "Penampang",
	"TUARAN":        "Tuaran",
	"RANAU":         "Ranau",
	"KUDAT":         "Kudat",
	"SANDAKAN":      "Sandakan",
	"LAHAD_DATU":    "Lahad Datu",
	"TAWAU":         "Tawau",
	"SEMPORNA":      "Semporna",
	"KENINGAU":      "Keningau",
	"BEAUFORT":      "Beaufort",
	"SIPITANG":      "Sipitang",
	"TAMBUNAN":      "Tambunan",
	"KOTA_BELUD":    "Kota Belud",
}

func IsDistrict(value string) bool {
	_, ok := districtLabels[value]
	return ok
}

// ParseDistrict returns the district value if valid, otherwise "".
// Used for optional query filters where an unknown value means "no filter".
func ParseDistrict(value string) string {
	if IsDistrict(value) {
		return value
	}
	return ""
}

// DistrictLabel returns the display label for a district value.
// Unknown values pass through unchanged so stale data still renders.
func DistrictLabel(value string) string {
	if label, ok := districtLabels[value]; ok {
		return label
	}
	return value
}
