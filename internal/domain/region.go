package domain

var regionNames = map[string]string{
	"UAE":             "United Arab Emirates",
	"KSA":             "Kingdom of Saudi Arabia",
	"UK":              "United Kingdom",
	UnspecifiedRegion: UnspecifiedRegion,
}

// RegionDisplayName maps a region code to its label. Unknown codes map to themselves.
func RegionDisplayName(code string) string {
	if name, ok := regionNames[code]; ok {
		return name
	}
	return code
}
