package submission

// Region is the catalog's short region code, as used in region URLs.
type Region string

var regions = map[Region]string{
	"A":  "Asia",
	"Ae": "Asia, Europe",
	"Au": "Australia",
	"B":  "Brazil",
	"C":  "China",
	"Ca": "Canada",
	"Cz": "Czechia",
	"Da": "Denmark",
	"E":  "Europe",
	"Fi": "Finland",
	"Fr": "France",
	"G":  "Germany",
	"Gr": "Greece",
	"H":  "Hong Kong",
	"I":  "Italy",
	"In": "India",
	"J":  "Japan",
	"Ja": "Japan, Asia",
	"Ju": "Japan, USA",
	"K":  "Korea",
	"Ne": "Netherlands",
	"No": "Norway",
	"P":  "Portugal",
	"Po": "Poland",
	"R":  "Russia",
	"S":  "Spain",
	"Sw": "Sweden",
	"Ta": "Taiwan",
	"U":  "USA",
	"Ue": "USA, Europe",
	"Uk": "UK",
	"W":  "World",
}

// LongName returns the display name of r, or the raw code when unknown.
func (r Region) LongName() string {
	if name, ok := regions[r]; ok {
		return name
	}
	return string(r)
}

// ParseRegion resolves a short code or a display name.
func ParseRegion(value string) (Region, bool) {
	if _, ok := regions[Region(value)]; ok {
		return Region(value), true
	}
	for code, name := range regions {
		if foldEqual(string(code), value) || foldEqual(name, value) {
			return code, true
		}
	}
	return "", false
}
