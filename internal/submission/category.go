package submission

// Category classifies the content of a disc.
type Category string

const (
	CategoryGames         Category = "Games"
	CategoryDemos         Category = "Demos"
	CategoryVideo         Category = "Video"
	CategoryAudio         Category = "Audio"
	CategoryMultimedia    Category = "Multimedia"
	CategoryApplications  Category = "Applications"
	CategoryCoverdiscs    Category = "Coverdiscs"
	CategoryEducational   Category = "Educational"
	CategoryBonusDiscs    Category = "Bonus Discs"
	CategoryPreproduction Category = "Preproduction"
	CategoryAddOns        Category = "Add-Ons"
)

var categories = []Category{
	CategoryGames, CategoryDemos, CategoryVideo, CategoryAudio, CategoryMultimedia,
	CategoryApplications, CategoryCoverdiscs, CategoryEducational, CategoryBonusDiscs,
	CategoryPreproduction, CategoryAddOns,
}

// ParseCategory resolves a display name, ignoring case.
func ParseCategory(value string) (Category, bool) {
	for _, c := range categories {
		if foldEqual(string(c), value) {
			return c, true
		}
	}
	return "", false
}
