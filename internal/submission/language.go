package submission

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Language is an ISO 639-3 language code.
type Language string

const (
	LanguageAfrikaans  Language = "afr"
	LanguageArabic     Language = "ara"
	LanguageBreton     Language = "bre"
	LanguageBulgarian  Language = "bul"
	LanguageCatalan    Language = "cat"
	LanguageChinese    Language = "zho"
	LanguageCroatian   Language = "hrv"
	LanguageCzech      Language = "ces"
	LanguageDanish     Language = "dan"
	LanguageDutch      Language = "nld"
	LanguageEnglish    Language = "eng"
	LanguageEstonian   Language = "est"
	LanguageFinnish    Language = "fin"
	LanguageFrench     Language = "fra"
	LanguageGaelic     Language = "gla"
	LanguageGerman     Language = "deu"
	LanguageGreek      Language = "ell"
	LanguageHawaiian   Language = "haw"
	LanguageHebrew     Language = "heb"
	LanguageHindi      Language = "hin"
	LanguageHungarian  Language = "hun"
	LanguageIcelandic  Language = "isl"
	LanguageIndonesian Language = "ind"
	LanguageIrish      Language = "gle"
	LanguageItalian    Language = "ita"
	LanguageJapanese   Language = "jpn"
	LanguageKorean     Language = "kor"
	LanguageLatin      Language = "lat"
	LanguageLatvian    Language = "lav"
	LanguageLithuanian Language = "lit"
	LanguageMacedonian Language = "mkd"
	LanguageManx       Language = "glv"
	LanguageMaori      Language = "mri"
	LanguageNepali     Language = "nep"
	LanguageNorwegian  Language = "nor"
	LanguagePersian    Language = "fas"
	LanguagePolish     Language = "pol"
	LanguagePortuguese Language = "por"
	LanguageRomanian   Language = "ron"
	LanguageRussian    Language = "rus"
	LanguageSerbian    Language = "srp"
	LanguageSlovak     Language = "slk"
	LanguageSlovenian  Language = "slv"
	LanguageSpanish    Language = "spa"
	LanguageSwedish    Language = "swe"
	LanguageThai       Language = "tha"
	LanguageTurkish    Language = "tur"
	LanguageUkrainian  Language = "ukr"
	LanguageVietnamese Language = "vie"
	LanguageWelsh      Language = "cym"
	LanguageYiddish    Language = "yid"
)

var languages = map[Language]string{
	LanguageAfrikaans:  "Afrikaans",
	LanguageArabic:     "Arabic",
	LanguageBreton:     "Breton",
	LanguageBulgarian:  "Bulgarian",
	LanguageCatalan:    "Catalan",
	LanguageChinese:    "Chinese",
	LanguageCroatian:   "Croatian",
	LanguageCzech:      "Czech",
	LanguageDanish:     "Danish",
	LanguageDutch:      "Dutch",
	LanguageEnglish:    "English",
	LanguageEstonian:   "Estonian",
	LanguageFinnish:    "Finnish",
	LanguageFrench:     "French",
	LanguageGaelic:     "Scottish Gaelic",
	LanguageGerman:     "German",
	LanguageGreek:      "Greek",
	LanguageHawaiian:   "Hawaiian",
	LanguageHebrew:     "Hebrew",
	LanguageHindi:      "Hindi",
	LanguageHungarian:  "Hungarian",
	LanguageIcelandic:  "Icelandic",
	LanguageIndonesian: "Indonesian",
	LanguageIrish:      "Irish",
	LanguageItalian:    "Italian",
	LanguageJapanese:   "Japanese",
	LanguageKorean:     "Korean",
	LanguageLatin:      "Latin",
	LanguageLatvian:    "Latvian",
	LanguageLithuanian: "Lithuanian",
	LanguageMacedonian: "Macedonian",
	LanguageManx:       "Manx",
	LanguageMaori:      "Maori",
	LanguageNepali:     "Nepali",
	LanguageNorwegian:  "Norwegian",
	LanguagePersian:    "Persian",
	LanguagePolish:     "Polish",
	LanguagePortuguese: "Portuguese",
	LanguageRomanian:   "Romanian",
	LanguageRussian:    "Russian",
	LanguageSerbian:    "Serbian",
	LanguageSlovak:     "Slovak",
	LanguageSlovenian:  "Slovenian",
	LanguageSpanish:    "Spanish",
	LanguageSwedish:    "Swedish",
	LanguageThai:       "Thai",
	LanguageTurkish:    "Turkish",
	LanguageUkrainian:  "Ukrainian",
	LanguageVietnamese: "Vietnamese",
	LanguageWelsh:      "Welsh",
	LanguageYiddish:    "Yiddish",
}

// LongName returns the English display name of l.
func (l Language) LongName() string {
	if name, ok := languages[l]; ok {
		return name
	}
	return string(l)
}

// Tag converts l to a BCP 47 tag.
func (l Language) Tag() language.Tag {
	return language.Make(string(l))
}

// ParseLanguage resolves an English display name, an ISO 639-3 code, or any
// base language subtag understood by x/text/language.
func ParseLanguage(value string) (Language, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", false
	}
	if _, ok := languages[Language(value)]; ok {
		return Language(value), true
	}
	for code, name := range languages {
		if foldEqual(name, value) {
			return code, true
		}
	}
	base, err := language.ParseBase(strings.ToLower(value))
	if err != nil {
		return "", false
	}
	code := Language(base.ISO3())
	if _, ok := languages[code]; ok {
		return code, true
	}
	return "", false
}

// foldEqual compares strings under Unicode case folding. Casers carry state,
// so each call builds its own.
func foldEqual(a, b string) bool {
	folder := cases.Fold()
	return folder.String(a) == folder.String(b)
}
