package normalize

import (
	"testing"

	sub "discsub/internal/submission"
)

func TestTitle(t *testing.T) {
	tests := []struct {
		title     string
		languages []sub.Language
		want      string
	}{
		{"The Matrix", []sub.Language{sub.LanguageEnglish}, "Matrix, The"},
		{"A Bug's Life", []sub.Language{sub.LanguageEnglish}, "Bug's Life, A"},
		{"Final Fantasy", []sub.Language{sub.LanguageEnglish}, "Final Fantasy"},
		{"The Legend of Zelda: Ocarina of Time", nil, "Legend of Zelda, The: Ocarina of Time"},
		{"The Matrix - Reloaded", nil, "Matrix, The - Reloaded"},
		{"Der Schuh des Manitu", []sub.Language{sub.LanguageGerman}, "Schuh des Manitu, Der"},
		{"La Pucelle", []sub.Language{sub.LanguageFrench}, "Pucelle, La"},
		{"The Getaway", []sub.Language{sub.LanguageFrench}, "Getaway, The"},
		{"Der Schuh", []sub.Language{sub.LanguageEnglish}, "Der Schuh"},
		{"THE HOUSE", nil, "HOUSE, THE"},
		{"The", nil, "The"},
		{"Η Κάθοδος", []sub.Language{sub.LanguageGreek}, "Κάθοδος, Η"},
		{"Le Avventure di Pinocchio", []sub.Language{sub.LanguageItalian}, "Avventure di Pinocchio, Le"},
		{"Le Mans", []sub.Language{sub.LanguageFrench}, "Mans, Le"},
		{"Ένας Ήρωας", []sub.Language{sub.LanguageGreek}, "Ήρωας, Ένας"},
		{"ΤΟΥΣ Ήρωες", []sub.Language{sub.LanguageGreek}, "Ήρωες, ΤΟΥΣ"},
		{"Den Schatz", []sub.Language{sub.LanguageGerman}, "Schatz, Den"},
		{"Hinn Fullkomni", []sub.Language{sub.LanguageIcelandic}, "Fullkomni, Hinn"},
	}
	for _, tc := range tests {
		if got := Title(tc.title, tc.languages); got != tc.want {
			t.Errorf("Title(%q, %v) = %q, want %q", tc.title, tc.languages, got, tc.want)
		}
	}
}

func TestArticleTableResolves(t *testing.T) {
	for word, langs := range articles {
		for _, lang := range langs {
			if !isArticle(word, []sub.Language{lang}) {
				t.Errorf("%q not recognized as a %s article", word, lang)
			}
			if got := Title(word+" Word", []sub.Language{lang}); got != "Word, "+word {
				t.Errorf("Title(%q) = %q", word+" Word", got)
			}
		}
	}
}

func TestDiscType(t *testing.T) {
	tests := []struct {
		name          string
		current       sub.DiscType
		lb1, lb2, lb3 int64
		want          sub.DiscType
	}{
		{"bd quad", sub.DiscTypeBD25, 0, 0, 12345, sub.DiscTypeBD128},
		{"bd triple", sub.DiscTypeBD25, 1, 2, 0, sub.DiscTypeBD100},
		{"bd dual", sub.DiscTypeBD25, 1, 0, 0, sub.DiscTypeBD50},
		{"bd single", sub.DiscTypeBD50, 0, 0, 0, sub.DiscTypeBD25},
		{"bd high density dual", sub.DiscTypeBD33, 1, 0, 0, sub.DiscTypeBD66},
		{"dvd single", sub.DiscTypeDVD5, 0, 0, 0, sub.DiscTypeDVD5},
		{"dvd dual", sub.DiscTypeDVD5, 2084960, 0, 0, sub.DiscTypeDVD9},
		{"hddvd dual", sub.DiscTypeHDDVDSL, 1, 0, 0, sub.DiscTypeHDDVDDL},
		{"umd dual", sub.DiscTypeUMDSL, 1, 0, 0, sub.DiscTypeUMDDL},
		{"cd untouched", sub.DiscTypeCD, 1, 1, 1, sub.DiscTypeCD},
		{"unknown untouched", sub.DiscType("Floppy"), 1, 0, 0, sub.DiscType("Floppy")},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := DiscType(tc.current, tc.lb1, tc.lb2, tc.lb3); got != tc.want {
				t.Fatalf("DiscType = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestDiscTypeIdempotent(t *testing.T) {
	types := []sub.DiscType{
		sub.DiscTypeBD25, sub.DiscTypeBD33, sub.DiscTypeBD50, sub.DiscTypeBD66,
		sub.DiscTypeBD100, sub.DiscTypeBD128, sub.DiscTypeDVD5, sub.DiscTypeDVD9,
		sub.DiscTypeHDDVDSL, sub.DiscTypeHDDVDDL, sub.DiscTypeUMDSL, sub.DiscTypeUMDDL,
		sub.DiscTypeCD, sub.DiscTypeGDROM,
	}
	values := []int64{0, 1}
	for _, dt := range types {
		for _, lb1 := range values {
			for _, lb2 := range values {
				for _, lb3 := range values {
					once := DiscType(dt, lb1, lb2, lb3)
					twice := DiscType(once, lb1, lb2, lb3)
					if once != twice {
						t.Fatalf("%s (%d,%d,%d): once=%s twice=%s", dt, lb1, lb2, lb3, once, twice)
					}
				}
			}
		}
	}
}

func TestRecord(t *testing.T) {
	rec := sub.New()
	rec.CommonDiscInfo.Title = "The Matrix"
	rec.CommonDiscInfo.Media = sub.DiscTypeDVD5
	rec.SizeAndChecksums.Layerbreak = 100

	Record(rec, true)
	if rec.CommonDiscInfo.Title != "Matrix, The" {
		t.Fatalf("unexpected title %q", rec.CommonDiscInfo.Title)
	}
	if rec.CommonDiscInfo.Media != sub.DiscTypeDVD9 {
		t.Fatalf("unexpected media %q", rec.CommonDiscInfo.Media)
	}

	rec.CommonDiscInfo.Title = "The Matrix"
	Record(rec, false)
	if rec.CommonDiscInfo.Title != "The Matrix" {
		t.Fatalf("title changed with normalization disabled: %q", rec.CommonDiscInfo.Title)
	}
}
