package normalize

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"

	sub "discsub/internal/submission"
)

// Title moves a leading article to the end of title for catalog sorting.
// "The Matrix" becomes "Matrix, The"; when a later word ends with ':' or '-'
// the article is placed before that separator instead, so
// "The Legend of Zelda: Ocarina of Time" becomes
// "Legend of Zelda, The: Ocarina of Time".
//
// Languages defaults to English. A word that is not an article in any of the
// declared languages is retried against English. Unrecognized titles are
// returned unchanged.
func Title(title string, languages []sub.Language) string {
	tokens := strings.Fields(title)
	if len(tokens) < 2 {
		return title
	}
	article := tokens[0]
	if !isArticle(article, languages) {
		return title
	}

	rest := tokens[1:]
	parts := make([]string, 0, len(rest))
	inserted := false
	for _, token := range rest {
		if inserted {
			parts = append(parts, token)
			continue
		}
		if token == ":" || token == "-" {
			if len(parts) > 0 {
				parts[len(parts)-1] += ", " + article
				inserted = true
			}
			parts = append(parts, token)
			continue
		}
		if sep := token[len(token)-1]; sep == ':' || sep == '-' {
			parts = append(parts, token[:len(token)-1]+", "+article+string(sep))
			inserted = true
			continue
		}
		parts = append(parts, token)
	}
	if !inserted {
		parts[len(parts)-1] += ", " + article
	}
	return strings.TrimSpace(strings.Join(parts, " "))
}

func isArticle(word string, languages []sub.Language) bool {
	matches, ok := articleIndex[cases.Fold().String(word)]
	if !ok {
		return false
	}
	if len(languages) == 0 {
		languages = []sub.Language{sub.LanguageEnglish}
	}
	for _, lang := range languages {
		if slices.Contains(matches, lang) {
			return true
		}
	}
	return slices.Contains(matches, sub.LanguageEnglish)
}
