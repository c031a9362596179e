package normalize

import (
	"golang.org/x/text/cases"

	sub "discsub/internal/submission"
)

// articles maps a leading word to the languages in which it is a definite or
// indefinite article. Keys are looked up through articleIndex, which holds
// them case-folded.
var articles = map[string][]sub.Language{
	// Latin script
	"'n":     {sub.LanguageAfrikaans, sub.LanguageDutch, sub.LanguageManx},
	"'r":     {sub.LanguageWelsh},
	"'t":     {sub.LanguageDutch},
	"a":      {sub.LanguageEnglish, sub.LanguageHungarian, sub.LanguagePortuguese},
	"a'":     {sub.LanguageGaelic},
	"al":     {sub.LanguageArabic, sub.LanguageBreton},
	"am":     {sub.LanguageGaelic},
	"an":     {sub.LanguageBreton, sub.LanguageEnglish, sub.LanguageGaelic, sub.LanguageIrish},
	"ar":     {sub.LanguageBreton},
	"as":     {sub.LanguagePortuguese},
	"az":     {sub.LanguageHungarian},
	"bir":    {sub.LanguageTurkish},
	"das":    {sub.LanguageGerman},
	"de":     {sub.LanguageDanish, sub.LanguageDutch, sub.LanguageNorwegian, sub.LanguageSwedish},
	"dei":    {sub.LanguageNorwegian},
	"dem":    {sub.LanguageGerman},
	"den":    {sub.LanguageDanish, sub.LanguageGerman, sub.LanguageNorwegian, sub.LanguageSwedish},
	"der":    {sub.LanguageGerman},
	"des":    {sub.LanguageFrench, sub.LanguageGerman},
	"det":    {sub.LanguageDanish, sub.LanguageNorwegian, sub.LanguageSwedish},
	"die":    {sub.LanguageAfrikaans, sub.LanguageGerman},
	"een":    {sub.LanguageDutch},
	"egy":    {sub.LanguageHungarian},
	"ei":     {sub.LanguageNorwegian},
	"ein":    {sub.LanguageGerman, sub.LanguageNorwegian},
	"eine":   {sub.LanguageGerman},
	"einem":  {sub.LanguageGerman},
	"einen":  {sub.LanguageGerman},
	"einer":  {sub.LanguageGerman},
	"eines":  {sub.LanguageGerman},
	"eit":    {sub.LanguageNorwegian},
	"el":     {sub.LanguageArabic, sub.LanguageCatalan, sub.LanguageSpanish},
	"els":    {sub.LanguageCatalan},
	"en":     {sub.LanguageCatalan, sub.LanguageDanish, sub.LanguageNorwegian, sub.LanguageSwedish},
	"et":     {sub.LanguageDanish, sub.LanguageNorwegian},
	"ett":    {sub.LanguageSwedish},
	"ētahi":  {sub.LanguageMaori},
	"gli":    {sub.LanguageItalian},
	"he":     {sub.LanguageHawaiian, sub.LanguageMaori},
	"het":    {sub.LanguageDutch},
	"hin":    {sub.LanguageIcelandic},
	"hinar":  {sub.LanguageIcelandic},
	"hinir":  {sub.LanguageIcelandic},
	"hinn":   {sub.LanguageIcelandic},
	"hið":    {sub.LanguageIcelandic},
	"i":      {sub.LanguageItalian},
	"il":     {sub.LanguageItalian},
	"ka":     {sub.LanguageHawaiian},
	"ke":     {sub.LanguageHawaiian},
	"l'":     {sub.LanguageCatalan, sub.LanguageFrench, sub.LanguageItalian},
	"la":     {sub.LanguageCatalan, sub.LanguageFrench, sub.LanguageItalian, sub.LanguageSpanish},
	"las":    {sub.LanguageSpanish},
	"le":     {sub.LanguageFrench, sub.LanguageItalian},
	"les":    {sub.LanguageCatalan, sub.LanguageFrench},
	"lo":     {sub.LanguageItalian, sub.LanguageSpanish},
	"los":    {sub.LanguageSpanish},
	"na":     {sub.LanguageCatalan, sub.LanguageGaelic, sub.LanguageHawaiian, sub.LanguageIrish},
	"nam":    {sub.LanguageGaelic},
	"nan":    {sub.LanguageGaelic},
	"nā":     {sub.LanguageHawaiian},
	"ngā":    {sub.LanguageMaori},
	"ny":     {sub.LanguageManx},
	"o":      {sub.LanguagePortuguese, sub.LanguageRomanian},
	"os":     {sub.LanguagePortuguese},
	"te":     {sub.LanguageMaori},
	"the":    {sub.LanguageEnglish},
	"tētahi": {sub.LanguageMaori},
	"ul":     {sub.LanguageBreton},
	"um":     {sub.LanguagePortuguese},
	"uma":    {sub.LanguagePortuguese},
	"umas":   {sub.LanguagePortuguese},
	"un":     {sub.LanguageBreton, sub.LanguageCatalan, sub.LanguageFrench, sub.LanguageItalian, sub.LanguageRomanian, sub.LanguageSpanish},
	"un'":    {sub.LanguageItalian},
	"una":    {sub.LanguageCatalan, sub.LanguageItalian, sub.LanguageSpanish},
	"unas":   {sub.LanguageSpanish},
	"une":    {sub.LanguageFrench},
	"unes":   {sub.LanguageCatalan},
	"uno":    {sub.LanguageItalian},
	"unos":   {sub.LanguageSpanish},
	"uns":    {sub.LanguageCatalan, sub.LanguagePortuguese},
	"ur":     {sub.LanguageBreton},
	"y":      {sub.LanguageWelsh},
	"yn":     {sub.LanguageManx},
	"yr":     {sub.LanguageWelsh},

	// Non-Latin script
	"ο":    {sub.LanguageGreek},
	"η":    {sub.LanguageGreek},
	"το":   {sub.LanguageGreek},
	"οι":   {sub.LanguageGreek},
	"τα":   {sub.LanguageGreek},
	"του":  {sub.LanguageGreek},
	"της":  {sub.LanguageGreek},
	"των":  {sub.LanguageGreek},
	"τον":  {sub.LanguageGreek},
	"την":  {sub.LanguageGreek},
	"τους": {sub.LanguageGreek},
	"τις":  {sub.LanguageGreek},
	"ένας": {sub.LanguageGreek},
	"έναν": {sub.LanguageGreek},
	"ενός": {sub.LanguageGreek},
	"μια":  {sub.LanguageGreek},
	"μία":  {sub.LanguageGreek},
	"μιας": {sub.LanguageGreek},
	"ένα":  {sub.LanguageGreek},
	"един": {sub.LanguageBulgarian},
	"еден": {sub.LanguageMacedonian},
	"една": {sub.LanguageBulgarian, sub.LanguageMacedonian},
	"едно": {sub.LanguageBulgarian, sub.LanguageMacedonian},
	"едни": {sub.LanguageBulgarian, sub.LanguageMacedonian},
	"एउटा": {sub.LanguageNepali},
	"एक":   {sub.LanguageHindi, sub.LanguageNepali},
	"דער":  {sub.LanguageYiddish},
	"די":   {sub.LanguageYiddish},
	"דאָס": {sub.LanguageYiddish},
	"דעם":  {sub.LanguageYiddish},
	"אַ":   {sub.LanguageYiddish},
	"אַן":  {sub.LanguageYiddish},
	"یک":   {sub.LanguagePersian},
	"یکی":  {sub.LanguagePersian},
}

// articleIndex is articles keyed by case-folded word, so that forms such as
// the Greek final sigma match however the title spells them.
var articleIndex = foldKeys(articles)

func foldKeys(in map[string][]sub.Language) map[string][]sub.Language {
	fold := cases.Fold()
	out := make(map[string][]sub.Language, len(in))
	for word, langs := range in {
		key := fold.String(word)
		out[key] = append(out[key], langs...)
	}
	return out
}
