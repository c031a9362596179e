package identification

import (
	"html"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"
	"unicode"

	"discsub/internal/sitecode"
	sub "discsub/internal/submission"
)

// VerifyPrefix marks values copied from the catalog that a dumper must
// confirm against the physical disc.
const VerifyPrefix = "(VERIFY THIS) "

var (
	titlePattern        = regexp.MustCompile(`<h1>(.*?)</h1>`)
	foreignTitlePattern = regexp.MustCompile(`<h2>(.*?)</h2>`)
	parenPattern        = regexp.MustCompile(`\((.*?)\)`)
	categoryPattern     = regexp.MustCompile(`<tr><th>Category</th><td>(.*?)</td></tr>`)
	regionPattern       = regexp.MustCompile(`<tr><th>Region</th><td><a href="/discs/region/(.*?)/">`)
	languagePattern     = regexp.MustCompile(`<img src="/images/languages/(.*?)\.png"`)
	serialPattern       = regexp.MustCompile(`<tr><th>Serial</th><td>(.*?)</td></tr>`)
	errorCountPattern   = regexp.MustCompile(`<tr><th>Errors count</th><td>(.*?)</td></tr>`)
	versionPattern      = regexp.MustCompile(`<tr><th>Version</th><td>(.*?)</td></tr>`)
	editionPattern      = regexp.MustCompile(`<tr><th>Edition</th><td>(.*?)</td></tr>`)
	dumperPattern       = regexp.MustCompile(`<a href="/discs/dumper/(.*?)/">`)
	commentsPattern     = regexp.MustCompile(`(?s)<tr><th>Comments</th></tr><tr><td>(.*?)</td></tr>`)
	contentsPattern     = regexp.MustCompile(`(?s)<tr><th>Contents</th></tr><tr .*?><td>(.*?)</td></tr>`)
	addedPattern        = regexp.MustCompile(`<tr><th>Added</th><td>(.*?)</td></tr>`)
	modifiedPattern     = regexp.MustCompile(`<tr><th>Last modified</th><td>(.*?)</td></tr>`)
)

var timestampLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// Detail is the canonical metadata read from one catalog detail page. It is
// built by ParseDetail and consumed by Apply.
type Detail struct {
	ID               int
	Title            string
	DiscNumberLetter string
	DiscTitle        string
	ForeignTitle     string
	Category         sub.Category
	Region           sub.Region
	Languages        []sub.Language
	Serial           string
	ErrorsCount      string
	Version          string
	Edition          string
	Dumpers          []string
	Comments         string
	CommentFields    sitecode.Fields
	Contents         string
	ContentFields    sitecode.Fields
	Added            *time.Time
	LastModified     *time.Time
	TrackCount       int
}

// ParseDetail extracts canonical fields from a detail page with anchored
// patterns. Missing fields stay zero; unparseable timestamps are skipped.
func ParseDetail(id int, page string) *Detail {
	d := &Detail{ID: id, Category: sub.CategoryGames, TrackCount: TrackCount(page)}

	if title := firstGroup(titlePattern, page); title != "" {
		d.parseTitle(html.UnescapeString(title))
	}
	d.ForeignTitle = html.UnescapeString(firstGroup(foreignTitlePattern, page))

	if raw := firstGroup(categoryPattern, page); raw != "" {
		if category, ok := sub.ParseCategory(html.UnescapeString(raw)); ok {
			d.Category = category
		}
	}
	if raw := firstGroup(regionPattern, page); raw != "" {
		if region, ok := sub.ParseRegion(raw); ok {
			d.Region = region
		} else {
			d.Region = sub.Region(raw)
		}
	}
	for _, match := range languagePattern.FindAllStringSubmatch(page, -1) {
		lang, ok := sub.ParseLanguage(match[1])
		if ok && !slices.Contains(d.Languages, lang) {
			d.Languages = append(d.Languages, lang)
		}
	}

	d.Serial = decodedGroup(serialPattern, page)
	d.ErrorsCount = decodedGroup(errorCountPattern, page)
	d.Version = decodedGroup(versionPattern, page)
	d.Edition = decodedGroup(editionPattern, page)

	for _, match := range dumperPattern.FindAllStringSubmatch(page, -1) {
		name := strings.TrimSpace(html.UnescapeString(match[1]))
		if name != "" && !slices.Contains(d.Dumpers, name) {
			d.Dumpers = append(d.Dumpers, name)
		}
	}

	if raw := firstGroup(commentsPattern, page); raw != "" {
		d.Comments, d.CommentFields = parseTagged(cleanFreeText(raw), sitecode.ScopeComments)
	}
	if raw := firstGroup(contentsPattern, page); raw != "" {
		d.Contents, d.ContentFields = parseTagged(cleanFreeText(raw), sitecode.ScopeContents)
	}

	d.Added = parseTimestamp(firstGroup(addedPattern, page))
	d.LastModified = parseTimestamp(firstGroup(modifiedPattern, page))
	return d
}

// parseTitle splits "Name (Disc 2) (Bonus) (3)" into the base title, disc
// number, disc title and an issue number kept on the title.
func (d *Detail) parseTitle(full string) {
	full = strings.TrimSpace(full)
	idx := strings.Index(full, " (")
	if idx < 0 {
		d.Title = full
		return
	}
	d.Title = full[:idx]
	for _, match := range parenPattern.FindAllStringSubmatch(full[idx:], -1) {
		value := strings.TrimSpace(match[1])
		switch {
		case value == "":
		case strings.HasPrefix(value, "Disc "):
			d.DiscNumberLetter = strings.TrimSpace(strings.TrimPrefix(value, "Disc "))
		case isNumeric(value):
			d.Title += " (" + value + ")"
		default:
			d.DiscTitle = value
		}
	}
}

// Apply copies d into rec. Locally known region, error count, version and
// serial are kept; languages are replaced when the catalog lists any; dumpers
// are appended. The tagged fragments move into rec so the next
// ProcessSpecialFields call folds them in, with local fragments winning.
func Apply(rec *sub.Record, d *Detail, pullAll bool) {
	info := &rec.CommonDiscInfo
	if d.Title != "" {
		info.Title = d.Title
	}
	if d.DiscNumberLetter != "" {
		info.DiscNumberLetter = d.DiscNumberLetter
	}
	if d.DiscTitle != "" {
		info.DiscTitle = d.DiscTitle
	}
	if d.ForeignTitle != "" {
		info.ForeignTitleNonLatin = d.ForeignTitle
	}
	info.Category = d.Category
	if info.Region == "" && d.Region != "" {
		info.Region = d.Region
	}
	if len(d.Languages) > 0 {
		info.Languages = append([]sub.Language(nil), d.Languages...)
	}
	if pullAll && info.Serial == "" && d.Serial != "" {
		info.Serial = d.Serial
	}
	if info.ErrorsCount == "" && d.ErrorsCount != "" {
		info.ErrorsCount = d.ErrorsCount
	}

	editions := &rec.VersionAndEditions
	if editions.Version == "" && d.Version != "" {
		editions.Version = VerifyPrefix + d.Version
	}
	if pullAll && d.Edition != "" {
		editions.OtherEditions = VerifyPrefix + d.Edition
	}

	for _, name := range d.Dumpers {
		if !slices.Contains(rec.DumpersAndStatus.Dumpers, name) {
			rec.DumpersAndStatus.Dumpers = append(rec.DumpersAndStatus.Dumpers, name)
		}
	}

	info.Comments = joinText(info.Comments, d.Comments)
	info.Contents = joinText(info.Contents, d.Contents)
	for code, value := range d.CommentFields {
		if _, local := info.CommentsSpecialFields[code]; !local {
			rec.SetCommentField(code, value)
		}
	}
	for code, value := range d.ContentFields {
		if _, local := info.ContentsSpecialFields[code]; !local {
			rec.SetContentField(code, value)
		}
	}
	d.CommentFields = nil
	d.ContentFields = nil

	if d.Added != nil {
		rec.Added = d.Added
	}
	if d.LastModified != nil {
		rec.LastModified = d.LastModified
	}
}

func joinText(local, remote string) string {
	local = strings.TrimSpace(local)
	remote = strings.TrimSpace(remote)
	switch {
	case remote == "" || strings.Contains(local, remote):
		return local
	case local == "":
		return remote
	default:
		return local + "\n" + remote
	}
}

func firstGroup(pattern *regexp.Regexp, text string) string {
	match := pattern.FindStringSubmatch(text)
	if match == nil {
		return ""
	}
	return strings.TrimSpace(match[1])
}

func decodedGroup(pattern *regexp.Regexp, text string) string {
	return strings.TrimSpace(html.UnescapeString(firstGroup(pattern, text)))
}

func parseTimestamp(value string) *time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, value); err == nil {
			return &ts
		}
	}
	return nil
}

func isNumeric(value string) bool {
	if _, err := strconv.ParseInt(value, 10, 64); err != nil {
		return false
	}
	return strings.IndexFunc(value, func(r rune) bool { return !unicode.IsDigit(r) }) < 0
}
