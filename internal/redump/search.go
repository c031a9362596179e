package redump

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"discsub/internal/logging"
	"discsub/internal/services"
)

var (
	discLinkPattern = regexp.MustCompile(`^/disc/(\d+)/$`)
	sfvLinkPattern  = regexp.MustCompile(`/disc/(\d+)/sfv/`)
)

const discPageMarker = "<b>Download:</b>"

// NormalizeQuery converts free text into the quicksearch path segment:
// quotes are trimmed, spaces and slashes become dashes, and the result is
// lowercased.
func NormalizeQuery(query string) string {
	query = strings.TrimSpace(query)
	query = strings.Trim(query, `"'`)
	query = strings.TrimSpace(query)
	query = strings.NewReplacer(" ", "-", "/", "-", `\`, "-").Replace(query)
	return strings.ToLower(query)
}

// Search returns the IDs of every disc the quicksearch lists for query,
// in page order without duplicates. Paging stops when a page lists at most
// one disc. When the catalog redirects straight to a disc page, that single
// ID is returned.
func (c *Client) Search(ctx context.Context, query string) ([]int, error) {
	q := NormalizeQuery(query)
	if q == "" {
		return nil, services.Wrap(services.ErrValidation, "redump", "search", "query must not be empty", nil)
	}

	seen := make(map[int]struct{})
	ids := make([]int, 0)
	for page := 1; ; page++ {
		target := fmt.Sprintf("%s/discs/quicksearch/%s/?page=%d", c.baseURL, url.PathEscape(q), page)
		body, err := c.get(ctx, target)
		if err != nil {
			return nil, err
		}
		pageIDs, single, err := parseSearchPage(body)
		if err != nil {
			return nil, services.Wrap(services.ErrParse, "redump", "search", target, err)
		}

		added := 0
		for _, id := range pageIDs {
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}
			ids = append(ids, id)
			added++
		}
		if single || len(pageIDs) <= 1 || added == 0 {
			break
		}
	}

	c.logger.Debug("quicksearch complete",
		logging.String("query", q),
		logging.Int("results", len(ids)),
	)
	return ids, nil
}

// parseSearchPage extracts disc IDs from a result listing. The second return
// value reports whether the page was a disc page rather than a listing.
func parseSearchPage(body []byte) ([]int, bool, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, false, err
	}

	if bytes.Contains(body, []byte(discPageMarker)) {
		var id int
		doc.Find("a[href]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
			href, _ := s.Attr("href")
			if m := sfvLinkPattern.FindStringSubmatch(href); m != nil {
				id, _ = strconv.Atoi(m[1])
				return false
			}
			return true
		})
		if id == 0 {
			return nil, true, nil
		}
		return []int{id}, true, nil
	}

	seen := make(map[int]struct{})
	ids := make([]int, 0)
	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		m := discLinkPattern.FindStringSubmatch(strings.TrimSpace(href))
		if m == nil {
			return
		}
		id, err := strconv.Atoi(m[1])
		if err != nil {
			return
		}
		if _, dup := seen[id]; dup {
			return
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	})
	return ids, false, nil
}
