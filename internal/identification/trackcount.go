package identification

import (
	"context"
	"regexp"
	"strconv"
	"strings"
)

// DetailFetcher downloads the detail page of a catalog disc.
type DetailFetcher interface {
	FetchDetail(ctx context.Context, id int) (string, error)
}

var trackCountPattern = regexp.MustCompile(`<tr><th>Number of tracks</th><td>(.*?)</td></tr>`)

// TrackCount reads the track count from a detail page. Pages without the
// field describe single-track discs. An unreadable value yields -1.
func TrackCount(detail string) int {
	match := trackCountPattern.FindStringSubmatch(detail)
	if match == nil {
		return 1
	}
	count, err := strconv.Atoi(strings.TrimSpace(match[1]))
	if err != nil {
		return -1
	}
	return count
}

// TrackCheck is the outcome of validating one candidate. Page holds the
// fetched detail page so callers can parse it without a second request.
type TrackCheck struct {
	Page   string
	Remote int
	Match  bool
}

// ValidateTrackCount fetches the detail page for id and reports whether its
// track count equals local.
func ValidateTrackCount(ctx context.Context, fetcher DetailFetcher, id, local int) (TrackCheck, error) {
	detail, err := fetcher.FetchDetail(ctx, id)
	if err != nil {
		return TrackCheck{}, err
	}
	remote := TrackCount(detail)
	return TrackCheck{Page: detail, Remote: remote, Match: remote == local}, nil
}
