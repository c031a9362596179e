package identification

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"discsub/internal/hashes"
	"discsub/internal/services"
)

// Searcher looks up catalog disc IDs by track SHA1. No match is an empty
// result, not an error.
type Searcher interface {
	Search(ctx context.Context, query string) ([]int, error)
}

// CandidateSet is the outcome of matching every track of a disc.
type CandidateSet struct {
	// FullyMatched holds IDs that matched every track, in first-track order.
	FullyMatched []int
	// PartiallyMatched holds IDs that matched at least one track.
	PartiallyMatched []int
}

// Sorted returns the fully matched IDs in ascending order.
func (s CandidateSet) Sorted() []int {
	out := slices.Clone(s.FullyMatched)
	slices.Sort(out)
	return out
}

// Summary describes the set for operators.
func (s CandidateSet) Summary() string {
	if len(s.FullyMatched) == 0 {
		return "No matches found"
	}
	ids := make([]string, 0, len(s.FullyMatched))
	for _, id := range s.Sorted() {
		ids = append(ids, strconv.Itoa(id))
	}
	return "Fully matching IDs: " + strings.Join(ids, ", ")
}

// MatchManifest parses a hash manifest and matches its tracks. A malformed
// line aborts the match with a hashes.ParseError.
func MatchManifest(ctx context.Context, searcher Searcher, manifest string) (CandidateSet, error) {
	tracks, err := hashes.ParseManifest(manifest)
	if err != nil {
		return CandidateSet{}, err
	}
	sums := make([]string, 0, len(tracks))
	for _, track := range tracks {
		sums = append(sums, track.SHA1)
	}
	return MatchHashes(ctx, searcher, sums)
}

// MatchHashes searches each SHA1 and folds the results. Every ID found is
// added to PartiallyMatched. FullyMatched is seeded by the first track and
// intersected with each later one; a track without any result empties it for
// good, so one unmatched track rules out every full match.
func MatchHashes(ctx context.Context, searcher Searcher, sums []string) (CandidateSet, error) {
	var set CandidateSet
	seeded := false
	for i, sum := range sums {
		if err := ctx.Err(); err != nil {
			return CandidateSet{}, err
		}
		ids, err := searcher.Search(ctx, sum)
		if err != nil {
			return CandidateSet{}, services.Wrap(services.ErrTransport, "identification", "search", fmt.Sprintf("track %d", i+1), err)
		}

		if len(ids) == 0 {
			set.FullyMatched = []int{}
			seeded = true
			continue
		}

		set.PartiallyMatched = union(set.PartiallyMatched, ids)
		if !seeded {
			set.FullyMatched = union(nil, ids)
			seeded = true
		} else {
			set.FullyMatched = intersect(set.FullyMatched, ids)
		}
	}
	return set, nil
}

func union(dst, ids []int) []int {
	for _, id := range ids {
		if !slices.Contains(dst, id) {
			dst = append(dst, id)
		}
	}
	return dst
}

func intersect(current, ids []int) []int {
	out := make([]int, 0, len(current))
	for _, id := range current {
		if slices.Contains(ids, id) {
			out = append(out, id)
		}
	}
	return out
}
