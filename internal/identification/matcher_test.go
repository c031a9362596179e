package identification

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"discsub/internal/hashes"
)

func TestMatchHashesIntersectsAcrossTracks(t *testing.T) {
	catalog := &fakeCatalog{results: map[string][]int{
		"a": {5, 3, 9},
		"b": {9, 5, 12},
		"c": {5, 9},
	}}
	set, err := MatchHashes(context.Background(), catalog, []string{"a", "b", "c"})
	if err != nil {
		t.Fatalf("MatchHashes: %v", err)
	}
	if want := []int{5, 9}; !reflect.DeepEqual(set.FullyMatched, want) {
		t.Fatalf("FullyMatched = %v, want %v", set.FullyMatched, want)
	}
	if want := []int{5, 3, 9, 12}; !reflect.DeepEqual(set.PartiallyMatched, want) {
		t.Fatalf("PartiallyMatched = %v, want %v", set.PartiallyMatched, want)
	}
	if set.Summary() != "Fully matching IDs: 5, 9" {
		t.Fatalf("unexpected summary %q", set.Summary())
	}
}

func TestMatchHashesMissResetsFullMatches(t *testing.T) {
	orders := [][]string{
		{"miss", "a", "b"},
		{"a", "miss", "b"},
		{"a", "b", "miss"},
	}
	catalog := &fakeCatalog{results: map[string][]int{"a": {1, 2}, "b": {1}}}
	for _, order := range orders {
		set, err := MatchHashes(context.Background(), catalog, order)
		if err != nil {
			t.Fatalf("MatchHashes(%v): %v", order, err)
		}
		if len(set.FullyMatched) != 0 {
			t.Fatalf("order %v: expected no full matches, got %v", order, set.FullyMatched)
		}
		if !reflect.DeepEqual(set.PartiallyMatched, []int{1, 2}) {
			t.Fatalf("order %v: PartiallyMatched = %v", order, set.PartiallyMatched)
		}
		if set.Summary() != "No matches found" {
			t.Fatalf("unexpected summary %q", set.Summary())
		}
	}
}

func TestMatchHashesSearchError(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := MatchHashes(ctx, &fakeCatalog{}, []string{"a"})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected cancellation, got %v", err)
	}
}

func TestMatchManifestRejectsMalformedLine(t *testing.T) {
	catalog := &fakeCatalog{}
	_, err := MatchManifest(context.Background(), catalog, romLine("t1", "aaaa")+"\nbroken line")
	if !hashes.IsParseError(err) {
		t.Fatalf("expected parse error, got %v", err)
	}
	if len(catalog.searches) != 0 {
		t.Fatalf("expected no searches before the manifest parses, got %v", catalog.searches)
	}
}

func TestTrackCount(t *testing.T) {
	if got := TrackCount("<h1>x</h1>"); got != 1 {
		t.Fatalf("missing field: got %d", got)
	}
	if got := TrackCount("<tr><th>Number of tracks</th><td>12</td></tr>"); got != 12 {
		t.Fatalf("got %d", got)
	}
	if got := TrackCount("<tr><th>Number of tracks</th><td>many</td></tr>"); got != -1 {
		t.Fatalf("got %d", got)
	}

	catalog := &fakeCatalog{pages: map[int]string{7: "<tr><th>Number of tracks</th><td>2</td></tr>"}}
	check, err := ValidateTrackCount(context.Background(), catalog, 7, 2)
	if err != nil || !check.Match || check.Remote != 2 {
		t.Fatalf("ValidateTrackCount = %+v, %v", check, err)
	}
	if check.Page != catalog.pages[7] {
		t.Fatalf("unexpected page %q", check.Page)
	}
	check, _ = ValidateTrackCount(context.Background(), catalog, 7, 1)
	if check.Match {
		t.Fatal("expected mismatch")
	}
}
