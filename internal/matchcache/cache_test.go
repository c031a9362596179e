package matchcache

import (
	"context"
	"errors"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

type countingSearcher struct {
	calls   int
	results map[string][]int
	err     error
}

func (s *countingSearcher) Search(_ context.Context, query string) ([]int, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.results[query], nil
}

func openTestCache(t *testing.T, maxAge time.Duration) *Cache {
	t.Helper()
	cache, err := Open(filepath.Join(t.TempDir(), "cache", "matches.db"), maxAge, nil)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = cache.Close() })
	return cache
}

func TestWrapServesCachedResults(t *testing.T) {
	cache := openTestCache(t, time.Hour)
	remote := &countingSearcher{results: map[string][]int{"abc": {3, 1}}}
	searcher := cache.Wrap(remote)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		ids, err := searcher.Search(ctx, "abc")
		if err != nil {
			t.Fatalf("Search: %v", err)
		}
		if !reflect.DeepEqual(ids, []int{3, 1}) {
			t.Fatalf("Search = %v", ids)
		}
	}
	if remote.calls != 1 {
		t.Fatalf("expected one remote call, got %d", remote.calls)
	}

	ids, err := searcher.Search(ctx, "ABC ")
	if err != nil || !reflect.DeepEqual(ids, []int{3, 1}) {
		t.Fatalf("expected case-insensitive hit, got %v, %v", ids, err)
	}
	if remote.calls != 1 {
		t.Fatalf("expected cache hit for normalized key, got %d calls", remote.calls)
	}
}

func TestWrapCachesEmptyResults(t *testing.T) {
	cache := openTestCache(t, time.Hour)
	remote := &countingSearcher{}
	searcher := cache.Wrap(remote)

	for i := 0; i < 2; i++ {
		ids, err := searcher.Search(context.Background(), "missing")
		if err != nil || len(ids) != 0 {
			t.Fatalf("Search = %v, %v", ids, err)
		}
	}
	if remote.calls != 1 {
		t.Fatalf("expected empty result to be cached, got %d calls", remote.calls)
	}
}

func TestWrapDoesNotCacheErrors(t *testing.T) {
	cache := openTestCache(t, time.Hour)
	remote := &countingSearcher{err: errors.New("offline")}
	searcher := cache.Wrap(remote)

	if _, err := searcher.Search(context.Background(), "abc"); err == nil {
		t.Fatal("expected remote error")
	}
	count, err := cache.Count(context.Background())
	if err != nil || count != 0 {
		t.Fatalf("Count = %d, %v", count, err)
	}
}

func TestStaleEntriesAreIgnored(t *testing.T) {
	cache := openTestCache(t, time.Hour)
	ctx := context.Background()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	cache.now = func() time.Time { return base }

	if err := cache.Store(ctx, "abc", []int{7}); err != nil {
		t.Fatalf("Store: %v", err)
	}
	if _, ok, _ := cache.Lookup(ctx, "abc"); !ok {
		t.Fatal("expected fresh entry")
	}

	cache.now = func() time.Time { return base.Add(2 * time.Hour) }
	if _, ok, _ := cache.Lookup(ctx, "abc"); ok {
		t.Fatal("expected stale entry to be ignored")
	}
	entries, err := cache.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(entries) != 1 || !entries[0].Stale {
		t.Fatalf("unexpected entries %+v", entries)
	}
}

func TestClear(t *testing.T) {
	cache := openTestCache(t, 0)
	ctx := context.Background()
	for _, q := range []string{"a", "b"} {
		if err := cache.Store(ctx, q, []int{1}); err != nil {
			t.Fatalf("Store: %v", err)
		}
	}
	removed, err := cache.Clear(ctx)
	if err != nil || removed != 2 {
		t.Fatalf("Clear = %d, %v", removed, err)
	}
	count, _ := cache.Count(ctx)
	if count != 0 {
		t.Fatalf("expected empty cache, got %d", count)
	}
}

func TestReopenKeepsEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "matches.db")
	cache, err := Open(path, 0, nil)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := cache.Store(context.Background(), "abc", []int{5}); err != nil {
		t.Fatalf("Store: %v", err)
	}
	_ = cache.Close()

	reopened, err := Open(path, 0, nil)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()
	ids, ok, err := reopened.Lookup(context.Background(), "abc")
	if err != nil || !ok || !reflect.DeepEqual(ids, []int{5}) {
		t.Fatalf("Lookup after reopen = %v, %v, %v", ids, ok, err)
	}
}

func TestNilCacheWrapReturnsRemote(t *testing.T) {
	var cache *Cache
	remote := &countingSearcher{}
	if got := cache.Wrap(remote); got != Searcher(remote) {
		t.Fatal("expected nil cache to return remote searcher")
	}
}
