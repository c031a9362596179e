package matchcache

import (
	"context"

	"discsub/internal/logging"
)

type cachedSearcher struct {
	cache  *Cache
	remote Searcher
}

// Wrap returns a Searcher that answers from the cache when a fresh entry
// exists and records successful remote results, including empty ones. A nil
// cache returns remote unchanged.
func (c *Cache) Wrap(remote Searcher) Searcher {
	if c == nil {
		return remote
	}
	return &cachedSearcher{cache: c, remote: remote}
}

func (s *cachedSearcher) Search(ctx context.Context, query string) ([]int, error) {
	logger := logging.WithContext(ctx, s.cache.logger)

	ids, ok, err := s.cache.Lookup(ctx, query)
	if err != nil {
		logging.WarnWithContext(logger, "match cache lookup failed", "cache_lookup_failed",
			logging.String("query", query),
			logging.Error(err),
			logging.String(logging.FieldImpact, "falling back to remote search"),
		)
	} else if ok {
		logger.Debug("match cache hit", logging.String("query", query), logging.Int("results", len(ids)))
		return ids, nil
	}

	ids, err = s.remote.Search(ctx, query)
	if err != nil {
		return nil, err
	}
	if storeErr := s.cache.Store(ctx, query, ids); storeErr != nil {
		logging.WarnWithContext(logger, "match cache store failed", "cache_store_failed",
			logging.String("query", query),
			logging.Error(storeErr),
			logging.String(logging.FieldImpact, "result will be fetched again next run"),
		)
	}
	return ids, nil
}
