package matchcache

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/flock"
	_ "modernc.org/sqlite"

	"discsub/internal/config"
	"discsub/internal/logging"
)

const lockRetryDelay = 50 * time.Millisecond

// Searcher is the remote search capability the cache decorates.
type Searcher interface {
	Search(ctx context.Context, query string) ([]int, error)
}

// Entry is one cached search result.
type Entry struct {
	Query     string
	IDs       []int
	FetchedAt time.Time
	Stale     bool
}

// Cache stores per-hash search results in SQLite. Writes are serialized
// across processes with a lock file next to the database.
type Cache struct {
	db     *sql.DB
	path   string
	maxAge time.Duration
	lock   *flock.Flock
	logger *slog.Logger
	now    func() time.Time
}

// Open initializes or connects to the cache database at path. Entries older
// than maxAge are ignored; a zero maxAge keeps entries forever.
func Open(path string, maxAge time.Duration, logger *slog.Logger) (*Cache, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("match cache path required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create cache dir: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	cache := &Cache{
		db:     db,
		path:   path,
		maxAge: maxAge,
		lock:   flock.New(path + ".lock"),
		logger: logging.NewComponentLogger(logger, "matchcache"),
		now:    time.Now,
	}
	if err := cache.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return cache, nil
}

// OpenFromConfig opens the cache described by the [match_cache] section. It
// returns nil without error when the cache is disabled.
func OpenFromConfig(cfg *config.Config, logger *slog.Logger) (*Cache, error) {
	if cfg == nil || !cfg.MatchCache.Enabled {
		return nil, nil
	}
	return Open(cfg.MatchCache.Path, cfg.MatchCacheMaxAge(), logger)
}

// Path returns the database location.
func (c *Cache) Path() string { return c.path }

// Close closes the underlying database connection.
func (c *Cache) Close() error {
	if c == nil || c.db == nil {
		return nil
	}
	return c.db.Close()
}

func cacheKey(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

// Lookup returns the cached IDs for query when a fresh entry exists.
func (c *Cache) Lookup(ctx context.Context, query string) ([]int, bool, error) {
	var (
		idsJSON   string
		fetchedAt string
	)
	err := c.db.QueryRowContext(ctx,
		"SELECT ids_json, fetched_at FROM search_results WHERE query = ?",
		cacheKey(query),
	).Scan(&idsJSON, &fetchedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("lookup %q: %w", query, err)
	}

	entry, err := c.decode(cacheKey(query), idsJSON, fetchedAt)
	if err != nil {
		return nil, false, err
	}
	if entry.Stale {
		return nil, false, nil
	}
	return entry.IDs, true, nil
}

// Store records ids as the current result for query.
func (c *Cache) Store(ctx context.Context, query string, ids []int) error {
	if ids == nil {
		ids = []int{}
	}
	payload, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("marshal ids: %w", err)
	}
	return c.withWriteLock(ctx, func() error {
		_, err := c.db.ExecContext(ctx,
			`INSERT INTO search_results (query, ids_json, fetched_at) VALUES (?, ?, ?)
             ON CONFLICT(query) DO UPDATE SET ids_json = excluded.ids_json, fetched_at = excluded.fetched_at`,
			cacheKey(query),
			string(payload),
			c.now().UTC().Format(time.RFC3339Nano),
		)
		if err != nil {
			return fmt.Errorf("store %q: %w", query, err)
		}
		return nil
	})
}

// List returns every cached entry ordered by fetch time, newest first.
func (c *Cache) List(ctx context.Context) ([]Entry, error) {
	rows, err := c.db.QueryContext(ctx,
		"SELECT query, ids_json, fetched_at FROM search_results ORDER BY fetched_at DESC, query ASC")
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var query, idsJSON, fetchedAt string
		if err := rows.Scan(&query, &idsJSON, &fetchedAt); err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		entry, err := c.decode(query, idsJSON, fetchedAt)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

// Count returns the number of cached entries.
func (c *Cache) Count(ctx context.Context) (int, error) {
	var count int
	if err := c.db.QueryRowContext(ctx, "SELECT COUNT(1) FROM search_results").Scan(&count); err != nil {
		return 0, fmt.Errorf("count entries: %w", err)
	}
	return count, nil
}

// Clear removes every cached entry and returns how many were removed.
func (c *Cache) Clear(ctx context.Context) (int64, error) {
	var removed int64
	err := c.withWriteLock(ctx, func() error {
		res, err := c.db.ExecContext(ctx, "DELETE FROM search_results")
		if err != nil {
			return fmt.Errorf("clear entries: %w", err)
		}
		removed, err = res.RowsAffected()
		return err
	})
	return removed, err
}

func (c *Cache) decode(query, idsJSON, fetchedAt string) (Entry, error) {
	var ids []int
	if err := json.Unmarshal([]byte(idsJSON), &ids); err != nil {
		return Entry{}, fmt.Errorf("decode ids for %q: %w", query, err)
	}
	ts, err := time.Parse(time.RFC3339Nano, fetchedAt)
	if err != nil {
		return Entry{}, fmt.Errorf("decode timestamp for %q: %w", query, err)
	}
	stale := c.maxAge > 0 && c.now().Sub(ts) > c.maxAge
	return Entry{Query: query, IDs: ids, FetchedAt: ts, Stale: stale}, nil
}

func (c *Cache) withWriteLock(ctx context.Context, fn func() error) error {
	locked, err := c.lock.TryLockContext(ctx, lockRetryDelay)
	if err != nil {
		return fmt.Errorf("acquire cache lock: %w", err)
	}
	if !locked {
		return errors.New("cache lock unavailable")
	}
	defer func() {
		if err := c.lock.Unlock(); err != nil {
			c.logger.Warn("failed to release cache lock", logging.Error(err))
		}
	}()
	return fn()
}
