package testsupport

import (
	"path/filepath"
	"testing"

	"discsub/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// Catalog requests are unthrottled and the match cache lives under the temp
// directory but stays disabled unless WithMatchCache is applied.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Submission.OutputDir = filepath.Join(base, "output")
	cfgVal.Logging.Dir = filepath.Join(base, "logs")
	cfgVal.MatchCache.Path = filepath.Join(base, "cache", "matches.db")
	cfgVal.Redump.RequestsPerSecond = 0

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithCatalog points the catalog and forum endpoints at baseURL.
func WithCatalog(baseURL string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Redump.BaseURL = baseURL
		b.cfg.Redump.ForumURL = baseURL
	}
}

// WithCredentials sets the catalog login on the test config.
func WithCredentials(username, password string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Redump.Username = username
		b.cfg.Redump.Password = password
	}
}

// WithMatchCache enables the search result cache.
func WithMatchCache() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.MatchCache.Enabled = true
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Submission.OutputDir)
}
