package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Redump contains credentials and endpoints for the disc catalog.
type Redump struct {
	Username          string  `toml:"username"`
	Password          string  `toml:"password"`
	BaseURL           string  `toml:"base_url"`
	ForumURL          string  `toml:"forum_url"`
	UserAgent         string  `toml:"user_agent"`
	RequestTimeout    int     `toml:"request_timeout"`
	RequestsPerSecond float64 `toml:"requests_per_second"`
}

// Submission controls how resolved records are written.
type Submission struct {
	OutputDir           string `toml:"output_dir"`
	IncludeArtifacts    bool   `toml:"include_artifacts"`
	RedumpCompatibility bool   `toml:"redump_compatibility"`
	NormalizeTitles     bool   `toml:"normalize_titles"`
	PullAllInformation  bool   `toml:"pull_all_information"`
}

// MatchCache contains configuration for the SHA1 search result cache.
type MatchCache struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	MaxAgeHours int    `toml:"max_age_hours"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
	Dir    string `toml:"dir"`
}

// Config encapsulates all configuration values for discsub.
//
// Configuration sections by subsystem:
//   - Redump: catalog credentials, endpoints and request pacing
//   - Submission: output location and report options
//   - MatchCache: local cache of per-hash search results
//   - Logging: log format, level, and optional file sink
type Config struct {
	Redump     Redump     `toml:"redump"`
	Submission Submission `toml:"submission"`
	MatchCache MatchCache `toml:"match_cache"`
	Logging    Logging    `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath(defaultConfigPath)
}

// Load locates, parses, and validates a configuration file. The returned config has all
// path fields expanded and normalized.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}
	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		if _, err := os.Stat(expanded); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := expandPath(defaultConfigPath)
	if err != nil {
		return "", false, err
	}
	projectPath, err := filepath.Abs("discsub.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}
	return defaultPath, false, nil
}

// HasCredentials reports whether both catalog username and password are set.
func (c *Config) HasCredentials() bool {
	return strings.TrimSpace(c.Redump.Username) != "" && c.Redump.Password != ""
}

// RequestTimeout returns the per-request catalog timeout.
func (c *Config) RequestTimeout() time.Duration {
	return time.Duration(c.Redump.RequestTimeout) * time.Second
}

// MatchCacheMaxAge returns how long cached search results stay fresh.
func (c *Config) MatchCacheMaxAge() time.Duration {
	return time.Duration(c.MatchCache.MaxAgeHours) * time.Hour
}

// EnsureDirectories creates the output, log and cache directories that are configured.
func (c *Config) EnsureDirectories() error {
	dirs := []string{c.Submission.OutputDir, c.Logging.Dir}
	if c.MatchCache.Enabled && c.MatchCache.Path != "" {
		dirs = append(dirs, filepath.Dir(c.MatchCache.Path))
	}
	for _, dir := range dirs {
		if strings.TrimSpace(dir) == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", dir, err)
		}
	}
	return nil
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	absolute, err := filepath.Abs(filepath.Clean(pathValue))
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", pathValue, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o600); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
