package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	c.normalizeRedump()
	if err := c.normalizeSubmission(); err != nil {
		return err
	}
	if err := c.normalizeMatchCache(); err != nil {
		return err
	}
	return c.normalizeLogging()
}

func (c *Config) normalizeRedump() {
	c.Redump.Username = strings.TrimSpace(c.Redump.Username)
	if c.Redump.Username == "" {
		if value, ok := os.LookupEnv("REDUMP_USERNAME"); ok {
			c.Redump.Username = strings.TrimSpace(value)
		}
	}
	if c.Redump.Password == "" {
		if value, ok := os.LookupEnv("REDUMP_PASSWORD"); ok {
			c.Redump.Password = value
		}
	}
	c.Redump.BaseURL = strings.TrimRight(strings.TrimSpace(c.Redump.BaseURL), "/")
	if c.Redump.BaseURL == "" {
		c.Redump.BaseURL = defaultRedumpBaseURL
	}
	c.Redump.ForumURL = strings.TrimRight(strings.TrimSpace(c.Redump.ForumURL), "/")
	if c.Redump.ForumURL == "" {
		c.Redump.ForumURL = defaultRedumpForumURL
	}
	c.Redump.UserAgent = strings.TrimSpace(c.Redump.UserAgent)
	if c.Redump.UserAgent == "" {
		c.Redump.UserAgent = defaultUserAgent
	}
	if c.Redump.RequestTimeout <= 0 {
		c.Redump.RequestTimeout = defaultRequestTimeout
	}
}

func (c *Config) normalizeSubmission() error {
	if strings.TrimSpace(c.Submission.OutputDir) == "" {
		c.Submission.OutputDir = defaultOutputDir
	}
	var err error
	if c.Submission.OutputDir, err = expandPath(c.Submission.OutputDir); err != nil {
		return fmt.Errorf("submission.output_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeMatchCache() error {
	if strings.TrimSpace(c.MatchCache.Path) == "" {
		c.MatchCache.Path = defaultMatchCachePath
	}
	var err error
	if c.MatchCache.Path, err = expandPath(c.MatchCache.Path); err != nil {
		return fmt.Errorf("match_cache.path: %w", err)
	}
	if c.MatchCache.MaxAgeHours <= 0 {
		c.MatchCache.MaxAgeHours = defaultMatchCacheMaxAge
	}
	return nil
}

func (c *Config) normalizeLogging() error {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if strings.TrimSpace(c.Logging.Dir) != "" {
		var err error
		if c.Logging.Dir, err = expandPath(c.Logging.Dir); err != nil {
			return fmt.Errorf("logging.dir: %w", err)
		}
	}
	return nil
}
