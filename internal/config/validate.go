package config

import (
	"errors"
	"fmt"
	"net/url"
)

// Validate ensures the configuration is usable. Missing catalog credentials are
// not an error: resolution is skipped without them.
func (c *Config) Validate() error {
	if err := c.validateRedump(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateRedump() error {
	for name, raw := range map[string]string{"redump.base_url": c.Redump.BaseURL, "redump.forum_url": c.Redump.ForumURL} {
		parsed, err := url.Parse(raw)
		if err != nil || parsed.Scheme == "" || parsed.Host == "" {
			return fmt.Errorf("%s must be an absolute URL, got %q", name, raw)
		}
	}
	if c.Redump.RequestsPerSecond < 0 {
		return errors.New("redump.requests_per_second must not be negative")
	}
	if (c.Redump.Username == "") != (c.Redump.Password == "") {
		return errors.New("redump.username and redump.password must be set together")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}
